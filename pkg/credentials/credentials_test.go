package credentials

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder(t *testing.T) {
	holder := NewHolder()

	_, ok := holder.Get()
	assert.False(t, ok)

	holder.Set(Credential{AccessToken: "token", RefreshToken: "refresh", Subject: "alice"})
	cred, ok := holder.Get()
	require.True(t, ok)
	assert.Equal(t, "token", cred.AccessToken)
	assert.Equal(t, "alice", cred.Subject)

	holder.Clear()
	_, ok = holder.Get()
	assert.False(t, ok)
}

func TestSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	assert.Equal(t, "alice", Subject(signed))
	assert.Equal(t, "", Subject("not-a-token"))
}

func TestHolderContext(t *testing.T) {
	holder := NewHolder()
	ctx := WithHolder(context.Background(), holder)

	got, ok := HolderFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, holder, got)

	_, ok = HolderFromContext(context.Background())
	assert.False(t, ok)
}
