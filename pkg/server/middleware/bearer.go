package middleware

import (
	"net/http"
	"strings"

	"tenauth/pkg/credentials"
)

// RefreshTokenHeader carries the caller's refresh token so a request can
// survive one access token expiry mid-flight.
const RefreshTokenHeader = "X-Refresh-Token"

// BearerCredentials captures the caller's bearer token (and optional
// refresh token) into a per-request credential holder on the context.
// Requests without a bearer token pass through with an empty holder;
// the authorization rules downstream decide what an anonymous caller
// may do.
type BearerCredentials struct{}

func NewBearerCredentials() *BearerCredentials {
	return &BearerCredentials{}
}

func (m *BearerCredentials) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		holder := credentials.NewHolder()

		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			accessToken := strings.TrimPrefix(authHeader, "Bearer ")
			holder.Set(credentials.Credential{
				AccessToken:  accessToken,
				RefreshToken: r.Header.Get(RefreshTokenHeader),
				Subject:      credentials.Subject(accessToken),
			})
		}

		ctx := credentials.WithHolder(r.Context(), holder)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
