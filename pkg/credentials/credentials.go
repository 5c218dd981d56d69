package credentials

import (
	"github.com/golang-jwt/jwt/v5"
)

// Credential is the access/refresh token pair identifying the current
// caller to remote services. It lives for one request or session and is
// never persisted.
type Credential struct {
	AccessToken  string
	RefreshToken string
	Subject      string
}

// Holder keeps the credential for the duration of one request or one
// session. A holder is never shared across concurrent callers, so it
// does no locking. A refresh replaces the credential wholesale.
type Holder struct {
	cred *Credential
}

// NewHolder creates an empty credential holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Get returns the current credential, if any.
func (h *Holder) Get() (Credential, bool) {
	if h.cred == nil {
		return Credential{}, false
	}
	return *h.cred, true
}

// Set replaces the stored credential.
func (h *Holder) Set(cred Credential) {
	h.cred = &cred
}

// Clear drops the stored credential.
func (h *Holder) Clear() {
	h.cred = nil
}

// Subject extracts the subject claim from an access token without
// verifying the signature. Tokens reaching this service were already
// verified by the identity provider at the gateway; only the claim
// payload is needed here.
func Subject(accessToken string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
