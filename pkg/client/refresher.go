package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tenauth/pkg/credentials"
)

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}

// HTTPRefresher refreshes credentials against the identity service.
type HTTPRefresher struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPRefresher creates a refresher for the identity service at baseURL.
func NewHTTPRefresher(baseURL string) *HTTPRefresher {
	return &HTTPRefresher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Refresh posts the refresh token to the identity service and returns
// the new access token.
func (r *HTTPRefresher) Refresh(ctx context.Context, refreshToken string) (string, error) {
	url := fmt.Sprintf("%s/refresh", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(refreshToken))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/plain")

	res, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("identity service returned %d", res.StatusCode)
	}

	var accessToken string
	if err := json.NewDecoder(res.Body).Decode(&accessToken); err != nil {
		return "", err
	}
	return accessToken, nil
}

var _ Refresher = (*HTTPRefresher)(nil)

// refresh runs the refresher and stores the renewed access token in the
// holder, keeping the refresh token and subject intact.
func refresh(ctx context.Context, holder *credentials.Holder, refresher Refresher) error {
	cred, ok := holder.Get()
	if !ok {
		return ErrNoCurrentUser
	}
	accessToken, err := refresher.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		return &RefreshFailedError{Cause: err}
	}
	cred.AccessToken = accessToken
	holder.Set(cred)
	return nil
}
