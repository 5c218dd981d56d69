package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tenauth/pkg/credentials"
)

// UserDirectory looks up user records in the user management service.
type UserDirectory struct {
	baseURL    string
	httpClient *http.Client
}

// NewUserDirectory creates a directory client for the user management
// service at baseURL.
func NewUserDirectory(baseURL string) *UserDirectory {
	return &UserDirectory{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FindUserIDBySubject resolves a subject identifier to the directory's
// numeric user id. An expired access token surfaces as
// ErrCredentialExpired so the invoker can recover; an unknown subject
// surfaces as ErrUserNotFound.
func (d *UserDirectory) FindUserIDBySubject(ctx context.Context, accessToken, subject string) (int64, error) {
	u := fmt.Sprintf("%s/user/sub/%s", d.baseURL, url.PathEscape(subject))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := d.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return 0, ErrCredentialExpired
	case res.StatusCode == http.StatusNotFound:
		return 0, ErrUserNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		return 0, fmt.Errorf("user directory returned %d", res.StatusCode)
	}

	var id int64
	if err := json.NewDecoder(res.Body).Decode(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UserResolver resolves the calling user's directory id from the
// credential carried by the request context.
type UserResolver struct {
	directory *UserDirectory
	refresher Refresher
}

// NewUserResolver creates a resolver over the given directory and refresher.
func NewUserResolver(directory *UserDirectory, refresher Refresher) *UserResolver {
	return &UserResolver{directory: directory, refresher: refresher}
}

// CurrentUserID returns the directory id of the current caller. When no
// subject is available no remote call is made and ErrNoCurrentUser is
// returned.
func (r *UserResolver) CurrentUserID(ctx context.Context) (int64, error) {
	holder, ok := credentials.HolderFromContext(ctx)
	if !ok {
		return 0, ErrNoCurrentUser
	}
	cred, ok := holder.Get()
	if !ok || cred.Subject == "" {
		return 0, ErrNoCurrentUser
	}
	invoker := NewInvoker(holder, r.refresher)
	return Invoke1(ctx, invoker, cred.Subject, r.directory.FindUserIDBySubject)
}
