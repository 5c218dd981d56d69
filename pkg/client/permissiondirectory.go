package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Permission is a permission record in the permission management service.
type Permission struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PermissionDirectory looks up permission records in the permission
// management service.
type PermissionDirectory struct {
	baseURL    string
	httpClient *http.Client
}

// NewPermissionDirectory creates a directory client for the permission
// management service at baseURL.
func NewPermissionDirectory(baseURL string) *PermissionDirectory {
	return &PermissionDirectory{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// PermissionExists reports whether the permission id exists, optionally
// narrowed to a tenant context.
func (d *PermissionDirectory) PermissionExists(ctx context.Context, accessToken string, permissionID int64, tenantID *int64) (bool, error) {
	u := fmt.Sprintf("%s/permission/%d/exists", d.baseURL, permissionID)
	if tenantID != nil {
		u += "?tenantId=" + strconv.FormatInt(*tenantID, 10)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := d.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return false, ErrCredentialExpired
	case res.StatusCode == http.StatusNotFound:
		return false, nil
	case res.StatusCode < 200 || res.StatusCode > 299:
		return false, fmt.Errorf("permission directory returned %d", res.StatusCode)
	}
	return true, nil
}

// PermissionsByIDs fetches the permission records for the given ids.
func (d *PermissionDirectory) PermissionsByIDs(ctx context.Context, accessToken string, ids []int64) ([]Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	u := fmt.Sprintf("%s/permission/find?ids=%s", d.baseURL, strings.Join(parts, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return nil, ErrCredentialExpired
	case res.StatusCode < 200 || res.StatusCode > 299:
		return nil, fmt.Errorf("permission directory returned %d", res.StatusCode)
	}

	var permissions []Permission
	if err := json.NewDecoder(res.Body).Decode(&permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}
