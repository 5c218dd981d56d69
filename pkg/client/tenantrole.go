package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TenantRoleClient queries the role management service for grant checks
// on behalf of a caller.
type TenantRoleClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTenantRoleClient creates a grant-check client for the role
// management service at baseURL.
func NewTenantRoleClient(baseURL string) *TenantRoleClient {
	return &TenantRoleClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// IsRoleExistentForUser reports whether the user holds the named role,
// optionally narrowed to a tenant.
func (c *TenantRoleClient) IsRoleExistentForUser(ctx context.Context, accessToken string, userID int64, roleName string, tenantID *int64) (bool, error) {
	u := fmt.Sprintf("%s/tenantrole/exists/role?userId=%d&roleName=%s", c.baseURL, userID, url.QueryEscape(roleName))
	if tenantID != nil {
		u += "&tenantId=" + strconv.FormatInt(*tenantID, 10)
	}
	return c.check(ctx, accessToken, u)
}

// IsAnyRoleExistentForUser reports whether the user holds any of the
// named roles, optionally narrowed to a tenant.
func (c *TenantRoleClient) IsAnyRoleExistentForUser(ctx context.Context, accessToken string, userID int64, roleNames []string, tenantID *int64) (bool, error) {
	escaped := make([]string, len(roleNames))
	for i, name := range roleNames {
		escaped[i] = url.QueryEscape(name)
	}
	u := fmt.Sprintf("%s/tenantrole/exists/roles?userId=%d&roleNames=%s", c.baseURL, userID, strings.Join(escaped, ","))
	if tenantID != nil {
		u += "&tenantId=" + strconv.FormatInt(*tenantID, 10)
	}
	return c.check(ctx, accessToken, u)
}

// IsPermissionExistentForUser reports whether the user holds the
// permission, optionally narrowed to a tenant.
func (c *TenantRoleClient) IsPermissionExistentForUser(ctx context.Context, accessToken string, userID, permissionID int64, tenantID *int64) (bool, error) {
	u := fmt.Sprintf("%s/tenantrole/exists/permission?userId=%d&permissionId=%d", c.baseURL, userID, permissionID)
	if tenantID != nil {
		u += "&tenantId=" + strconv.FormatInt(*tenantID, 10)
	}
	return c.check(ctx, accessToken, u)
}

// check runs a grant probe. An expired token surfaces as
// ErrCredentialExpired; any other non-2xx response means the grant does
// not hold and is not an error.
func (c *TenantRoleClient) check(ctx context.Context, accessToken, u string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return false, ErrCredentialExpired
	}
	return res.StatusCode >= 200 && res.StatusCode <= 299, nil
}
