package client

import (
	"context"

	"tenauth/pkg/credentials"
)

// PermissionVerifier checks permission existence with the caller's
// credentials, recovering once from an expired access token.
type PermissionVerifier struct {
	directory *PermissionDirectory
	refresher Refresher
}

// NewPermissionVerifier creates a verifier over the given permission
// directory and refresher.
func NewPermissionVerifier(directory *PermissionDirectory, refresher Refresher) *PermissionVerifier {
	return &PermissionVerifier{directory: directory, refresher: refresher}
}

// PermissionExists reports whether the permission id is known to the
// permission directory.
func (v *PermissionVerifier) PermissionExists(ctx context.Context, permissionID int64, tenantID *int64) (bool, error) {
	holder, ok := credentials.HolderFromContext(ctx)
	if !ok {
		return false, ErrNoCurrentUser
	}
	invoker := NewInvoker(holder, v.refresher)
	return Invoke2(ctx, invoker, permissionID, tenantID, v.directory.PermissionExists)
}

// Permissions fetches the permission records for the given ids.
func (v *PermissionVerifier) Permissions(ctx context.Context, ids []int64) ([]Permission, error) {
	holder, ok := credentials.HolderFromContext(ctx)
	if !ok {
		return nil, ErrNoCurrentUser
	}
	invoker := NewInvoker(holder, v.refresher)
	return Invoke1(ctx, invoker, ids, v.directory.PermissionsByIDs)
}
