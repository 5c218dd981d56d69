// Package client provides HTTP clients for the collaborating identity,
// user management, permission management and role management services,
// plus the invoker that recovers from expired credentials by refreshing
// once and retrying once.
package client
