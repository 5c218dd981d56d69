// Package credentials holds the per-request access/refresh token pair and
// its context plumbing.
package credentials
