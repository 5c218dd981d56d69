// Package authz answers role and permission grant questions about the
// current caller.
package authz
