// Package engine implements the tenant/role association rules: which
// roles exist under which tenants, which users and permissions hang off
// those associations, and the consistency obligations between them.
package engine
