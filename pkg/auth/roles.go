package auth

// RoleAllowed reports whether role appears in the allow-list. It is the
// whole authorization decision; the middleware only plumbs it into the
// request path.
func RoleAllowed(role string, allowList []string) bool {
	for _, allowed := range allowList {
		if role == allowed {
			return true
		}
	}
	return false
}
