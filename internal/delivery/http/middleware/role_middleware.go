package middleware

import (
	"net/http"

	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/pkg/response"
)

// RequireRole checks the authenticated user's role against the allowed set.
// Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

// RequireUser is a convenience middleware for patient-only endpoints
func RequireUser(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDUser)(next)
}
