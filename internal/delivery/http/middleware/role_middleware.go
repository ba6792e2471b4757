package middleware

import (
	"net/http"

	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/pkg/response"
)

// RequireUserType creates a middleware that checks the user type carried by the access token.
// It must run after AuthMiddleware.Authenticate.
func RequireUserType(allowed ...entity.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type not found")
				return
			}

			for _, t := range allowed {
				if userType == string(t) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeDoctor)(next)
}
