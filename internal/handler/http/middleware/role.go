package middleware

import (
	"net/http"

	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/handler/http/response"
)

// RequireAdmin restricts a route to admins.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager restricts a route to managers and admins.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := employee.Role(Role(r.Context()))
		if role != employee.RoleManager && role != employee.RoleAdmin {
			response.Forbidden(w, "Manager access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
