// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so wiring code can take
// *middleware.FirebaseAuthClient without importing firebase directly.
type FirebaseAuthClient = fbauth.Client

// AdminAuth verifies "Authorization: Bearer <ID_TOKEN>" against Firebase
// and requires the "admin" custom claim. Guards the /admin surface; the
// storefront endpoints stay open.
type AdminAuth struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *AdminAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if isAdmin, _ := token.Claims["admin"].(bool); !isAdmin {
			http.Error(w, "admin privilege required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
