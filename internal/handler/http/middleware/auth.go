package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/joabe-nascimento/talents-flow/internal/handler/http/response"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token. Refresh
// tokens and revoked tokens are not accepted here.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Access token required")
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.Unauthorized(w, "Token revoked")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
