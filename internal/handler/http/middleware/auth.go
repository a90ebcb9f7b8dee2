package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/identity"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

// AuthRequired verifies the bearer token and resolves the identity context
// every attendance operation runs under. Services downstream read it with
// identity.FromContext and never touch the token themselves.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}

			id, err := identity.FromClaims(claims)
			if err != nil {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithContext(r.Context(), id)))
		}
		return http.HandlerFunc(hfn)
	}
}
