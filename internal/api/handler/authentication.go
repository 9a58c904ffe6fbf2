package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
	"github.com/vfg2006/sales-comparison-api/pkg/middleware"
)

type LoginRequest struct {
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("auth: login failed")
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		if err := service.Logout(claims.SessionID); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case authenticating.IsAuthorizationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
	}
}
