package middleware

import (
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

// Papéis da equipe
const (
	RoleDirector = 1 // Директор
	RoleManager  = 2 // Менеджер
	RolePacker   = 3 // Упаковщик
	RoleCourier  = 4 // Курьер
)

// RoleMiddleware restringe o acesso aos papéis informados
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_id":      userClaims.UserID,
				"user_role_id": userClaims.UserRoleID,
				"path":         r.URL.Path,
			}).Warn("Acesso negado")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

func DirectorOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleDirector)
}

// DirectorOrManager libera os dados de vendas
func DirectorOrManager() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleDirector, RoleManager)
}

// DirectorOrPacker libera os dados de estoque
func DirectorOrPacker() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleDirector, RolePacker)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleDirector, RoleManager, RolePacker, RoleCourier)
}
