package middleware

import (
	"net/http"

	"shopstock/internal/domain"
	"shopstock/internal/policy"

	"go.uber.org/zap"
)

// RequireMutate gates a route on the access policy's mutation capability
// for a resource. The services re-check the same predicate before touching
// a store; this middleware only rejects earlier with a cleaner response.
func RequireMutate(resource policy.Resource, logger *zap.Logger) func(http.Handler) http.Handler {
	return requireCapability(resource, policy.CanMutate, logger)
}

// RequireView gates a route on the access policy's view capability for a
// resource.
func RequireView(resource policy.Resource, logger *zap.Logger) func(http.Handler) http.Handler {
	return requireCapability(resource, policy.CanView, logger)
}

// RequireAdministrator gates a route to the Administrator role outright,
// used for the few operations no employee may reach regardless of
// resource, like manual stock corrections.
func RequireAdministrator(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok || role != domain.RoleAdministrator {
				logger.Warn("Non-administrator attempted restricted operation",
					zap.String("role", string(role)),
				)
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requireCapability(resource policy.Resource, can func(domain.Role, policy.Resource) bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				logger.Warn("Role not found in context")
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			if !can(role, resource) {
				logger.Warn("Role lacks capability for resource",
					zap.String("role", string(role)),
					zap.String("resource", string(resource)),
				)
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
