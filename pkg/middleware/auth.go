package middleware

import (
	"net/http"
	"slices"
	"strings"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

// AuthToken verifies the bearer token and loads the user it names. The
// user is re-read on every request so deleted accounts lose access at once.
func AuthToken(tokens *utils.TokenManager, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Not authorized, no token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			token = strings.TrimSpace(token)

			userID, err := tokens.Parse(token)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Not authorized, token failed")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load token user",
					zap.String("user_id", userID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token for missing user", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "Not authorized, user not found")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets through only users whose role is exactly role.
func RequireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, _ := utils.GetRoleFromContext(r.Context())
			if entity.UserRole(current) != role {
				logger.Warn("Role check failed",
					zap.String("required", string(role)),
					zap.String("role", current),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access denied. "+string(role)+" role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyRole lets through users holding one of roles.
func RequireAnyRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Must be authenticated first
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Check role
			current, _ := utils.GetRoleFromContext(r.Context())
			if !slices.Contains(roles, entity.UserRole(current)) {
				logger.Warn("Role check failed",
					zap.String("user_id", userID.String()),
					zap.String("role", current),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "User role "+current+" is not authorized to access this route")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
