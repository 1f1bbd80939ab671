package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/screenlog/screenlog/pkg/identity"
	"github.com/screenlog/screenlog/pkg/logger"
	"go.uber.org/zap"
)

type userCtxKey struct{}

// UserFromCtx returns the verified identity attached by the auth middleware,
// or nil if the request never passed through it.
func UserFromCtx(ctx context.Context) *identity.User {
	if u, ok := ctx.Value(userCtxKey{}).(*identity.User); ok {
		return u
	}
	return nil
}

func withUser(ctx context.Context, user *identity.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := s.baseLogger.With(zap.String("request_path", r.URL.Path)).With(zap.String("id", uuid.New().String()))
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}

// AuthMiddleware validates the bearer credential on every API request against
// the identity provider and attaches the resulting identity to the request
// context. Requests without a valid credential never reach a handler.
func (s Server) AuthMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromCtx(r.Context())

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := s.verifier.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidToken) {
					writeError(w, http.StatusForbidden, "invalid or expired token")
					return
				}

				log.Error("failed to verify token", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := withUser(r.Context(), user)
			ctx = logger.WithCtx(ctx, log.With(zap.String("user_id", user.ID)))
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
