package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/noticeboard/internal/auth"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userKey = contextKey("user")

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (models.User, error)
}

// Authenticate rejects requests without a valid bearer token and stores the
// resolved user in the request context.
func Authenticate(a Authenticator, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			user, err := a.Authenticate(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					log.WithError(err).Debug("rejected token")
					http.Error(w, "invalid token", http.StatusUnauthorized)
					return
				}
				log.WithError(err).Error("authenticate request")
				http.Error(w, "could not authenticate request", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}
