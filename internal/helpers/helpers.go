package helpers

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/validators"
)

var ErrNoUsername = errors.New("token carries no valid username")

// GetUsername - извлекает имя пользователя из контекста JWT токена.
// Имя дополнительно проверяется: токен со странным логином не даёт доступа
// к балансу и выводу средств.
func GetUsername(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		logger.Warn("Failed to read token claims", err)
		return "", ErrNoUsername
	}
	login, ok := claims["username"].(string)
	if !ok || !validators.CheckUsername(login) {
		logger.Warn("Undefined username from token")
		return "", ErrNoUsername
	}
	return login, nil
}
