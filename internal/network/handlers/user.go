package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/services"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(identity services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if user.Login == "" || user.Password == "" {
			http.Error(w, "Login and password are required", http.StatusBadRequest)
			return
		}

		if err := identity.RegisterUser(r.Context(), user); err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				http.Error(w, "User already exists", http.StatusConflict)
				return
			}
			logger.Error("Failed to register user:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		token, err := identity.GenerateJWT(user.Login)
		if err != nil {
			logger.Error("Failed to generate token:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandler — аутентификация пользователя
func AuthenticateUserHandler(identity services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		authenticated, err := identity.AuthenticateUser(r.Context(), user)
		if err != nil {
			logger.Error("Failed to authenticate user:", zap.Error(err))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !authenticated {
			http.Error(w, "Invalid login or password", http.StatusUnauthorized)
			return
		}

		token, err := identity.GenerateJWT(user.Login)
		if err != nil {
			logger.Error("Failed to generate token:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}
