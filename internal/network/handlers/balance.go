package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/helpers"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/services"
	"github.com/denmor86/points-bridge/internal/storage"
)

// GetUserBalanceHandler — получение текущего баланса пользователя
func GetUserBalanceHandler(withdrawals services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		balance, err := withdrawals.GetBalance(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get user balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(balance); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetWithdrawalHandler — получение одного вывода средств по идентификатору
func GetWithdrawalHandler(withdrawals services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		record, err := withdrawals.GetWithdrawal(r.Context(), username, chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, storage.ErrWithdrawalNotFound) {
				http.Error(w, "Withdrawal not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get withdrawal:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := models.WithdrawalResponse{
			ID:          record.ID,
			Asset:       record.Asset,
			Amount:      record.Amount,
			Rail:        record.Rail,
			Destination: record.Destination,
			Status:      record.Status,
			ProcessedAt: record.UpdatedAt.Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetWithdrawalsHandler — получение списка выводов средств пользователя
func GetWithdrawalsHandler(withdrawals services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		records, err := withdrawals.GetWithdrawals(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(records) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.WithdrawalResponse, 0, len(records))
		for _, record := range records {
			response = append(response, models.WithdrawalResponse{
				ID:          record.ID,
				Asset:       record.Asset,
				Amount:      record.Amount,
				Rail:        record.Rail,
				Destination: record.Destination,
				Status:      record.Status,
				ProcessedAt: record.UpdatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
