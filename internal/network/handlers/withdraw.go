package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/helpers"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/services"
)

// WithdrawHandler — запрос на вывод средств по выбранной рельсе.
// Клиент получает классифицированную ошибку; был ли возврат по пути — видно
// только в статусе записи о выводе.
func WithdrawHandler(withdrawals services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		receipt, err := withdrawals.Withdraw(r.Context(), username, request)
		if err != nil {
			var settlement *services.SettlementError
			if errors.As(err, &settlement) {
				switch settlement.Kind {
				case services.FailureValidation:
					http.Error(w, "Invalid withdrawal request", http.StatusBadRequest)
				case services.FailureInsufficientFunds:
					http.Error(w, "Insufficient funds", http.StatusPaymentRequired)
				case services.FailureRailDisabled:
					http.Error(w, "Withdrawal rail is disabled", http.StatusServiceUnavailable)
				default:
					http.Error(w, "Withdrawal failed", http.StatusBadGateway)
				}
				return
			}
			logger.Error("Failed to process withdrawal:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
