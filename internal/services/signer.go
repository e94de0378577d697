package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/client"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/models"
	"github.com/denmor86/points-bridge/internal/storage"
	"github.com/denmor86/points-bridge/internal/validators"
)

type SignerService interface {
	IssueSignedWithdrawal(ctx context.Context, userID string, record models.WithdrawalData) (*models.SignedWithdrawal, error)
}

type Signer struct {
	Records storage.WithdrawalsStorage
	Chain   client.ChainClient
}

// Создание сервиса
func NewSigner(records storage.WithdrawalsStorage, chain client.ChainClient) *Signer {
	return &Signer{Records: records, Chain: chain}
}

// IssueSignedWithdrawal — выдача подписанного вывода средств.
// Сохранение подписи — последний шаг, способный упасть: после успешного
// коммита списание окончательно, пользователь владеет доказательством
// авторизации и может погасить его без участия системы. Любая ошибка строго
// до сохранения безопасна для возврата; ошибка самого сохранения — нет,
// её нельзя отличить от успешной записи, не дождавшейся подтверждения.
func (s *Signer) IssueSignedWithdrawal(ctx context.Context, userID string, record models.WithdrawalData) (*models.SignedWithdrawal, error) {
	// уже выданная подпись окончательна: повторная выдача запрещена
	existing, err := s.Records.GetSignedWithdrawal(ctx, record.ID)
	if err == nil {
		if !wellFormedSignature(existing) {
			return nil, NewSettlementError(FailureNeedsReview, errors.New("stored signature is malformed"))
		}
		logger.Warn("Signed withdrawal already issued", record.ID)
		return existing, nil
	}
	if !errors.Is(err, storage.ErrSignatureNotFound) {
		return nil, NewSettlementError(FailureRefundable, err)
	}

	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return nil, NewSettlementError(FailureRefundable, fmt.Errorf("generate nonce: %w", err))
	}

	hash := s.Chain.WithdrawalHash(nonce, record.Amount)
	signature, err := s.Chain.Sign(hash)
	if err != nil {
		return nil, NewSettlementError(FailureRefundable, fmt.Errorf("sign withdrawal: %w", err))
	}
	if len(signature) != 65 {
		return nil, NewSettlementError(FailureRefundable, fmt.Errorf("unexpected signature length %d", len(signature)))
	}

	signed := models.SignedWithdrawal{
		WithdrawalID: record.ID,
		Nonce:        hex.EncodeToString(nonce),
		Asset:        record.Asset,
		Amount:       record.Amount,
		SigR:         hex.EncodeToString(signature[0:32]),
		SigS:         hex.EncodeToString(signature[32:64]),
		SigV:         hex.EncodeToString(signature[64:65]),
	}

	err = s.Records.AttachSignature(ctx, userID, signed)
	if err != nil {
		if errors.Is(err, storage.ErrNotEnoughFunds) {
			// транзакция откатилась целиком, подпись не сохранена
			return nil, NewSettlementError(FailureInsufficientFunds, err)
		}
		if errors.Is(err, storage.ErrAlreadyExists) {
			// конкурентная выдача успела раньше: возвращаем сохранённую подпись
			stored, getErr := s.Records.GetSignedWithdrawal(ctx, record.ID)
			if getErr == nil && wellFormedSignature(stored) {
				return stored, nil
			}
			return nil, NewSettlementError(FailureNeedsReview, err)
		}
		logger.Error("Failed to persist signed withdrawal", zap.Error(err))
		return nil, NewSettlementError(FailureNeedsReview, err)
	}

	return &signed, nil
}

// подпись из хранилища обязана быть структурно целой,
// битую запись нельзя отдавать как доказательство авторизации
func wellFormedSignature(signed *models.SignedWithdrawal) bool {
	return validators.CheckHex(signed.Nonce, models.NonceHexLen) &&
		validators.CheckHex(signed.SigR, models.SignaturePartLen) &&
		validators.CheckHex(signed.SigS, models.SignaturePartLen) &&
		validators.CheckHex(signed.SigV, models.RecoveryHexLen)
}
