package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/denmor86/points-bridge/internal/logger"
)

// Message - входящее сообщение из ленты платформы
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// PointsClient - контракт клиента платформы баллов
type PointsClient interface {
	Transfer(ctx context.Context, destination string, amount int64) (string, error)
	SendNotification(ctx context.Context, destination string, subject string, body string) error
	ListMessages(ctx context.Context, sinceID string) ([]Message, error)
	MarkMessagesRead(ctx context.Context, ids []string) error
	CustodyBalance(ctx context.Context) (decimal.Decimal, error)
}

var (
	// ErrAuthGateway - не удалось пройти промежуточный слой аутентификации платформы:
	// перевод заведомо не состоялся, ошибка безопасна для автоматического возврата
	ErrAuthGateway = errors.New("points platform auth gateway unreachable")
	// ErrPlatformUnavailable - платформа ответила ошибкой, эффект вызова неизвестен
	ErrPlatformUnavailable = errors.New("points platform unavailable")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Points struct {
	baseURL    string
	token      string
	custody    string
	httpClient HTTPClient
	limiter    *rate.Limiter
}

// Создание клиента платформы баллов
func NewPointsClient(baseURL string, token string, custody string, client HTTPClient) *Points {
	return &Points{
		baseURL:    baseURL,
		token:      token,
		custody:    custody,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(1), 5),
	}
}

type transferRequest struct {
	Destination string `json:"destination"`
	Amount      int64  `json:"amount"`
}

type transferResponse struct {
	ReceiptID string `json:"receipt_id"`
}

// Transfer — перевод баллов получателю от имени кастодиального аккаунта
func (c *Points) Transfer(ctx context.Context, destination string, amount int64) (string, error) {
	var response transferResponse
	err := c.call(ctx, http.MethodPost, "/api/v1/transfer", transferRequest{Destination: destination, Amount: amount}, &response)
	if err != nil {
		return "", err
	}
	return response.ReceiptID, nil
}

type notificationRequest struct {
	Destination string `json:"destination"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

func (c *Points) SendNotification(ctx context.Context, destination string, subject string, body string) error {
	return c.call(ctx, http.MethodPost, "/api/v1/messages/send", notificationRequest{
		Destination: destination,
		Subject:     subject,
		Body:        body,
	}, nil)
}

func (c *Points) ListMessages(ctx context.Context, sinceID string) ([]Message, error) {
	path := "/api/v1/messages/inbox"
	if sinceID != "" {
		path += "?after=" + url.QueryEscape(sinceID)
	}
	var messages []Message
	if err := c.call(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

type markReadRequest struct {
	IDs []string `json:"ids"`
}

func (c *Points) MarkMessagesRead(ctx context.Context, ids []string) error {
	return c.call(ctx, http.MethodPost, "/api/v1/messages/read", markReadRequest{IDs: ids}, nil)
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// CustodyBalance — баланс кастодиального аккаунта глазами платформы
func (c *Points) CustodyBalance(ctx context.Context) (decimal.Decimal, error) {
	var response balanceResponse
	err := c.call(ctx, http.MethodGet, "/api/v1/accounts/"+url.PathEscape(c.custody)+"/balance", nil, &response)
	if err != nil {
		return decimal.Zero, err
	}
	return response.Balance, nil
}

func (c *Points) call(ctx context.Context, method string, path string, payload any, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// сеть до шлюза не дотянулась, вызов не состоялся
		return fmt.Errorf("%w: %s", ErrAuthGateway, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HandleErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return err
		}
	}
	return nil
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusProxyAuthRequired:
		// шлюз аутентификации отверг запрос до исполнения перевода
		return ErrAuthGateway
	case http.StatusTooManyRequests:
		retryAfter := ParseRetryAfter(resp.Header)
		logger.Warn("Points platform rate limit, retry after:", retryAfter)
		return &RateLimitError{RetryAfter: retryAfter}
	default:
		return fmt.Errorf("%w: status %d", ErrPlatformUnavailable, resp.StatusCode)
	}
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
