package client

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"

	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/models"
)

// ChainClient - контракт клиента блокчейна
type ChainClient interface {
	WithdrawalsEnabled(ctx context.Context) (bool, error)
	WithdrawalHash(nonce []byte, amount int64) []byte
	Sign(hash []byte) ([]byte, error)
	SendTransaction(ctx context.Context, transaction models.QueuedTransaction, gasPrice uint64) (string, error)
	IsMined(ctx context.Context, txHash string) (bool, error)
	RecommendGasPrice(ctx context.Context) (uint64, error)
	MintPayload(recipient string, amount int64) []byte
}

var (
	ErrChainUnavailable = errors.New("chain rpc unavailable")
	ErrNoCustodyKey     = errors.New("custody private key is not configured")
	ErrOracleBadAnswer  = errors.New("gas oracle returned unusable answer")
)

// селекторы методов токен-контракта
var (
	selectorWithdrawalsEnabled = keccak256([]byte("withdrawalsEnabled()"))[:4]
	selectorMint               = keccak256([]byte("mint(address,uint256)"))[:4]
)

type Ethereum struct {
	rpcURL     string
	oracleURL  string
	contract   []byte
	custody    string
	key        *secp256k1.PrivateKey
	chainID    int64
	httpClient HTTPClient
}

// Создание клиента блокчейна
func NewChainClient(cfg config.ChainConfig, client HTTPClient) (*Ethereum, error) {
	var key *secp256k1.PrivateKey
	if cfg.CustodyKey != "" {
		raw, err := hex.DecodeString(strings.TrimPrefix(cfg.CustodyKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to decode custody key: %w", err)
		}
		key = secp256k1.PrivKeyFromBytes(raw)
	}

	contract, err := hex.DecodeString(strings.TrimPrefix(cfg.ContractAddr, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode contract address: %w", err)
	}

	return &Ethereum{
		rpcURL:     cfg.RPCAddr,
		oracleURL:  cfg.GasOracleAddr,
		contract:   contract,
		custody:    cfg.CustodyAddr,
		key:        key,
		chainID:    cfg.ChainID,
		httpClient: client,
	}, nil
}

// WithdrawalsEnabled — глобальный флаг контракта, разрешены ли выводы on-chain
func (c *Ethereum) WithdrawalsEnabled(ctx context.Context) (bool, error) {
	params := []any{
		map[string]string{
			"to":   "0x" + hex.EncodeToString(c.contract),
			"data": "0x" + hex.EncodeToString(selectorWithdrawalsEnabled),
		},
		"latest",
	}
	var result string
	if err := c.rpcCall(ctx, "eth_call", params, &result); err != nil {
		return false, err
	}
	return strings.HasSuffix(result, "1"), nil
}

// WithdrawalHash — хэш сообщения вывода, определённый токен-контрактом:
// keccak256(nonce || amount || адрес контракта)
func (c *Ethereum) WithdrawalHash(nonce []byte, amount int64) []byte {
	payload := make([]byte, 0, 64+len(c.contract))
	payload = append(payload, pad32(nonce)...)
	payload = append(payload, pad32Int(amount)...)
	payload = append(payload, c.contract...)
	return keccak256(payload)
}

// Sign — подпись хэша кастодиальным ключом, результат в порядке r||s||v
func (c *Ethereum) Sign(hash []byte) ([]byte, error) {
	if c.key == nil {
		return nil, ErrNoCustodyKey
	}
	// SignCompact выдаёт [v, r, s], переставляем v в конец
	compact := ecdsa.SignCompact(c.key, hash, false)
	signature := make([]byte, 65)
	copy(signature[0:32], compact[1:33])
	copy(signature[32:64], compact[33:65])
	signature[64] = compact[0]
	return signature, nil
}

func (c *Ethereum) SendTransaction(ctx context.Context, transaction models.QueuedTransaction, gasPrice uint64) (string, error) {
	params := []any{
		map[string]string{
			"from":     transaction.Sender,
			"to":       transaction.Recipient,
			"gas":      fmt.Sprintf("0x%x", transaction.GasLimit),
			"gasPrice": fmt.Sprintf("0x%x", gasPrice),
			"value":    fmt.Sprintf("0x%x", transaction.Value),
			"data":     "0x" + hex.EncodeToString(transaction.Payload),
		},
	}
	var txHash string
	if err := c.rpcCall(ctx, "eth_sendTransaction", params, &txHash); err != nil {
		return "", err
	}
	return txHash, nil
}

func (c *Ethereum) IsMined(ctx context.Context, txHash string) (bool, error) {
	var receipt json.RawMessage
	if err := c.rpcCall(ctx, "eth_getTransactionReceipt", []any{txHash}, &receipt); err != nil {
		return false, err
	}
	return len(receipt) > 0 && string(receipt) != "null", nil
}

type oracleResponse struct {
	Fast decimal.Decimal `json:"fast"`
}

// RecommendGasPrice — рекомендация цены газа от внешнего оракула, в wei
func (c *Ethereum) RecommendGasPrice(ctx context.Context) (uint64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.oracleURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrOracleBadAnswer, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrOracleBadAnswer, resp.StatusCode)
	}

	var answer oracleResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrOracleBadAnswer, err.Error())
	}
	if answer.Fast.LessThanOrEqual(decimal.Zero) {
		return 0, ErrOracleBadAnswer
	}
	// оракул отвечает в gwei, переводим в wei
	wei := answer.Fast.Shift(9).Truncate(0)
	if !wei.BigInt().IsUint64() {
		return 0, ErrOracleBadAnswer
	}
	return wei.BigInt().Uint64(), nil
}

// MintPayload — calldata вызова mint(address,uint256)
func (c *Ethereum) MintPayload(recipient string, amount int64) []byte {
	address, err := hex.DecodeString(strings.TrimPrefix(recipient, "0x"))
	if err != nil {
		address = nil
	}
	payload := make([]byte, 0, 4+64)
	payload = append(payload, selectorMint...)
	payload = append(payload, pad32(address)...)
	payload = append(payload, pad32Int(amount)...)
	return payload
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Ethereum) rpcCall(ctx context.Context, method string, params []any, result any) error {
	data, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrChainUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrChainUnavailable, resp.StatusCode)
	}

	var answer rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return err
	}
	if answer.Error != nil {
		return fmt.Errorf("%w: rpc error %d: %s", ErrChainUnavailable, answer.Error.Code, answer.Error.Message)
	}
	if result != nil {
		if raw, ok := result.(*json.RawMessage); ok {
			*raw = answer.Result
			return nil
		}
		return json.Unmarshal(answer.Result, result)
	}
	return nil
}

func keccak256(data []byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return hash.Sum(nil)
}

func pad32(data []byte) []byte {
	padded := make([]byte, 32)
	if len(data) > 32 {
		data = data[len(data)-32:]
	}
	copy(padded[32-len(data):], data)
	return padded
}

func pad32Int(value int64) []byte {
	padded := make([]byte, 32)
	for i := 0; i < 8; i++ {
		padded[31-i] = byte(value >> (8 * i))
	}
	return padded
}
