package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr      string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN     string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret       string `env:"JWT_SECRET" envDefault:"secret"`
	PointsAPIAddr   string `env:"POINTS_API_ADDRESS" envDefault:"http://localhost:8081"`
	PointsAPIToken  string `env:"POINTS_API_TOKEN" envDefault:""`
	CustodyAccount  string `env:"POINTS_CUSTODY_ACCOUNT" envDefault:"bridge-bot"`
	ChainRPCAddr    string `env:"CHAIN_RPC_ADDRESS" envDefault:"http://localhost:8545"`
	GasOracleAddr   string `env:"GAS_ORACLE_ADDRESS" envDefault:"https://ethgasstation.info/json/ethgasAPI.json"`
	ContractAddr    string `env:"TOKEN_CONTRACT_ADDRESS" envDefault:""`
	CustodyKey      string `env:"CUSTODY_PRIVATE_KEY" envDefault:""`
	CustodyAddr     string `env:"CUSTODY_ADDRESS" envDefault:""`
	ChainID         int64  `env:"CHAIN_ID" envDefault:"1"`
	DefaultGasPrice int64  `env:"DEFAULT_GAS_PRICE" envDefault:"20000000000"`
	Asset           string `env:"BRIDGE_ASSET" envDefault:"donut"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// PointsConfig модель настроек клиента платформы баллов
type PointsConfig struct {
	APIAddr        string
	APIToken       string
	CustodyAccount string
}

// ChainConfig модель настроек клиента блокчейна
type ChainConfig struct {
	RPCAddr         string
	GasOracleAddr   string
	ContractAddr    string
	CustodyKey      string
	CustodyAddr     string
	ChainID         int64
	DefaultGasPrice int64
	GasLimit        int64
}

// DispatchConfig модель настроек очереди отправки транзакций
type DispatchConfig struct {
	PollInterval  time.Duration
	MinedInterval time.Duration
	MinedTimeout  time.Duration
	MaxAttempts   int
}

// DeliveriesConfig модель настроек обработчика входящих переводов
type DeliveriesConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// ReconcileConfig модель настроек монитора сверки балансов
type ReconcileConfig struct {
	Interval time.Duration
	Asset    string
}

// Config модель настроек сервиса
type Config struct {
	Server     ServerConfig
	Points     PointsConfig
	Chain      ChainConfig
	Dispatch   DispatchConfig
	Deliveries DeliveriesConfig
	Reconcile  ReconcileConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		points   = pflag.StringP("points", "p", args.PointsAPIAddr, "Points platform API address.")
		chainRPC = pflag.StringP("chain", "c", args.ChainRPCAddr, "Chain JSON-RPC address.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Points: PointsConfig{
			APIAddr:        *points,
			APIToken:       args.PointsAPIToken,
			CustodyAccount: args.CustodyAccount,
		},
		Chain: ChainConfig{
			RPCAddr:         *chainRPC,
			GasOracleAddr:   args.GasOracleAddr,
			ContractAddr:    args.ContractAddr,
			CustodyKey:      args.CustodyKey,
			CustodyAddr:     args.CustodyAddr,
			ChainID:         args.ChainID,
			DefaultGasPrice: args.DefaultGasPrice,
			GasLimit:        150000,
		},
		Dispatch: DispatchConfig{
			PollInterval:  5 * time.Second,
			MinedInterval: 10 * time.Second,
			MinedTimeout:  10 * time.Minute,
			MaxAttempts:   5,
		},
		Deliveries: DeliveriesConfig{
			PollInterval: 30 * time.Second,
			BatchSize:    25,
		},
		Reconcile: ReconcileConfig{
			Interval: 5 * time.Minute,
			Asset:    args.Asset,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Points: PointsConfig{
			APIAddr:        "http://localhost:8081",
			CustodyAccount: "bridge-bot",
		},
		Chain: ChainConfig{
			RPCAddr:         "http://localhost:8545",
			DefaultGasPrice: 20000000000,
			ChainID:         1,
			GasLimit:        150000,
		},
		Dispatch: DispatchConfig{
			PollInterval:  5 * time.Second,
			MinedInterval: 10 * time.Second,
			MinedTimeout:  10 * time.Minute,
			MaxAttempts:   5,
		},
		Deliveries: DeliveriesConfig{
			PollInterval: 30 * time.Second,
			BatchSize:    25,
		},
		Reconcile: ReconcileConfig{
			Interval: 5 * time.Minute,
			Asset:    "donut",
		},
	}
}
