package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   ledger endpoint, payee wallet) and security settings
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Ledger LedgerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// LedgerConfig describes the external Solana ledger the purchase flow pays
// into. PayeeWallet is the service-owned account every purchase is paid to;
// PriceBaseUnits is the fixed asset price in the token's base unit. The
// price is never taken from a request body.
type LedgerConfig struct {
	RPCEndpoint         string        `envconfig:"LEDGER_RPC_ENDPOINT" required:"true"`
	TokenMint           string        `envconfig:"LEDGER_TOKEN_MINT" required:"true"`
	PayeeWallet         string        `envconfig:"LEDGER_PAYEE_WALLET" required:"true"`
	AuthorityKey        string        `envconfig:"LEDGER_AUTHORITY_KEY" required:"true"`
	PriceBaseUnits      uint64        `envconfig:"LEDGER_PRICE_BASE_UNITS" default:"100"`
	ConfirmTimeout      time.Duration `envconfig:"LEDGER_CONFIRM_TIMEOUT" default:"30s"`
	ConfirmPollInterval time.Duration `envconfig:"LEDGER_CONFIRM_POLL_INTERVAL" default:"500ms"`
	PublicBaseURL       string        `envconfig:"PUBLIC_BASE_URL" default:"https://nft-market.example.com"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Ledger: LedgerConfig{
			RPCEndpoint:         "http://localhost:18899",
			TokenMint:           "So11111111111111111111111111111111111111112",
			PayeeWallet:         "11111111111111111111111111111111",
			PriceBaseUnits:      100,
			ConfirmTimeout:      5 * time.Second,
			ConfirmPollInterval: 50 * time.Millisecond,
			PublicBaseURL:       "https://nft-market.example.com",
		},
	}
}
