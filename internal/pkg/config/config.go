package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, payment address)
// - default: Values common across all environments (upstream URLs, TTLs, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Shop   ShopConfig
	Gelato GelatoConfig
	Ledger LedgerConfig
	Rates  RatesConfig
	Cache  CacheConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type ShopConfig struct {
	// BCH address all orders are paid to.
	BCHAddress string `envconfig:"SHOP_BCH_ADDRESS" required:"true"`
}

type GelatoConfig struct {
	// Empty key degrades product listing to "unavailable" instead of failing.
	APIKey     string        `envconfig:"GELATO_API_KEY" default:""`
	CatalogURL string        `envconfig:"GELATO_CATALOG_URL" default:"https://product.gelatoapis.com/v3"`
	OrdersURL  string        `envconfig:"GELATO_ORDERS_URL" default:"https://order.gelatoapis.com/v4/orders"`
	Timeout    time.Duration `envconfig:"GELATO_TIMEOUT" default:"15s"`
}

type LedgerConfig struct {
	URL     string        `envconfig:"LEDGER_URL" default:"https://api.blockchair.com/bitcoin-cash"`
	Timeout time.Duration `envconfig:"LEDGER_TIMEOUT" default:"10s"`
}

type RatesConfig struct {
	URL     string        `envconfig:"RATES_URL" default:"https://api.coingecko.com/api/v3/simple/price"`
	Timeout time.Duration `envconfig:"RATES_TIMEOUT" default:"10s"`
}

type CacheConfig struct {
	CatalogTTL time.Duration `envconfig:"CACHE_CATALOG_TTL" default:"1h"`
	PriceTTL   time.Duration `envconfig:"CACHE_PRICE_TTL" default:"30m"`
	RateTTL    time.Duration `envconfig:"CACHE_RATE_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
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
		Shop: ShopConfig{
			BCHAddress: "bitcoincash:qr2z7dusk64k7sx0gq5xdexp3lmqnkpmc5nq0pyar",
		},
		Gelato: GelatoConfig{
			APIKey:     "test-key",
			CatalogURL: "http://localhost",
			OrdersURL:  "http://localhost",
			Timeout:    time.Second,
		},
		Ledger: LedgerConfig{
			URL:     "http://localhost",
			Timeout: time.Second,
		},
		Rates: RatesConfig{
			URL:     "http://localhost",
			Timeout: time.Second,
		},
		Cache: CacheConfig{
			CatalogTTL: time.Hour,
			PriceTTL:   30 * time.Minute,
			RateTTL:    5 * time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
