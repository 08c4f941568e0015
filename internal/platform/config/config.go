package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pocketfin/pocket_finance_app/internal/utils"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Upstream market data / FX / news providers
	FinnhubBaseURL      string
	FinnhubAPIKey       string
	ExchangeRateBaseURL string
	ExchangeRateAPIKey  string
	AlphaVantageBaseURL string
	AlphaVantageAPIKey  string
	HTTPClientTimeout   time.Duration

	// Fixed base currency for the live rate table.
	BaseCurrency string
	// Currency codes shown in the rate table view.
	RateAllowList []string
	// Currencies offered by the converter.
	AvailableCurrencies []string
	// Ticker symbols for the news sentiment feed.
	NewsTickers []string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "pocket-finance-app")
	viper.SetDefault("FINNHUB_BASE_URL", "https://finnhub.io/api/v1")
	viper.SetDefault("FINNHUB_API_KEY", "")
	viper.SetDefault("EXCHANGERATE_BASE_URL", "https://api.exchangerate.host")
	viper.SetDefault("EXCHANGERATE_API_KEY", "")
	viper.SetDefault("ALPHAVANTAGE_BASE_URL", "https://www.alphavantage.co")
	viper.SetDefault("ALPHAVANTAGE_API_KEY", "")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "30s")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RATE_ALLOW_LIST", []string{"EUR", "UAH"})
	viper.SetDefault("AVAILABLE_CURRENCIES", []string{"USD", "EUR", "UAH", "GBP", "JPY", "CAD", "AUD", "CNY"})
	viper.SetDefault("NEWS_TICKERS", []string{"AAPL", "MSFT", "GOOG", "TSLA"})
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		// Ephemeral secret: tokens stop validating across restarts.
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		log.Println("Warning: JWT_SECRET not set. Generated an ephemeral secret for this process.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.FinnhubBaseURL = viper.GetString("FINNHUB_BASE_URL")
	cfg.FinnhubAPIKey = viper.GetString("FINNHUB_API_KEY")
	if cfg.FinnhubAPIKey == "" {
		log.Println("Warning: FINNHUB_API_KEY not set. Quote fetches will be rejected upstream.")
	}
	cfg.ExchangeRateBaseURL = viper.GetString("EXCHANGERATE_BASE_URL")
	cfg.ExchangeRateAPIKey = viper.GetString("EXCHANGERATE_API_KEY")
	cfg.AlphaVantageBaseURL = viper.GetString("ALPHAVANTAGE_BASE_URL")
	cfg.AlphaVantageAPIKey = viper.GetString("ALPHAVANTAGE_API_KEY")

	timeoutStr := viper.GetString("HTTP_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.HTTPClientTimeout = timeout

	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")
	cfg.RateAllowList = viper.GetStringSlice("RATE_ALLOW_LIST")
	cfg.AvailableCurrencies = viper.GetStringSlice("AVAILABLE_CURRENCIES")
	cfg.NewsTickers = viper.GetStringSlice("NEWS_TICKERS")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
