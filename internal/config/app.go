package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envFile    = ".env"
	configFile = "config.yaml"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	// 0 means the outbound call has no timeout of its own.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type ExchangeRateAPI struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Form struct {
	DefaultFrom string   `mapstructure:"default_from"`
	DefaultTo   string   `mapstructure:"default_to"`
	Currencies  []string `mapstructure:"currencies"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AppConfig struct {
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	Form            Form            `mapstructure:"form"`
	Logging         Logging         `mapstructure:"logging"`
}

var defaultCurrencies = []string{
	"AUD", "BRL", "CAD", "CHF", "CNY", "EUR", "GBP", "HKD", "INR", "JPY",
	"KRW", "MXN", "NOK", "NZD", "PLN", "SEK", "SGD", "TRY", "USD", "ZAR",
}

// Init builds the application config from .env, config.yaml and the environment.
// Both files are optional.
func Init() (*AppConfig, error) {
	return load(envFile, configFile)
}

func load(envPath, configPath string) (*AppConfig, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("http_server.port", "3000")
	v.SetDefault("http_client.timeout_seconds", 0)
	v.SetDefault("exchange_rate_api.base_url", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("form.default_from", "INR")
	v.SetDefault("form.default_to", "USD")
	v.SetDefault("form.currencies", defaultCurrencies)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	_ = v.BindEnv("http_server.port", "PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("exchange_rate_api.base_url", "EXCHANGE_RATE_API_BASE_URL")
	_ = v.BindEnv("exchange_rate_api.api_key", "EXCHANGE_RATE_API_KEY")
	_ = v.BindEnv("form.default_from", "FORM_DEFAULT_FROM")
	_ = v.BindEnv("form.default_to", "FORM_DEFAULT_TO")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.ExchangeRateAPI.BaseURL = strings.TrimSuffix(cfg.ExchangeRateAPI.BaseURL, "/")
	cfg.Form.DefaultFrom = strings.ToUpper(strings.TrimSpace(cfg.Form.DefaultFrom))
	cfg.Form.DefaultTo = strings.ToUpper(strings.TrimSpace(cfg.Form.DefaultTo))
	return &cfg, nil
}
