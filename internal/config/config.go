package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the wire format for dates across the API and configuration.
const DateFormat = "2006-01-02"

type Config struct {
	Environment string           `mapstructure:"environment"`
	LogLevel    string           `mapstructure:"log_level"`
	Server      ServerConfig     `mapstructure:"server"`
	Instruments []Instrument     `mapstructure:"instruments"`
	Generator   GeneratorConfig  `mapstructure:"generator"`
	MarketData  MarketDataConfig `mapstructure:"market_data"`
	Analysis    AnalysisConfig   `mapstructure:"analysis"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Instrument describes one tradable symbol in the analysis universe.
// BasePrice anchors the synthetic process; Volatility and
// SentimentVolatility are the standard deviations of the two independent
// Gaussian shocks applied per business day. A single-shock process is
// configured by setting sentiment_volatility to zero.
type Instrument struct {
	Symbol              string  `mapstructure:"symbol" json:"symbol"`
	BasePrice           float64 `mapstructure:"base_price" json:"base_price"`
	Volatility          float64 `mapstructure:"volatility" json:"volatility"`
	SentimentVolatility float64 `mapstructure:"sentiment_volatility" json:"sentiment_volatility"`
}

type GeneratorConfig struct {
	// FloorFraction is the fraction of an instrument's base price below
	// which a generated price is never allowed to fall.
	FloorFraction float64 `mapstructure:"floor_fraction"`
	// StartDispersion bounds the uniform draw applied to the base price
	// on the first business day.
	StartDispersion float64 `mapstructure:"start_dispersion"`
	// TrendAmplitude scales the deterministic cyclical drift shared by
	// all instruments.
	TrendAmplitude float64 `mapstructure:"trend_amplitude"`
	// TrendFrequency is the per-day phase increment of the drift cycle.
	TrendFrequency float64 `mapstructure:"trend_frequency"`
}

type MarketDataConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Timeout string `mapstructure:"timeout"`
}

type AnalysisConfig struct {
	DefaultStartDate string `mapstructure:"default_start_date"`
	DefaultEndDate   string `mapstructure:"default_end_date"`
	// TailWindow is the number of trailing observations echoed back in
	// the price and return tables of the analyze response.
	TailWindow int `mapstructure:"tail_window"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Environment = strings.ToLower(config.Environment)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded configuration for values the pipeline cannot
// work with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in (0, 65535], got %d", c.Server.Port)
	}

	if len(c.Instruments) == 0 {
		return fmt.Errorf("at least one instrument must be configured")
	}
	seen := make(map[string]bool, len(c.Instruments))
	for _, inst := range c.Instruments {
		if inst.Symbol == "" {
			return fmt.Errorf("instrument symbol must not be empty")
		}
		if seen[inst.Symbol] {
			return fmt.Errorf("duplicate instrument symbol %q", inst.Symbol)
		}
		seen[inst.Symbol] = true
		if inst.BasePrice <= 0 {
			return fmt.Errorf("instrument %s: base price must be positive, got %v", inst.Symbol, inst.BasePrice)
		}
		if inst.Volatility <= 0 {
			return fmt.Errorf("instrument %s: volatility must be positive, got %v", inst.Symbol, inst.Volatility)
		}
		if inst.SentimentVolatility < 0 {
			return fmt.Errorf("instrument %s: sentiment volatility must not be negative, got %v", inst.Symbol, inst.SentimentVolatility)
		}
	}

	if c.Generator.FloorFraction <= 0 || c.Generator.FloorFraction >= 1 {
		return fmt.Errorf("generator floor fraction must be in (0, 1), got %v", c.Generator.FloorFraction)
	}
	if c.Generator.StartDispersion < 0 || c.Generator.StartDispersion >= 1 {
		return fmt.Errorf("generator start dispersion must be in [0, 1), got %v", c.Generator.StartDispersion)
	}

	if c.MarketData.Timeout != "" {
		if _, err := time.ParseDuration(c.MarketData.Timeout); err != nil {
			return fmt.Errorf("invalid market data timeout: %w", err)
		}
	}

	for _, d := range []string{c.Analysis.DefaultStartDate, c.Analysis.DefaultEndDate} {
		if _, err := time.Parse(DateFormat, d); err != nil {
			return fmt.Errorf("invalid default analysis date %q: %w", d, err)
		}
	}
	if c.Analysis.TailWindow <= 0 {
		return fmt.Errorf("analysis tail window must be positive, got %d", c.Analysis.TailWindow)
	}

	return nil
}

// Symbols returns the configured instrument symbols in declaration order.
func (c *Config) Symbols() []string {
	symbols := make([]string, len(c.Instruments))
	for i, inst := range c.Instruments {
		symbols[i] = inst.Symbol
	}
	return symbols
}

// MarketDataTimeout returns the parsed fetch timeout, falling back to 15s.
func (c *Config) MarketDataTimeout() time.Duration {
	if c.MarketData.Timeout == "" {
		return 15 * time.Second
	}
	d, err := time.ParseDuration(c.MarketData.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Server
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Instrument universe: large-cap NSE symbols with nominal base prices
	viper.SetDefault("instruments", []map[string]interface{}{
		{"symbol": "RELIANCE.NS", "base_price": 2500.0, "volatility": 0.01, "sentiment_volatility": 0.005},
		{"symbol": "TCS.NS", "base_price": 3500.0, "volatility": 0.01, "sentiment_volatility": 0.005},
		{"symbol": "INFY.NS", "base_price": 1800.0, "volatility": 0.01, "sentiment_volatility": 0.005},
		{"symbol": "HDFCBANK.NS", "base_price": 1600.0, "volatility": 0.01, "sentiment_volatility": 0.005},
		{"symbol": "ITC.NS", "base_price": 400.0, "volatility": 0.01, "sentiment_volatility": 0.005},
	})

	// Generator
	viper.SetDefault("generator.floor_fraction", 0.5)
	viper.SetDefault("generator.start_dispersion", 0.1)
	viper.SetDefault("generator.trend_amplitude", 0.001)
	viper.SetDefault("generator.trend_frequency", 0.1)

	// Market data
	viper.SetDefault("market_data.enabled", false)
	viper.SetDefault("market_data.timeout", "15s")

	// Analysis
	viper.SetDefault("analysis.default_start_date", "2024-09-01")
	viper.SetDefault("analysis.default_end_date", "2024-10-01")
	viper.SetDefault("analysis.tail_window", 5)
}
