// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Vendor       string             `yaml:"vendor"` // amazon, mercadolivre
	HTTP         HTTPConfig         `yaml:"http"`
	MercadoLivre MercadoLivreConfig `yaml:"mercadolivre"`
	Amazon       AmazonConfig       `yaml:"amazon"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// HTTPConfig defines outbound HTTP client settings shared by all vendors.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// MercadoLivreConfig defines Mercado Livre application and endpoint settings.
type MercadoLivreConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
	APIURL       string `yaml:"api_url"`
	AuthURL      string `yaml:"auth_url"`
	ProductURL   string `yaml:"product_url"`
	SiteID       string `yaml:"site_id"`
}

// AmazonConfig defines Selling Partner API application and endpoint settings.
type AmazonConfig struct {
	ClientID      string `yaml:"client_id"`
	ClientSecret  string `yaml:"client_secret"`
	ApplicationID string `yaml:"application_id"`
	RedirectURI   string `yaml:"redirect_uri"`
	TokenURL      string `yaml:"token_url"`
	APIURL        string `yaml:"api_url"`
	AuthURL       string `yaml:"auth_url"`
	ProductURL    string `yaml:"product_url"`
	SellerID      string `yaml:"seller_id"`
	MarketplaceID string `yaml:"marketplace_id"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, console
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, for use when
// no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Vendor == "" {
		cfg.Vendor = "mercadolivre"
	}
	applyHTTPDefaults(&cfg.HTTP)
	applyMercadoLivreDefaults(&cfg.MercadoLivre)
	applyAmazonDefaults(&cfg.Amazon)
	applyLoggingDefaults(&cfg.Logging)
}

func applyHTTPDefaults(h *HTTPConfig) {
	if h.Timeout == 0 {
		h.Timeout = 30 * time.Second
	}
	if h.UserAgent == "" {
		h.UserAgent = "shopstore/1.0"
	}
}

func applyMercadoLivreDefaults(m *MercadoLivreConfig) {
	if m.APIURL == "" {
		m.APIURL = "https://api.mercadolibre.com"
	}
	if m.AuthURL == "" {
		m.AuthURL = "https://auth.mercadolivre.com.br/authorization"
	}
	if m.ProductURL == "" {
		m.ProductURL = "https://produto.mercadolivre.com.br"
	}
	if m.SiteID == "" {
		m.SiteID = "MLB"
	}
}

func applyAmazonDefaults(a *AmazonConfig) {
	if a.TokenURL == "" {
		a.TokenURL = "https://api.amazon.com/auth/o2/token"
	}
	if a.APIURL == "" {
		a.APIURL = "https://sellingpartnerapi-na.amazon.com"
	}
	if a.AuthURL == "" {
		a.AuthURL = "https://sellercentral.amazon.com/apps/authorize/consent"
	}
	if a.ProductURL == "" {
		a.ProductURL = "https://www.amazon.com/dp"
	}
	if a.MarketplaceID == "" {
		a.MarketplaceID = "ATVPDKIKX0DER"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Vendor {
	case "amazon", "mercadolivre":
	default:
		errs = append(errs, fmt.Errorf(
			"vendor must be one of: amazon, mercadolivre (got %q)",
			cfg.Vendor,
		))
	}

	if cfg.HTTP.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative"))
	}

	urls := map[string]string{
		"mercadolivre.api_url":      cfg.MercadoLivre.APIURL,
		"mercadolivre.auth_url":     cfg.MercadoLivre.AuthURL,
		"mercadolivre.product_url":  cfg.MercadoLivre.ProductURL,
		"mercadolivre.redirect_uri": cfg.MercadoLivre.RedirectURI,
		"amazon.token_url":          cfg.Amazon.TokenURL,
		"amazon.api_url":            cfg.Amazon.APIURL,
		"amazon.auth_url":           cfg.Amazon.AuthURL,
		"amazon.product_url":        cfg.Amazon.ProductURL,
		"amazon.redirect_uri":       cfg.Amazon.RedirectURI,
	}
	keys := make([]string, 0, len(urls))
	for k := range urls {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := checkURL(urls[k]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf(
			"logging.level must be one of: debug, info, warn, error (got %q)",
			cfg.Logging.Level,
		))
	}
	switch cfg.Logging.Format {
	case "text", "json", "console":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json, console (got %q)",
			cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}

// checkURL accepts empty values and absolute http(s) URLs.
func checkURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL (got %q)", raw)
	}
	return nil
}
