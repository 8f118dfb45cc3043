// Package stores is the public entry point for the marketplace adapters.
// It re-exports the concrete store types and builds them from the
// application configuration.
package stores

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/donaldgifford/shopstore/internal/amazon"
	"github.com/donaldgifford/shopstore/internal/config"
	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/internal/mercadolivre"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

// AmazonStore is the Amazon Selling Partner API adapter.
type AmazonStore = amazon.Store

// MercadoLivreStore is the Mercado Livre adapter.
type MercadoLivreStore = mercadolivre.Store

// Mercado Livre listing payloads and search pages.
type (
	MercadoLivreCreateItemPayload = mercadolivre.CreateItemPayload
	MercadoLivreDescription       = mercadolivre.Description
	MercadoLivrePicture           = mercadolivre.Picture
	MercadoLivreSearchResult      = mercadolivre.SearchResult
	MercadoLivrePaging            = mercadolivre.Paging
)

// Amazon listing payloads and listings pages.
type (
	AmazonListingPayload = amazon.ListingPayload
	AmazonListingsPage   = amazon.ListingsPage
	AmazonPagination     = amazon.Pagination
)

// Config is the adapter configuration accepted by the constructors.
type Config = config.Config

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// DefaultConfig returns the production endpoints with no credentials.
func DefaultConfig() *Config { return config.Default() }

// Vendors lists every supported marketplace.
func Vendors() []shopstore.Vendor {
	return []shopstore.Vendor{shopstore.VendorAmazon, shopstore.VendorMercadoLivre}
}

// ParseVendor resolves a vendor name case-insensitively.
func ParseVendor(name string) (shopstore.Vendor, error) {
	for _, v := range Vendors() {
		if strings.EqualFold(strings.TrimSpace(name), v.String()) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", shopstore.ErrUnknownVendor, name)
}

// New builds the adapter for vendor. A nil cfg uses config.Default and a
// nil logger discards output.
func New(vendor shopstore.Vendor, cfg *config.Config, l *slog.Logger) (shopstore.Store, error) {
	switch vendor {
	case shopstore.VendorAmazon:
		return NewAmazonStore(cfg, l), nil
	case shopstore.VendorMercadoLivre:
		return NewMercadoLivreStore(cfg, l), nil
	default:
		return nil, fmt.Errorf("%w: %q", shopstore.ErrUnknownVendor, vendor)
	}
}

// NewAmazonStore builds an Amazon adapter from cfg.
func NewAmazonStore(cfg *config.Config, l *slog.Logger) *AmazonStore {
	if cfg == nil {
		cfg = config.Default()
	}
	a := cfg.Amazon
	return amazon.New(
		amazon.WithTokenURL(a.TokenURL),
		amazon.WithAPIURL(a.APIURL),
		amazon.WithAuthURL(a.AuthURL),
		amazon.WithProductURL(a.ProductURL),
		amazon.WithSellerID(a.SellerID),
		amazon.WithMarketplaceID(a.MarketplaceID),
		amazon.WithHTTPClient(httpClient(cfg.HTTP)),
		amazon.WithUserAgent(cfg.HTTP.UserAgent),
		amazon.WithLogger(l),
	)
}

// NewMercadoLivreStore builds a Mercado Livre adapter from cfg.
func NewMercadoLivreStore(cfg *config.Config, l *slog.Logger) *MercadoLivreStore {
	if cfg == nil {
		cfg = config.Default()
	}
	m := cfg.MercadoLivre
	return mercadolivre.New(
		mercadolivre.WithAPIURL(m.APIURL),
		mercadolivre.WithAuthURL(m.AuthURL),
		mercadolivre.WithProductURL(m.ProductURL),
		mercadolivre.WithSiteID(m.SiteID),
		mercadolivre.WithHTTPClient(httpClient(cfg.HTTP)),
		mercadolivre.WithUserAgent(cfg.HTTP.UserAgent),
		mercadolivre.WithLogger(l),
	)
}

// Credentials returns the OAuth client credentials and redirect URI
// configured for vendor.
func Credentials(vendor shopstore.Vendor, cfg *config.Config) (clientID, clientSecret, redirectURI string) {
	if cfg == nil {
		return "", "", ""
	}
	switch vendor {
	case shopstore.VendorAmazon:
		return cfg.Amazon.ClientID, cfg.Amazon.ClientSecret, cfg.Amazon.RedirectURI
	case shopstore.VendorMercadoLivre:
		return cfg.MercadoLivre.ClientID, cfg.MercadoLivre.ClientSecret, cfg.MercadoLivre.RedirectURI
	default:
		return "", "", ""
	}
}

// AuthURL builds the seller consent URL for vendor. Amazon uses the
// configured application id, falling back to the client id.
func AuthURL(store shopstore.Store, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	switch s := store.(type) {
	case *AmazonStore:
		appID := cfg.Amazon.ApplicationID
		if appID == "" {
			appID = cfg.Amazon.ClientID
		}
		return s.AuthURL(appID, cfg.Amazon.RedirectURI), nil
	case *MercadoLivreStore:
		return s.AuthURL(cfg.MercadoLivre.ClientID, cfg.MercadoLivre.RedirectURI), nil
	default:
		return "", fmt.Errorf("%w: %T has no authorization URL", shopstore.ErrUnknownVendor, store)
	}
}

// httpClient applies the configured timeout, or httpx.DefaultTimeout when
// none is set.
func httpClient(h config.HTTPConfig) *http.Client {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = httpx.DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
