// Package mercadolivre implements shopstore.Store against the Mercado
// Livre OAuth and REST APIs.
package mercadolivre

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

const (
	defaultAPIURL     = "https://api.mercadolibre.com"
	defaultAuthURL    = "https://auth.mercadolivre.com.br/authorization"
	defaultProductURL = "https://produto.mercadolivre.com.br"
	defaultSiteID     = "MLB"
)

// Store is the Mercado Livre adapter. Construct it with New; the zero
// value is not usable.
type Store struct {
	shopstore.TokenHolder

	apiURL     string
	authURL    string
	productURL string
	siteID     string

	httpOpts []httpx.Option
	http     *httpx.Client
}

var _ shopstore.Store = (*Store)(nil)

// Option configures the Store.
type Option func(*Store)

// WithAPIURL overrides the REST API base URL.
func WithAPIURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.apiURL = strings.TrimRight(u, "/")
		}
	}
}

// WithAuthURL overrides the authorization page URL used by AuthURL.
func WithAuthURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.authURL = u
		}
	}
}

// WithProductURL overrides the product page host used by ProductLink.
func WithProductURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.productURL = strings.TrimRight(u, "/")
		}
	}
}

// WithSiteID overrides the marketplace site searched (default MLB).
func WithSiteID(id string) Option {
	return func(s *Store) {
		if id != "" {
			s.siteID = id
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Store) {
		s.httpOpts = append(s.httpOpts, httpx.WithHTTPClient(hc))
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.httpOpts = append(s.httpOpts, httpx.WithLogger(l))
	}
}

// WithUserAgent overrides the User-Agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(s *Store) {
		s.httpOpts = append(s.httpOpts, httpx.WithUserAgent(ua))
	}
}

// New creates a Mercado Livre store. It performs no I/O; call Login to
// obtain a token, or SetToken to reuse one.
func New(opts ...Option) *Store {
	s := &Store{
		apiURL:     defaultAPIURL,
		authURL:    defaultAuthURL,
		productURL: defaultProductURL,
		siteID:     defaultSiteID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.http = httpx.New(shopstore.VendorMercadoLivre.String(), s.httpOpts...)
	return s
}

// bearer returns the Authorization header for the stored token. No header
// is sent before a token has been set.
func (s *Store) bearer() http.Header {
	h := http.Header{}
	if token := s.Token(); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
