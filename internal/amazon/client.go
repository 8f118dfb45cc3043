// Package amazon implements shopstore.Store against the Amazon Selling
// Partner API: Login with Amazon for the token exchange and the Listings
// Items API for catalog calls.
package amazon

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

const (
	defaultTokenURL      = "https://api.amazon.com/auth/o2/token" //nolint:gosec // not a credential
	defaultAPIURL        = "https://sellingpartnerapi-na.amazon.com"
	defaultAuthURL       = "https://sellercentral.amazon.com/apps/authorize/consent"
	defaultProductURL    = "https://www.amazon.com/dp"
	defaultMarketplaceID = "ATVPDKIKX0DER" // amazon.com

	listingsPath = "/listings/2021-08-01/items/"

	// accessTokenHeader carries the LWA token on SP-API calls.
	accessTokenHeader = "x-amz-access-token"
)

// Store is the Amazon adapter. Construct it with New.
type Store struct {
	shopstore.TokenHolder

	tokenURL      string
	apiURL        string
	authURL       string
	productURL    string
	sellerID      string
	marketplaceID string

	httpOpts []httpx.Option
	http     *httpx.Client
}

var _ shopstore.Store = (*Store)(nil)

// Option configures the Store.
type Option func(*Store)

// WithTokenURL overrides the Login with Amazon token endpoint.
func WithTokenURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.tokenURL = u
		}
	}
}

// WithAPIURL overrides the regional SP-API endpoint.
func WithAPIURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.apiURL = strings.TrimRight(u, "/")
		}
	}
}

// WithAuthURL overrides the Seller Central consent page.
func WithAuthURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.authURL = u
		}
	}
}

// WithProductURL overrides the detail page prefix used for permalinks.
func WithProductURL(u string) Option {
	return func(s *Store) {
		if u != "" {
			s.productURL = strings.TrimRight(u, "/")
		}
	}
}

// WithSellerID sets the merchant id used by CreateProduct when the
// payload does not carry one.
func WithSellerID(id string) Option {
	return func(s *Store) {
		s.sellerID = id
	}
}

// WithMarketplaceID overrides the marketplace (default amazon.com).
func WithMarketplaceID(id string) Option {
	return func(s *Store) {
		if id != "" {
			s.marketplaceID = id
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

// New creates an Amazon store. It performs no I/O.
func New(opts ...Option) *Store {
	s := &Store{
		tokenURL:      defaultTokenURL,
		apiURL:        defaultAPIURL,
		authURL:       defaultAuthURL,
		productURL:    defaultProductURL,
		marketplaceID: defaultMarketplaceID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.http = httpx.New(shopstore.VendorAmazon.String(), s.httpOpts...)
	return s
}

func (s *Store) authHeader() http.Header {
	h := http.Header{}
	if token := s.Token(); token != "" {
		h.Set(accessTokenHeader, token)
	}
	return h
}
