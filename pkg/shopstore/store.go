// Package shopstore defines the contract every marketplace adapter
// satisfies, along with the token holder, error taxonomy and price
// formatting shared between them.
package shopstore

import (
	"context"
	"encoding/json"

	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// Vendor identifies a marketplace.
type Vendor string

// Supported vendors.
const (
	VendorAmazon       Vendor = "amazon"
	VendorMercadoLivre Vendor = "mercadolivre"
)

// String implements fmt.Stringer.
func (v Vendor) String() string { return string(v) }

// Store is the capability set a marketplace adapter implements. Every
// call that reaches the network takes a context and issues at most one
// HTTP request.
type Store interface {
	// Login exchanges an OAuth authorization code for an access token and
	// stores the token on success.
	Login(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*LoginResult, error)

	// CreateProduct submits a vendor-specific listing payload using the
	// stored token.
	CreateProduct(ctx context.Context, payload any) (*CreateResult, error)

	// GetSellerProducts lists a seller's catalog.
	GetSellerProducts(ctx context.Context, sellerID string, opts *domain.FetchOptions) ([]domain.Product, error)

	// SearchInSeller filters a seller's catalog by free-text query.
	SearchInSeller(ctx context.Context, sellerID, query string, opts *domain.FetchOptions) ([]domain.Product, error)

	Token() string
	SetToken(token string)
}

// LoginResult is the parsed body of a successful token exchange. No
// expiry tracking is done; token validity is the caller's concern.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
	UserID       int64  `json:"user_id,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`

	Extra map[string]any `json:"-"`
}

type loginFields LoginResult

// UnmarshalJSON decodes the known token fields and keeps the rest in Extra.
func (r *LoginResult) UnmarshalJSON(data []byte) error {
	var f loginFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	extra, err := domain.ExtraFields(data,
		"access_token", "token_type", "expires_in", "scope", "user_id", "refresh_token")
	if err != nil {
		return err
	}
	*r = LoginResult(f)
	r.Extra = extra
	return nil
}

// CreateResult describes a listing accepted by a marketplace.
type CreateResult struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Permalink string `json:"permalink,omitempty"`
	Status    string `json:"status,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`
}
