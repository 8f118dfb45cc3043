// Package domain defines the marketplace-neutral types shared by every
// store adapter.
package domain

import (
	"encoding/json"
	"fmt"
)

// Product is a marketplace listing normalised into the fields every
// vendor can provide. Anything a vendor returns beyond those fields is
// kept in Extra so callers can still reach it.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	Permalink         string `json:"permalink,omitempty"`
	Thumbnail         string `json:"thumbnail,omitempty"`
	Condition         string `json:"condition,omitempty"`
	AvailableQuantity int    `json:"available_quantity,omitempty"`
	SellerID          string `json:"seller_id,omitempty"`

	// Extra holds vendor fields with no dedicated struct field.
	Extra map[string]any `json:"-"`
}

// productFields is Product without its JSON methods.
type productFields Product

var productKnownKeys = []string{
	"id", "title", "price", "currency",
	"permalink", "thumbnail", "condition", "available_quantity", "seller_id",
}

// MarshalJSON flattens Extra into the top-level object. Known fields win
// over Extra entries with the same key.
func (p Product) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(productFields(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]any, len(p.Extra)+len(productKnownKeys))
	for k, v := range p.Extra {
		merged[k] = v
	}

	var fields map[string]any
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, fmt.Errorf("flattening product: %w", err)
	}
	for k, v := range fields {
		merged[k] = v
	}

	return json.Marshal(merged)
}

// UnmarshalJSON decodes the known fields and collects every other key
// into Extra.
func (p *Product) UnmarshalJSON(data []byte) error {
	var fields productFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	extra, err := ExtraFields(data, productKnownKeys...)
	if err != nil {
		return err
	}

	*p = Product(fields)
	p.Extra = extra
	return nil
}

// ExtraFields decodes the JSON object in data and returns every key not
// listed in known. It returns nil when nothing is left over.
func ExtraFields(data []byte, known ...string) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	extra := make(map[string]any, len(raw))
	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", k, err)
		}
		extra[k] = val
	}
	return extra, nil
}

// FetchOptions carries optional pagination hints for catalog calls. Zero
// values mean "not set"; adapters ignore fields they cannot honour.
type FetchOptions struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`

	// Extra holds vendor-specific query parameters passed through verbatim.
	Extra map[string]string `json:"extra,omitempty"`
}

// Offset returns the zero-based item offset implied by Page and Limit.
// Pages are 1-based; a zero Page or Limit yields 0.
func (o *FetchOptions) Offset() int {
	if o == nil || o.Page <= 1 || o.Limit <= 0 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// PageSize returns Limit, or 0 when o is nil.
func (o *FetchOptions) PageSize() int {
	if o == nil || o.Limit < 0 {
		return 0
	}
	return o.Limit
}

// Params returns the vendor pass-through parameters, never nil.
func (o *FetchOptions) Params() map[string]string {
	if o == nil || o.Extra == nil {
		return map[string]string{}
	}
	return o.Extra
}
