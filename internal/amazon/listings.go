package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/internal/validate"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// DefaultCreateListingMessage is used when a failed submission carries no
// explanation.
const DefaultCreateListingMessage = "failed to create listing on Amazon"

// statusInvalid marks a submission Amazon rejected.
const statusInvalid = "INVALID"

// CreateProduct creates or fully replaces a listing with putListingsItem.
// payload may be a ListingPayload (value or pointer) or a map[string]any
// whose "sku" key names the listing; the remaining keys form the body.
func (s *Store) CreateProduct(ctx context.Context, payload any) (*shopstore.CreateResult, error) {
	req, err := s.listingRequest(payload)
	if err != nil {
		return nil, s.createErr(0, "", err)
	}

	h := s.authHeader()
	h.Set("Content-Type", "application/json")

	resp, err := s.http.Do(ctx, httpx.Request{
		Operation: "create_product",
		Method:    http.MethodPut,
		URL:       req.url,
		Header:    h,
		Body:      req.body,
	})
	if err != nil {
		return nil, s.createErr(0, "", err)
	}

	if !resp.OK() {
		var apiErr errorList
		_ = json.Unmarshal(resp.Body, &apiErr) //nolint:errcheck // best-effort error parsing
		return nil, s.createErr(resp.StatusCode, apiErr.first(), s.http.StatusErr("create_product", resp))
	}

	var sub listingSubmission
	if err := resp.DecodeJSON(&sub); err != nil {
		return nil, s.createErr(resp.StatusCode, "", err)
	}

	if sub.Status == statusInvalid {
		msg := ""
		for _, is := range sub.Issues {
			if is.Message != "" {
				msg = is.Message
				break
			}
		}
		return nil, s.createErr(resp.StatusCode, msg, nil)
	}

	extra, err := domain.ExtraFields(resp.Body, "sku", "status")
	if err != nil {
		return nil, s.createErr(resp.StatusCode, "", err)
	}

	metrics.ListingsCreatedTotal.WithLabelValues(shopstore.VendorAmazon.String()).Inc()

	id := sub.SKU
	if id == "" {
		id = req.sku
	}

	return &shopstore.CreateResult{
		ID:     id,
		Status: sub.Status,
		Extra:  extra,
	}, nil
}

type listingRequest struct {
	sku  string
	url  string
	body []byte
}

func (s *Store) listingRequest(payload any) (*listingRequest, error) {
	switch p := payload.(type) {
	case ListingPayload:
		return s.listingRequest(&p)
	case *ListingPayload:
		if p == nil {
			return nil, fmt.Errorf("%w: nil payload", shopstore.ErrInvalidPayload)
		}
		if err := validate.Struct(p); err != nil {
			return nil, err
		}
		body, err := httpx.JSONBody(p)
		if err != nil {
			return nil, err
		}
		return s.buildListingRequest(p.SellerID, p.SKU, p.MarketplaceIDs, body)
	case map[string]any:
		fields := make(map[string]any, len(p))
		for k, v := range p {
			fields[k] = v
		}
		sku, _ := fields["sku"].(string)
		delete(fields, "sku")
		body, err := httpx.JSONBody(fields)
		if err != nil {
			return nil, err
		}
		return s.buildListingRequest("", sku, nil, body)
	default:
		return nil, fmt.Errorf("%w: unsupported payload type %T", shopstore.ErrInvalidPayload, payload)
	}
}

func (s *Store) buildListingRequest(
	sellerID, sku string,
	marketplaceIDs []string,
	body []byte,
) (*listingRequest, error) {
	if sellerID == "" {
		sellerID = s.sellerID
	}
	if sellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", shopstore.ErrInvalidPayload)
	}
	if sku == "" {
		sku = uuid.NewString()
	}
	if len(marketplaceIDs) == 0 {
		marketplaceIDs = []string{s.marketplaceID}
	}

	params := url.Values{}
	params.Set("marketplaceIds", strings.Join(marketplaceIDs, ","))

	return &listingRequest{
		sku: sku,
		url: s.apiURL + listingsPath +
			url.PathEscape(sellerID) + "/" + url.PathEscape(sku) +
			"?" + params.Encode(),
		body: body,
	}, nil
}

func (s *Store) createErr(status int, upstream string, err error) error {
	return shopstore.NewCreateProductError(
		shopstore.VendorAmazon,
		status,
		upstream,
		err,
		DefaultCreateListingMessage,
	)
}
