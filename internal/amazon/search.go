package amazon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// maxPageSize is the largest pageSize searchListingsItems accepts.
const maxPageSize = 20

// ListingsPage is one page of a seller's listings.
type ListingsPage struct {
	Products   []domain.Product
	Total      int
	Pagination *Pagination
}

// GetSellerProducts lists a seller's listings on the configured
// marketplace. opts.Limit maps onto pageSize (capped at 20); pageToken
// and other SP-API parameters can be passed through opts.Extra. Page
// numbers are not supported by the API and are ignored.
func (s *Store) GetSellerProducts(
	ctx context.Context,
	sellerID string,
	opts *domain.FetchOptions,
) ([]domain.Product, error) {
	page, err := s.ListingsPage(ctx, "get_seller_products", sellerID, opts)
	if err != nil {
		return nil, err
	}
	return page.Products, nil
}

// SearchInSeller returns the seller's listings whose title or SKU contains
// query, ignoring case. The Listings API has no free-text filter, so the
// match runs over one fetched page.
func (s *Store) SearchInSeller(
	ctx context.Context,
	sellerID, query string,
	opts *domain.FetchOptions,
) ([]domain.Product, error) {
	page, err := s.ListingsPage(ctx, "search_in_seller", sellerID, opts)
	if err != nil {
		return nil, err
	}
	return FilterProducts(page.Products, query), nil
}

// ListingsPage fetches one page of listings with summaries and offers.
func (s *Store) ListingsPage(
	ctx context.Context,
	op, sellerID string,
	opts *domain.FetchOptions,
) (*ListingsPage, error) {
	resp, err := s.http.Do(ctx, httpx.Request{
		Operation: op,
		Method:    http.MethodGet,
		URL:       s.buildListingsURL(sellerID, opts),
		Header:    s.authHeader(),
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, s.http.StatusErr(op, resp)
	}

	var apiResp searchListingsResponse
	if err := resp.DecodeJSON(&apiResp); err != nil {
		return nil, fmt.Errorf("parsing listings response: %w", err)
	}

	products, err := s.ToProducts(apiResp.Items)
	if err != nil {
		return nil, fmt.Errorf("mapping listings: %w", err)
	}

	metrics.ProductsFetchedTotal.WithLabelValues(
		shopstore.VendorAmazon.String(),
	).Add(float64(len(products)))

	return &ListingsPage{
		Products:   products,
		Total:      apiResp.NumberOfResults,
		Pagination: apiResp.Pagination,
	}, nil
}

func (s *Store) buildListingsURL(sellerID string, opts *domain.FetchOptions) string {
	params := url.Values{}
	for k, v := range opts.Params() {
		params.Set(k, v)
	}

	if params.Get("marketplaceIds") == "" {
		params.Set("marketplaceIds", s.marketplaceID)
	}
	params.Set("includedData", "summaries,offers")

	if size := opts.PageSize(); size > 0 {
		params.Set("pageSize", strconv.Itoa(min(size, maxPageSize)))
	}

	return s.apiURL + listingsPath + url.PathEscape(sellerID) + "?" + params.Encode()
}

// FilterProducts keeps the products whose title or id contains query
// under Unicode case folding. An empty query keeps everything.
func FilterProducts(products []domain.Product, query string) []domain.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	if needle == "" {
		return products
	}

	matched := make([]domain.Product, 0, len(products))
	for i := range products {
		if strings.Contains(fold.String(products[i].Title), needle) ||
			strings.Contains(fold.String(products[i].ID), needle) {
			matched = append(matched, products[i])
		}
	}
	return matched
}
