package mercadolivre

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// SearchResult is one page of a seller catalog search.
type SearchResult struct {
	Products []domain.Product
	Paging   Paging
}

// GetSellerProducts lists the products a seller has on the configured
// site. opts.Page and opts.Limit map onto offset/limit.
func (s *Store) GetSellerProducts(
	ctx context.Context,
	sellerID string,
	opts *domain.FetchOptions,
) ([]domain.Product, error) {
	res, err := s.SearchPage(ctx, sellerID, "", opts)
	if err != nil {
		return nil, err
	}
	return res.Products, nil
}

// SearchInSeller lists the seller's products matching a free-text query.
func (s *Store) SearchInSeller(
	ctx context.Context,
	sellerID, query string,
	opts *domain.FetchOptions,
) ([]domain.Product, error) {
	res, err := s.SearchPage(ctx, sellerID, query, opts)
	if err != nil {
		return nil, err
	}
	return res.Products, nil
}

// SearchPage runs a seller search and returns the products together with
// the paging envelope. An empty query lists the whole catalog.
func (s *Store) SearchPage(
	ctx context.Context,
	sellerID, query string,
	opts *domain.FetchOptions,
) (*SearchResult, error) {
	op := "get_seller_products"
	if query != "" {
		op = "search_in_seller"
	}

	resp, err := s.http.Do(ctx, httpx.Request{
		Operation: op,
		Method:    http.MethodGet,
		URL:       s.buildSearchURL(sellerID, query, opts),
		Header:    s.bearer(),
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, s.http.StatusErr(op, resp)
	}

	var apiResp searchResponse
	if err := resp.DecodeJSON(&apiResp); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	products, err := ToProducts(apiResp.Results)
	if err != nil {
		return nil, fmt.Errorf("mapping search results: %w", err)
	}

	metrics.ProductsFetchedTotal.WithLabelValues(
		shopstore.VendorMercadoLivre.String(),
	).Add(float64(len(products)))

	return &SearchResult{Products: products, Paging: apiResp.Paging}, nil
}

func (s *Store) buildSearchURL(sellerID, query string, opts *domain.FetchOptions) string {
	params := url.Values{}
	for k, v := range opts.Params() {
		params.Set(k, v)
	}

	params.Set("seller_id", sellerID)
	if query != "" {
		params.Set("q", query)
	}
	if limit := opts.PageSize(); limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset := opts.Offset(); offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	return s.apiURL + "/sites/" + url.PathEscape(s.siteID) + "/search?" + params.Encode()
}
