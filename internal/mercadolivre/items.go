package mercadolivre

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/internal/validate"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// DefaultCreateItemMessage is the CreateProductError message used when
// neither the API nor the transport explains a failure.
const DefaultCreateItemMessage = "failed to create item on Mercado Livre"

// CreateProduct publishes a listing. payload may be a CreateItemPayload
// (value or pointer), which is validated first, or a map[string]any sent
// as-is. Every failure is a *shopstore.CreateProductError.
func (s *Store) CreateProduct(ctx context.Context, payload any) (*shopstore.CreateResult, error) {
	body, err := s.encodeItem(payload)
	if err != nil {
		return nil, s.createErr(0, "", err)
	}

	h := s.bearer()
	h.Set("Content-Type", "application/json")

	resp, err := s.http.Do(ctx, httpx.Request{
		Operation: "create_product",
		Method:    http.MethodPost,
		URL:       s.apiURL + "/items",
		Header:    h,
		Body:      body,
	})
	if err != nil {
		return nil, s.createErr(0, "", err)
	}

	if !resp.OK() {
		var apiErr apiErrorResponse
		_ = json.Unmarshal(resp.Body, &apiErr) //nolint:errcheck // best-effort error parsing
		return nil, s.createErr(resp.StatusCode, apiErr.Message, s.http.StatusErr("create_product", resp))
	}

	var item itemResponse
	if err := resp.DecodeJSON(&item); err != nil {
		return nil, s.createErr(resp.StatusCode, "", err)
	}
	extra, err := domain.ExtraFields(resp.Body, "id", "title", "permalink", "status")
	if err != nil {
		return nil, s.createErr(resp.StatusCode, "", err)
	}

	metrics.ListingsCreatedTotal.WithLabelValues(shopstore.VendorMercadoLivre.String()).Inc()

	return &shopstore.CreateResult{
		ID:        item.ID,
		Title:     item.Title,
		Permalink: item.Permalink,
		Status:    item.Status,
		Extra:     extra,
	}, nil
}

func (s *Store) encodeItem(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case CreateItemPayload:
		return s.encodeItem(&p)
	case *CreateItemPayload:
		if p == nil {
			return nil, fmt.Errorf("%w: nil payload", shopstore.ErrInvalidPayload)
		}
		if err := validate.Struct(p); err != nil {
			return nil, err
		}
		return httpx.JSONBody(p)
	case map[string]any:
		return httpx.JSONBody(p)
	default:
		return nil, fmt.Errorf("%w: unsupported payload type %T", shopstore.ErrInvalidPayload, payload)
	}
}

func (s *Store) createErr(status int, upstream string, err error) error {
	return shopstore.NewCreateProductError(
		shopstore.VendorMercadoLivre,
		status,
		upstream,
		err,
		DefaultCreateItemMessage,
	)
}

// ProductLink returns the public product page for an item id such as
// "MLB123456" (https://produto.mercadolivre.com.br/MLB-123456). Ids
// shorter than three characters are passed through with a trailing dash.
func (s *Store) ProductLink(productID string) string {
	r := []rune(productID)
	n := min(3, len(r))
	return s.productURL + "/" + string(r[:n]) + "-" + string(r[n:])
}
