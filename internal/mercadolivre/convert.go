package mercadolivre

import (
	"encoding/json"
	"fmt"

	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// searchKnownKeys are the result fields copied onto Product; everything
// else, including the seller object, lands in Product.Extra.
var searchKnownKeys = []string{
	"id", "title", "price", "currency_id",
	"permalink", "thumbnail", "condition", "available_quantity",
}

// ToProducts converts raw search results into domain products.
func ToProducts(results []json.RawMessage) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(results))
	for i, raw := range results {
		p, err := toProduct(raw)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func toProduct(raw json.RawMessage) (domain.Product, error) {
	var r searchResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.Product{}, err
	}

	extra, err := domain.ExtraFields(raw, searchKnownKeys...)
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:                r.ID,
		Title:             r.Title,
		Price:             r.Price,
		Currency:          r.CurrencyID,
		Permalink:         r.Permalink,
		Thumbnail:         r.Thumbnail,
		Condition:         r.Condition,
		AvailableQuantity: r.AvailableQuantity,
		Extra:             extra,
	}
	if r.Seller != nil {
		p.SellerID = r.Seller.ID.String()
	}

	return p, nil
}
