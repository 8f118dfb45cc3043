package amazon

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// ToProducts converts raw listings items into domain products. Title,
// image and permalink come from the summary for the store's marketplace
// (or the first summary); price comes from the first B2C offer.
func (s *Store) ToProducts(items []json.RawMessage) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(items))
	for i, raw := range items {
		p, err := s.toProduct(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *Store) toProduct(raw json.RawMessage) (domain.Product, error) {
	var item listingItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return domain.Product{}, err
	}

	extra, err := domain.ExtraFields(raw, "sku")
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:    item.SKU,
		Extra: extra,
	}

	if sum := s.pickSummary(item.Summaries); sum != nil {
		p.Title = sum.ItemName
		p.Condition = sum.ConditionType
		if sum.ASIN != "" {
			p.Permalink = s.productURL + "/" + sum.ASIN
		}
		if sum.MainImage != nil {
			p.Thumbnail = sum.MainImage.Link
		}
	}

	if o := pickOffer(item.Offers); o != nil {
		p.Currency = o.Price.CurrencyCode
		if o.Price.Amount != "" {
			amount, err := decimal.NewFromString(o.Price.Amount.String())
			if err != nil {
				return domain.Product{}, fmt.Errorf("parsing offer price %q: %w", o.Price.Amount, err)
			}
			p.Price = amount.InexactFloat64()
		}
	}

	return p, nil
}

func (s *Store) pickSummary(summaries []summary) *summary {
	for i := range summaries {
		if summaries[i].MarketplaceID == s.marketplaceID {
			return &summaries[i]
		}
	}
	if len(summaries) > 0 {
		return &summaries[0]
	}
	return nil
}

func pickOffer(offers []offer) *offer {
	for i := range offers {
		if offers[i].OfferType == "B2C" {
			return &offers[i]
		}
	}
	if len(offers) > 0 {
		return &offers[0]
	}
	return nil
}
