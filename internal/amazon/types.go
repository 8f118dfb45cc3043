package amazon

import "encoding/json"

// Listing requirement sets accepted by putListingsItem.
const (
	RequirementsListing            = "LISTING"
	RequirementsListingProductOnly = "LISTING_PRODUCT_ONLY"
	RequirementsListingOfferOnly   = "LISTING_OFFER_ONLY"
)

// ListingPayload describes a listing for putListingsItem. SellerID and
// MarketplaceIDs fall back to the store's configuration; an empty SKU is
// replaced with a generated one.
type ListingPayload struct {
	SellerID       string   `json:"-"`
	SKU            string   `json:"-"`
	MarketplaceIDs []string `json:"-"`

	ProductType  string         `json:"productType"            validate:"required"`
	Requirements string         `json:"requirements,omitempty" validate:"omitempty,oneof=LISTING LISTING_PRODUCT_ONLY LISTING_OFFER_ONLY"`
	Attributes   map[string]any `json:"attributes"             validate:"required"`
}

// listingSubmission is the putListingsItem response.
type listingSubmission struct {
	SKU          string  `json:"sku"`
	Status       string  `json:"status"`
	SubmissionID string  `json:"submissionId"`
	Issues       []issue `json:"issues"`
}

type issue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// errorList is the SP-API error envelope.
type errorList struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"errors"`
}

func (e errorList) first() string {
	for _, err := range e.Errors {
		if err.Message != "" {
			return err.Message
		}
	}
	return ""
}

// searchListingsResponse is the searchListingsItems response.
type searchListingsResponse struct {
	NumberOfResults int               `json:"numberOfResults"`
	Pagination      *Pagination       `json:"pagination,omitempty"`
	Items           []json.RawMessage `json:"items"`
}

// Pagination carries the tokens for adjacent result pages.
type Pagination struct {
	NextToken     string `json:"nextToken,omitempty"`
	PreviousToken string `json:"previousToken,omitempty"`
}

// listingItem holds the parts of a listings item mapped onto Product.
type listingItem struct {
	SKU       string    `json:"sku"`
	Summaries []summary `json:"summaries"`
	Offers    []offer   `json:"offers"`
}

type summary struct {
	MarketplaceID string   `json:"marketplaceId"`
	ASIN          string   `json:"asin"`
	ProductType   string   `json:"productType"`
	ConditionType string   `json:"conditionType"`
	Status        []string `json:"status"`
	ItemName      string   `json:"itemName"`
	MainImage     *struct {
		Link string `json:"link"`
	} `json:"mainImage,omitempty"`
}

type offer struct {
	MarketplaceID string `json:"marketplaceId"`
	OfferType     string `json:"offerType"`
	Price         struct {
		CurrencyCode string      `json:"currencyCode"`
		Amount       json.Number `json:"amount"`
	} `json:"price"`
}
