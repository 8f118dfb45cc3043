package mercadolivre

import "encoding/json"

// Buying modes accepted by the items API.
const (
	BuyingModeBuyItNow   = "buy_it_now"
	BuyingModeAuction    = "auction"
	BuyingModeClassified = "classified"
)

// Item conditions accepted by the items API.
const (
	ConditionNew          = "new"
	ConditionUsed         = "used"
	ConditionNotSpecified = "not_specified"
)

// CreateItemPayload is the body of POST /items. Category rules may demand
// more attributes; send a map[string]any to CreateProduct for those.
type CreateItemPayload struct {
	Title             string      `json:"title"              validate:"required"`
	CategoryID        string      `json:"category_id"        validate:"required"`
	Price             float64     `json:"price"              validate:"gt=0"`
	CurrencyID        string      `json:"currency_id"        validate:"required,iso4217"`
	AvailableQuantity int         `json:"available_quantity" validate:"gte=1"`
	BuyingMode        string      `json:"buying_mode"        validate:"oneof=buy_it_now auction classified"`
	Condition         string      `json:"condition"          validate:"oneof=new used not_specified"`
	ListingTypeID     string      `json:"listing_type_id"    validate:"required"`
	Description       Description `json:"description"`
	Pictures          []Picture   `json:"pictures"           validate:"dive"`
}

// Description is the plain-text listing description.
type Description struct {
	PlainText string `json:"plain_text"`
}

// Picture references a listing image by URL.
type Picture struct {
	Source string `json:"source" validate:"required,url"`
}

// itemResponse is the body returned by POST /items.
type itemResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
	Status    string `json:"status"`
}

// apiErrorResponse is the error envelope used across the REST API.
type apiErrorResponse struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Status  int             `json:"status"`
	Cause   json.RawMessage `json:"cause,omitempty"`
}

// searchResponse is the body of GET /sites/{site}/search.
type searchResponse struct {
	SiteID  string            `json:"site_id"`
	Paging  Paging            `json:"paging"`
	Results []json.RawMessage `json:"results"`
}

// Paging describes the window returned by a search call.
type Paging struct {
	Total          int `json:"total"`
	PrimaryResults int `json:"primary_results"`
	Offset         int `json:"offset"`
	Limit          int `json:"limit"`
}

// searchResult holds the fields of one search hit mapped onto Product.
type searchResult struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Price             float64 `json:"price"`
	CurrencyID        string  `json:"currency_id"`
	Permalink         string  `json:"permalink"`
	Thumbnail         string  `json:"thumbnail"`
	Condition         string  `json:"condition"`
	AvailableQuantity int     `json:"available_quantity"`
	Seller            *struct {
		ID json.Number `json:"id"`
	} `json:"seller,omitempty"`
}
