package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopstore/internal/validate"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

type picture struct {
	Source string `json:"source" validate:"required,url"`
}

type payload struct {
	Title    string    `json:"title"       validate:"required"`
	Price    float64   `json:"price"       validate:"gt=0"`
	Currency string    `json:"currency_id" validate:"required,iso4217"`
	Mode     string    `json:"buying_mode" validate:"oneof=buy_it_now auction"`
	Pictures []picture `json:"pictures"    validate:"dive"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	valid := payload{
		Title:    "Camiseta",
		Price:    49.9,
		Currency: "BRL",
		Mode:     "buy_it_now",
		Pictures: []picture{{Source: "https://img.test/1.jpg"}},
	}

	tests := []struct {
		name       string
		mutate     func(p *payload)
		wantErr    bool
		errContain string
	}{
		{
			name:   "valid payload",
			mutate: func(_ *payload) {},
		},
		{
			name:       "missing title",
			mutate:     func(p *payload) { p.Title = "" },
			wantErr:    true,
			errContain: "title is required",
		},
		{
			name:       "zero price",
			mutate:     func(p *payload) { p.Price = 0 },
			wantErr:    true,
			errContain: "price must be at least 0",
		},
		{
			name:       "bad currency",
			mutate:     func(p *payload) { p.Currency = "REAIS" },
			wantErr:    true,
			errContain: "currency_id must be an ISO 4217 currency code",
		},
		{
			name:       "bad buying mode",
			mutate:     func(p *payload) { p.Mode = "raffle" },
			wantErr:    true,
			errContain: "buying_mode must be one of",
		},
		{
			name:       "bad picture url",
			mutate:     func(p *payload) { p.Pictures[0].Source = "not a url" },
			wantErr:    true,
			errContain: "pictures[0].source must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			p.Pictures = append([]picture(nil), valid.Pictures...)
			tt.mutate(&p)

			err := validate.Struct(p)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, shopstore.ErrInvalidPayload)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
		})
	}
}
