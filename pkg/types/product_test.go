package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/shopstore/pkg/types"
)

func TestProduct_JSONExtra(t *testing.T) {
	t.Parallel()

	in := `{"id":"MLB1","title":"Mouse","price":19.9,"currency":"BRL","sold_quantity":3,"tags":["good_quality"]}`

	var p domain.Product
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	assert.Equal(t, "MLB1", p.ID)
	assert.Equal(t, "Mouse", p.Title)
	assert.InDelta(t, 19.9, p.Price, 0.0001)
	assert.Equal(t, "BRL", p.Currency)
	assert.Equal(t, float64(3), p.Extra["sold_quantity"])
	assert.Equal(t, []any{"good_quality"}, p.Extra["tags"])

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestProduct_MarshalKnownFieldsWin(t *testing.T) {
	t.Parallel()

	p := domain.Product{
		ID:    "1",
		Title: "real",
		Extra: map[string]any{"title": "shadow", "brand": "acme"},
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "real", got["title"])
	assert.Equal(t, "acme", got["brand"])
}

func TestProduct_MarshalWithoutExtra(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(domain.Product{ID: "1", Title: "t", Price: 2, Currency: "USD"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","title":"t","price":2,"currency":"USD"}`, string(out))
}

func TestExtraFields(t *testing.T) {
	t.Parallel()

	extra, err := domain.ExtraFields([]byte(`{"a":1,"b":"x"}`), "a", "b")
	require.NoError(t, err)
	assert.Nil(t, extra)

	extra, err = domain.ExtraFields([]byte(`{"a":1,"b":{"c":true}}`), "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": map[string]any{"c": true}}, extra)

	_, err = domain.ExtraFields([]byte(`[1,2]`))
	require.Error(t, err)
}

func TestFetchOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *domain.FetchOptions
		wantOffset int
		wantSize   int
	}{
		{name: "nil", opts: nil},
		{name: "zero value", opts: &domain.FetchOptions{}},
		{name: "first page", opts: &domain.FetchOptions{Page: 1, Limit: 20}, wantSize: 20},
		{name: "third page", opts: &domain.FetchOptions{Page: 3, Limit: 20}, wantOffset: 40, wantSize: 20},
		{name: "page without limit", opts: &domain.FetchOptions{Page: 4}},
		{name: "negative limit", opts: &domain.FetchOptions{Page: 2, Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantOffset, tt.opts.Offset())
			assert.Equal(t, tt.wantSize, tt.opts.PageSize())
			assert.NotNil(t, tt.opts.Params())
		})
	}
}

func TestFetchOptions_Params(t *testing.T) {
	t.Parallel()

	o := &domain.FetchOptions{Extra: map[string]string{"sort": "price_asc"}}
	assert.Equal(t, map[string]string{"sort": "price_asc"}, o.Params())
}
