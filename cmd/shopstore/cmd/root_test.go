package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopstore/internal/config"
	"github.com/donaldgifford/shopstore/internal/mercadolivre"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	"github.com/donaldgifford/shopstore/pkg/shopstore/mocks"
	"github.com/donaldgifford/shopstore/pkg/stores"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// fixedStore returns a factory that always hands out s and records the
// vendor it was asked for.
func fixedStore(s shopstore.Store, got *shopstore.Vendor) storeFactory {
	return func(v shopstore.Vendor, _ *config.Config, _ *slog.Logger) (shopstore.Store, error) {
		if got != nil {
			*got = v
		}
		return s, nil
	}
}

func run(t *testing.T, factory storeFactory, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(factory)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var sampleProducts = []domain.Product{
	{ID: "MLB1", Title: "Camiseta Azul", Price: 49.9, Currency: "BRL", Condition: "new", AvailableQuantity: 3},
	{ID: "MLB2", Title: "Boné", Price: 20, Currency: "BRL"},
}

func TestProductsCmd(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().SetToken("APP_USR-1").Return()
	m.EXPECT().
		GetSellerProducts(mock.Anything, "123", (*domain.FetchOptions)(nil)).
		Return(sampleProducts, nil)

	var vendor shopstore.Vendor
	out, err := run(t, fixedStore(m, &vendor), "products", "123", "--token", "APP_USR-1")
	require.NoError(t, err)

	assert.Equal(t, shopstore.VendorMercadoLivre, vendor)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Camiseta Azul")
	assert.Contains(t, out, "BRL 49.90")
	assert.Contains(t, out, "BRL 20.00")
}

func TestProductsCmd_JSONAndPaging(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().
		GetSellerProducts(mock.Anything, "123", &domain.FetchOptions{Page: 2, Limit: 10}).
		Return(sampleProducts[:1], nil)

	out, err := run(t, fixedStore(m, nil), "products", "123", "--page", "2", "--limit", "10", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "MLB1", "title": "Camiseta Azul", "price": 49.9, "currency": "BRL",
		"condition": "new", "available_quantity": 3
	}]`, out)
}

func TestProductsCmd_Empty(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().GetSellerProducts(mock.Anything, "123", mock.Anything).Return(nil, nil)

	out, err := run(t, fixedStore(m, nil), "products", "123")
	require.NoError(t, err)
	assert.Equal(t, "No products found.\n", out)
}

func TestProductsCmd_AmazonSellerFromConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, "config.yaml", `
vendor: amazon
amazon:
  seller_id: A2SELLER
`)

	m := mocks.NewMockStore(t)
	m.EXPECT().GetSellerProducts(mock.Anything, "A2SELLER", mock.Anything).Return(nil, nil)

	var vendor shopstore.Vendor
	_, err := run(t, fixedStore(m, &vendor), "products", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, shopstore.VendorAmazon, vendor)
}

func TestProductsCmd_MissingSeller(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	_, err := run(t, fixedStore(m, nil), "products")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seller id is required")
}

func TestSearchCmd(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().
		SearchInSeller(mock.Anything, "123", "camiseta azul", &domain.FetchOptions{Limit: 5}).
		Return(sampleProducts[:1], nil)

	out, err := run(t, fixedStore(m, nil), "search", "123", "camiseta azul", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "MLB1")
	assert.NotContains(t, out, "MLB2")
}

func TestSearchCmd_Error(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().
		SearchInSeller(mock.Anything, "123", "x", mock.Anything).
		Return(nil, assert.AnError)

	_, err := run(t, fixedStore(m, nil), "search", "123", "x")
	require.ErrorIs(t, err, assert.AnError)
}

func TestLoginCmd(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, "config.yaml", `
mercadolivre:
  client_id: "123"
  client_secret: sec
  redirect_uri: https://x.test/cb
`)

	tests := []struct {
		name       string
		args       []string
		wantID     string
		wantOutput string
	}{
		{
			name:       "credentials from config",
			args:       []string{"login", "--config", cfgPath, "--code", "TG-1"},
			wantID:     "123",
			wantOutput: "Access Token:",
		},
		{
			name:       "client id flag overrides config",
			args:       []string{"login", "--config", cfgPath, "--code", "TG-1", "--client-id", "999", "--output", "json"},
			wantID:     "999",
			wantOutput: `"access_token": "APP_USR-9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockStore(t)
			m.EXPECT().
				Login(mock.Anything, tt.wantID, "sec", "TG-1", "https://x.test/cb").
				Return(&shopstore.LoginResult{
					AccessToken: "APP_USR-9", TokenType: "bearer", ExpiresIn: 21600, UserID: 42,
				}, nil)

			out, err := run(t, fixedStore(m, nil), tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOutput)
			assert.Contains(t, out, "APP_USR-9")
		})
	}
}

func TestLoginCmd_RequiresCode(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	_, err := run(t, fixedStore(m, nil), "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"code" not set`)
}

func TestLoginCmd_LoginError(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	m.EXPECT().
		Login(mock.Anything, mock.Anything, mock.Anything, "bad", mock.Anything).
		Return(nil, &shopstore.LoginError{Vendor: shopstore.VendorMercadoLivre, Status: 400, StatusText: "Bad Request"})

	_, err := run(t, fixedStore(m, nil), "login", "--code", "bad")
	require.ErrorIs(t, err, shopstore.ErrLogin)
}

func TestCreateCmd(t *testing.T) {
	t.Parallel()

	item := writeFile(t, "item.json", `{
		"title": "Camiseta Azul",
		"category_id": "MLB31447",
		"price": 49.9,
		"currency_id": "BRL",
		"available_quantity": 3,
		"buying_mode": "buy_it_now",
		"condition": "new",
		"listing_type_id": "gold_special",
		"description": {"plain_text": "100% algodão"},
		"pictures": [{"source": "https://http2.mlstatic.com/D_1.jpg"}]
	}`)

	m := mocks.NewMockStore(t)
	m.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(p mercadolivre.CreateItemPayload) bool {
			return p.Title == "Camiseta Azul" && p.Description.PlainText == "100% algodão"
		})).
		Return(&shopstore.CreateResult{
			ID: "MLB9", Title: "Camiseta Azul", Status: "active",
			Permalink: "https://produto.mercadolivre.com.br/MLB-9",
		}, nil)

	out, err := run(t, fixedStore(m, nil), "create", item)
	require.NoError(t, err)
	assert.Contains(t, out, "MLB9")
	assert.Contains(t, out, "https://produto.mercadolivre.com.br/MLB-9")
}

func TestCreateCmd_Payloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vendor  string
		body    string
		raw     bool
		wantErr error
	}{
		{
			name:    "unknown field rejected",
			vendor:  "mercadolivre",
			body:    `{"title": "x", "colour": "blue"}`,
			wantErr: shopstore.ErrInvalidPayload,
		},
		{
			name:    "malformed json",
			vendor:  "amazon",
			body:    `{"productType":`,
			wantErr: shopstore.ErrInvalidPayload,
		},
		{
			name:   "raw mercadolivre map",
			vendor: "mercadolivre",
			body:   `{"title": "x", "colour": "blue"}`,
			raw:    true,
		},
		{
			name:   "amazon map",
			vendor: "amazon",
			body:   `{"sku": "SKU-1", "productType": "SHIRT", "attributes": {}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "payload.json", tt.body)
			m := mocks.NewMockStore(t)
			if tt.wantErr == nil {
				m.EXPECT().
					CreateProduct(mock.Anything, mock.AnythingOfType("map[string]interface {}")).
					Return(&shopstore.CreateResult{ID: "ok"}, nil)
			}

			args := []string{"create", path, "--vendor", tt.vendor}
			if tt.raw {
				args = append(args, "--raw")
			}
			out, err := run(t, fixedStore(m, nil), args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "ok")
		})
	}
}

func TestCreateCmd_MissingFile(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	_, err := run(t, fixedStore(m, nil), "create", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading payload")
}

func TestAuthURLCmd(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, "config.yaml", `
mercadolivre:
  client_id: "123"
  redirect_uri: https://x.test/cb
amazon:
  application_id: amzn1.sp.solution.abc
  redirect_uri: https://x.test/amazon
`)

	out, err := run(t, stores.New, "auth-url", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t,
		"https://auth.mercadolivre.com.br/authorization?client_id=123&redirect_uri=https%3A%2F%2Fx.test%2Fcb&response_type=code\n",
		out,
	)

	out, err = run(t, stores.New, "auth-url", "--config", cfgPath, "--vendor", "amazon")
	require.NoError(t, err)
	assert.Contains(t, out, "https://sellercentral.amazon.com/apps/authorize/consent?")
	assert.Contains(t, out, "application_id=amzn1.sp.solution.abc")
}

func TestLinkCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, stores.New, "link", "MLB123456")
	require.NoError(t, err)
	assert.Equal(t, "https://produto.mercadolivre.com.br/MLB-123456\n", out)
}

func TestUnknownVendor(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockStore(t)
	_, err := run(t, fixedStore(m, nil), "products", "1", "--vendor", "shopee")
	require.ErrorIs(t, err, shopstore.ErrUnknownVendor)
}

func TestBadConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, "config.yaml", "logging:\n  level: loud\n")
	m := mocks.NewMockStore(t)
	_, err := run(t, fixedStore(m, nil), "products", "1", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, stores.New, "version")
	require.NoError(t, err)
	assert.Equal(t, "shopstore dev\n", out)
}

func TestProductsCmd_PageSummary(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/MLB/search", r.URL.Path)
		assert.Equal(t, "123", r.URL.Query().Get("seller_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"paging": {"total": 57, "offset": 0, "limit": 1},
			"results": [{"id": "MLB1", "title": "Camiseta Azul", "price": 49.9, "currency_id": "BRL"}]
		}`))
	}))
	t.Cleanup(srv.Close)

	cfgPath := writeFile(t, "config.yaml", "mercadolivre:\n  api_url: "+srv.URL+"\n")

	out, err := run(t, stores.New, "products", "123", "--config", cfgPath, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 57 products")
	assert.Contains(t, out, "BRL 49.90")
}

func TestProductsCmd_AmazonPageToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings/2021-08-01/items/A2SELLER", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("pageToken"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"numberOfResults": 3,
			"pagination": {"nextToken": "tok-2"},
			"items": [{"sku": "SKU-2", "summaries": [{"marketplaceId": "ATVPDKIKX0DER", "itemName": "Pillow"}]}]
		}`))
	}))
	t.Cleanup(srv.Close)

	cfgPath := writeFile(t, "config.yaml", "vendor: amazon\namazon:\n  api_url: "+srv.URL+"\n  seller_id: A2SELLER\n")

	out, err := run(t, stores.New, "products", "--config", cfgPath, "--page-token", "tok-1", "--token", "Atza|x")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 3 products")
	assert.Contains(t, out, "Next page token: tok-2")
	assert.Contains(t, out, "SKU-2")
}
