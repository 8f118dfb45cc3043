package httpx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/pkg/logger"
)

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "search query removed",
			raw:  "https://api.mercadolibre.com/sites/MLB/search?seller_id=123&q=camiseta",
			want: "https://api.mercadolibre.com/sites/MLB/search",
		},
		{
			name: "path kept",
			raw:  "https://sellingpartnerapi-na.amazon.com/listings/2021-08-01/items/A1/SKU-1?marketplaceIds=X",
			want: "https://sellingpartnerapi-na.amazon.com/listings/2021-08-01/items/A1/SKU-1",
		},
		{name: "no query", raw: "https://api.amazon.com/auth/o2/token", want: "https://api.amazon.com/auth/o2/token"},
		{name: "unparseable returned as is", raw: "://bad", want: "://bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, redactURL(tt.raw))
		})
	}
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *http.Response
		want string
	}{
		{name: "server phrase", resp: &http.Response{StatusCode: 201, Status: "201 Criado"}, want: "Criado"},
		{name: "standard phrase", resp: &http.Response{StatusCode: 401, Status: "401 Unauthorized"}, want: "Unauthorized"},
		{name: "missing phrase", resp: &http.Response{StatusCode: 404, Status: "404"}, want: "Not Found"},
		{name: "empty status", resp: &http.Response{StatusCode: 503}, want: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, statusText(tt.resp))
		})
	}
}

func TestStatusErr(t *testing.T) {
	t.Parallel()

	c := New("mercadolivre")

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "short body", body: `{"message":"invalid"}`, want: `{"message":"invalid"}`},
		{name: "exact limit", body: strings.Repeat("a", maxErrorBody), want: strings.Repeat("a", maxErrorBody)},
		{name: "long body", body: strings.Repeat("a", 600), want: strings.Repeat("a", maxErrorBody) + "..."},
		{
			name: "multibyte at limit",
			body: strings.Repeat("a", maxErrorBody-1) + "ção inválida",
			want: strings.Repeat("a", maxErrorBody-1) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := c.StatusErr("search", &Response{StatusCode: http.StatusBadRequest, Body: []byte(tt.body)})

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "mercadolivre", se.Vendor)
			assert.Equal(t, "search", se.Operation)
			assert.Equal(t, http.StatusBadRequest, se.StatusCode)
			assert.Equal(t, tt.want, se.Body)
			assert.True(t, utf8.ValidString(se.Body))
		})
	}
}

func TestStatusError_Error(t *testing.T) {
	t.Parallel()

	err := &StatusError{Vendor: "amazon", Operation: "search", StatusCode: 403, Body: "denied"}
	assert.Equal(t, "amazon API error (status 403): denied", err.Error())
}

func TestClient_DoHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     http.Header
		wantAccept string
	}{
		{name: "default accept", wantAccept: "application/json"},
		{name: "caller accept kept", header: http.Header{"Accept": {"text/csv"}}, wantAccept: "text/csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotAccept, gotUA, gotID string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAccept = r.Header.Get("Accept")
				gotUA = r.Header.Get("User-Agent")
				gotID = r.Header.Get(RequestIDHeader)
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			t.Cleanup(srv.Close)

			c := New("amazon", WithUserAgent("shopstore-test/2.0"))
			resp, err := c.Do(context.Background(), Request{
				Operation: "get",
				Method:    http.MethodGet,
				URL:       srv.URL,
				Header:    tt.header,
			})
			require.NoError(t, err)
			assert.True(t, resp.OK())
			assert.Equal(t, tt.wantAccept, gotAccept)
			assert.Equal(t, "shopstore-test/2.0", gotUA)
			assert.NotEmpty(t, gotID)
			assert.Equal(t, gotID, resp.RequestID)

			var body map[string]bool
			require.NoError(t, resp.DecodeJSON(&body))
			assert.True(t, body["ok"])
		})
	}
}

func TestClient_DoNon2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"item.title is invalid"}`))
	}))
	t.Cleanup(srv.Close)

	counter := metrics.APIRequestsTotal.WithLabelValues("httpx-non2xx", "create_product", "422")
	before := testutil.ToFloat64(counter)

	c := New("httpx-non2xx")
	resp, err := c.Do(context.Background(), Request{
		Operation: "create_product",
		Method:    http.MethodPost,
		URL:       srv.URL + "/items",
		Body:      []byte(`{}`),
	})
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Unprocessable Entity", resp.StatusText)
	assert.JSONEq(t, `{"message":"item.title is invalid"}`, string(resp.Body))
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
}

func TestClient_DoTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	counter := metrics.APIErrorsTotal.WithLabelValues("httpx-transport", "login")
	before := testutil.ToFloat64(counter)

	c := New("httpx-transport")
	_, err := c.Do(context.Background(), Request{Operation: "login", Method: http.MethodPost, URL: url})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing login request")
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
}

func TestClient_DoLogging(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	c := New("mercadolivre", WithLogger(logger.NewWithWriter(&buf, "debug", "json")))
	_, err := c.Do(context.Background(), Request{
		Operation: "search_in_seller",
		Method:    http.MethodGet,
		URL:       srv.URL + "/sites/MLB/search?seller_id=123456789&q=camiseta",
	})
	require.NoError(t, err)

	out := strings.TrimSpace(buf.String())
	require.NotEmpty(t, out)
	assert.Equal(t, 1, strings.Count(out, `"vendor":"mercadolivre"`))
	assert.Contains(t, out, `"op":"search_in_seller"`)
	assert.Contains(t, out, `"url":"`+srv.URL+`/sites/MLB/search"`)
	assert.NotContains(t, out, "123456789")
	assert.NotContains(t, out, "camiseta")
}
