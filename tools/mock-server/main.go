// Package main implements a mock marketplace server for local development.
// It serves canned Mercado Livre and Amazon Selling Partner API responses
// from JSON fixtures so the shopstore CLI can run without real seller
// credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// meliSearchResponse mirrors GET /sites/{site}/search.
type meliSearchResponse struct {
	SiteID  string            `json:"site_id"`
	Paging  meliPaging        `json:"paging"`
	Results []json.RawMessage `json:"results"`
}

type meliPaging struct {
	Total          int `json:"total"`
	PrimaryResults int `json:"primary_results"`
	Offset         int `json:"offset"`
	Limit          int `json:"limit"`
}

type meliResult struct {
	Title  string `json:"title"`
	Seller struct {
		ID json.Number `json:"id"`
	} `json:"seller"`
}

// amazonListingsResponse mirrors GET /listings/2021-08-01/items/{sellerId}.
type amazonListingsResponse struct {
	NumberOfResults int               `json:"numberOfResults"`
	Pagination      *amazonPagination `json:"pagination,omitempty"`
	Items           []json.RawMessage `json:"items"`
}

type amazonPagination struct {
	NextToken     string `json:"nextToken,omitempty"`
	PreviousToken string `json:"previousToken,omitempty"`
}

type fixtures struct {
	meli   *meliSearchResponse
	amazon *amazonListingsResponse
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	meliFixture := flag.String("meli-fixture", "tools/mock-server/testdata/meli_search.json", "path to Mercado Livre search fixture")
	amazonFixture := flag.String("amazon-fixture", "tools/mock-server/testdata/amazon_listings.json", "path to Amazon listings fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixtures(*meliFixture, *amazonFixture)
	if err != nil {
		logger.Error("failed to load fixtures", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures", "meli_results", len(fx.meli.Results), "amazon_items", len(fx.amazon.Items))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixtures) *http.ServeMux {
	var seq atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger, "APP_USR-mock"))
	mux.HandleFunc("POST /items", createItemHandler(logger, &seq))
	mux.HandleFunc("GET /sites/{site}/search", meliSearchHandler(logger, fx.meli))
	mux.HandleFunc("POST /auth/o2/token", tokenHandler(logger, "Atza|mock"))
	mux.HandleFunc("PUT /listings/2021-08-01/items/{seller}/{sku}", putListingHandler(logger))
	mux.HandleFunc("GET /listings/2021-08-01/items/{seller}", amazonListingsHandler(logger, fx.amazon))
	return mux
}

func loadFixtures(meliPath, amazonPath string) (*fixtures, error) {
	var fx fixtures
	if err := loadFixture(meliPath, &fx.meli); err != nil {
		return nil, err
	}
	if err := loadFixture(amazonPath, &fx.amazon); err != nil {
		return nil, err
	}
	return &fx, nil
}

func loadFixture(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// tokenHandler serves both OAuth code exchanges. Any non-empty code is
// accepted; the code "invalid" is rejected to exercise error paths.
func tokenHandler(logger *slog.Logger, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
			return
		}

		code := r.PostForm.Get("code")
		if r.PostForm.Get("grant_type") != "authorization_code" || code == "" || code == "invalid" {
			logger.Warn("rejected token request", "grant_type", r.PostForm.Get("grant_type"))
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":             "invalid_grant",
				"error_description": "the provided authorization grant is invalid",
				"message":           "invalid_grant",
				"status":            http.StatusBadRequest,
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  prefix + "-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"token_type":    "bearer",
			"expires_in":    21600,
			"scope":         "offline_access read write",
			"user_id":       123456789,
			"refresh_token": "TG-mock-refresh",
		})
		logger.Info("issued mock token", "prefix", prefix)
	}
}

func createItemHandler(logger *slog.Logger, seq *atomic.Int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"message": "invalid access token",
				"error":   "unauthorized",
				"status":  http.StatusUnauthorized,
			})
			return
		}

		var item map[string]any
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "body.invalid",
				"error":   "bad_request",
				"status":  http.StatusBadRequest,
			})
			return
		}
		title, _ := item["title"].(string)
		if title == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Validation error",
				"error":   "validation_error",
				"status":  http.StatusBadRequest,
				"cause":   []map[string]string{{"code": "item.title.required", "message": "title is required"}},
			})
			return
		}

		id := fmt.Sprintf("MLB%d", 9000000000+seq.Add(1))
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":        id,
			"title":     title,
			"status":    "active",
			"site_id":   "MLB",
			"permalink": "https://produto.mercadolivre.com.br/MLB-" + strings.TrimPrefix(id, "MLB"),
		})
		logger.Info("created item", "id", id)
	}
}

func meliSearchHandler(logger *slog.Logger, fixture *meliSearchResponse) http.HandlerFunc {
	// Pre-parse titles and sellers for filtering.
	type indexedItem struct {
		raw    json.RawMessage
		title  string
		seller string
	}
	items := make([]indexedItem, 0, len(fixture.Results))
	for _, raw := range fixture.Results {
		var res meliResult
		//nolint:errcheck,gosec // fixture data is trusted; extraction is best-effort
		json.Unmarshal(raw, &res)
		items = append(items, indexedItem{
			raw:    raw,
			title:  strings.ToLower(res.Title),
			seller: res.Seller.ID.String(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		q := strings.ToLower(query.Get("q"))
		sellerID := query.Get("seller_id")
		limit := intParam(query.Get("limit"), 50)
		offset := intParam(query.Get("offset"), 0)

		var matched []json.RawMessage
		for _, item := range items {
			if sellerID != "" && item.seller != sellerID {
				continue
			}
			if q == "" || strings.Contains(item.title, q) {
				matched = append(matched, item.raw)
			}
		}

		total := len(matched)
		page := paginate(matched, offset, limit)

		writeJSON(w, http.StatusOK, meliSearchResponse{
			SiteID:  r.PathValue("site"),
			Paging:  meliPaging{Total: total, PrimaryResults: total, Offset: offset, Limit: limit},
			Results: page,
		})
		logger.Info("meli search", "seller_id", sellerID, "query", q, "matched", total, "returned", len(page))
	}
}

func putListingHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-amz-access-token") == "" {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"errors": []map[string]string{{
					"code":    "Unauthorized",
					"message": "Access to requested resource is denied.",
				}},
			})
			return
		}

		sku := r.PathValue("sku")
		var body struct {
			ProductType string         `json:"productType"`
			Attributes  map[string]any `json:"attributes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductType == "" {
			writeJSON(w, http.StatusOK, map[string]any{
				"sku":          sku,
				"status":       "INVALID",
				"submissionId": "mock-submission-invalid",
				"issues": []map[string]any{{
					"code":     "90220",
					"message":  "'productType' is required but not supplied.",
					"severity": "ERROR",
				}},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"sku":          sku,
			"status":       "ACCEPTED",
			"submissionId": "mock-submission-" + sku,
			"issues":       []any{},
		})
		logger.Info("accepted listing", "seller", r.PathValue("seller"), "sku", sku)
	}
}

// amazonListingsHandler pages through the fixture. Page tokens are the
// decimal offset of the next page.
func amazonListingsHandler(logger *slog.Logger, fixture *amazonListingsResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-amz-access-token") == "" {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"errors": []map[string]string{{
					"code":    "Unauthorized",
					"message": "Access to requested resource is denied.",
				}},
			})
			return
		}

		query := r.URL.Query()
		limit := min(intParam(query.Get("pageSize"), 10), 20)
		offset := intParam(query.Get("pageToken"), 0)

		page := paginate(fixture.Items, offset, limit)
		resp := amazonListingsResponse{
			NumberOfResults: len(fixture.Items),
			Items:           page,
		}
		if offset+limit < len(fixture.Items) {
			resp.Pagination = &amazonPagination{NextToken: strconv.Itoa(offset + limit)}
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("amazon listings", "seller", r.PathValue("seller"), "returned", len(page), "offset", offset)
	}
}

func paginate(items []json.RawMessage, offset, limit int) []json.RawMessage {
	if offset >= len(items) {
		return []json.RawMessage{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

func intParam(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
