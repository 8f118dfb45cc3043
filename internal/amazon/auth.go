package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/donaldgifford/shopstore/internal/httpx"
	"github.com/donaldgifford/shopstore/internal/metrics"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Login exchanges an SP-API authorization code for an LWA access token
// and stores it.
func (s *Store) Login(
	ctx context.Context,
	clientID, clientSecret, code, redirectURI string,
) (*shopstore.LoginResult, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {redirectURI},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
	}

	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := s.http.Do(ctx, httpx.Request{
		Operation: "login",
		Method:    http.MethodPost,
		URL:       s.tokenURL,
		Header:    h,
		Body:      httpx.FormBody(form),
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(resp.Body, &errResp) //nolint:errcheck // best-effort error parsing
		desc := errResp.ErrorDescription
		if desc == "" {
			desc = errResp.Error
		}
		return nil, &shopstore.LoginError{
			Vendor:      shopstore.VendorAmazon,
			Status:      resp.StatusCode,
			StatusText:  resp.StatusText,
			Description: desc,
		}
	}

	var result shopstore.LoginResult
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	s.SetToken(result.AccessToken)
	metrics.LoginsTotal.WithLabelValues(shopstore.VendorAmazon.String()).Inc()

	return &result, nil
}

// AuthURL returns the Seller Central consent page for a website
// authorization workflow. Amazon redirects back to redirectURI with the
// spapi_oauth_code that Login expects.
func (s *Store) AuthURL(applicationID, redirectURI string) string {
	params := url.Values{
		"application_id": {applicationID},
		"redirect_uri":   {redirectURI},
	}
	return s.authURL + "?" + params.Encode()
}
