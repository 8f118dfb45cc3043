package mercadolivre

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

type oauthErrorResponse struct {
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Login exchanges an authorization code for an access token and stores
// it. A non-2xx response yields a *shopstore.LoginError.
func (s *Store) Login(
	ctx context.Context,
	clientID, clientSecret, code, redirectURI string,
) (*shopstore.LoginResult, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"code":          {code},
		"redirect_uri":  {redirectURI},
	}

	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(ctx, httpx.Request{
		Operation: "login",
		Method:    http.MethodPost,
		URL:       s.apiURL + "/oauth/token",
		Header:    h,
		Body:      httpx.FormBody(form),
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		var errResp oauthErrorResponse
		_ = json.Unmarshal(resp.Body, &errResp) //nolint:errcheck // best-effort error parsing
		desc := errResp.Message
		if desc == "" {
			desc = errResp.ErrorDescription
		}
		if desc == "" {
			desc = errResp.Error
		}
		return nil, &shopstore.LoginError{
			Vendor:      shopstore.VendorMercadoLivre,
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
	metrics.LoginsTotal.WithLabelValues(shopstore.VendorMercadoLivre.String()).Inc()

	return &result, nil
}

// AuthURL returns the page a seller must visit to authorize the
// application. Mercado Livre redirects back to redirectURI with the code
// that Login expects.
func (s *Store) AuthURL(clientID, redirectURI string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {clientID},
		"redirect_uri":  {redirectURI},
	}
	return s.authURL + "?" + params.Encode()
}
