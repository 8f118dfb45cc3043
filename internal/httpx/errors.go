package httpx

import (
	"fmt"
	"unicode/utf8"
)

// maxErrorBody caps how much of a response body is kept in a StatusError.
const maxErrorBody = 512

// StatusError reports a non-2xx response from a marketplace API.
type StatusError struct {
	Vendor     string
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(
		"%s API error (status %d): %s",
		e.Vendor,
		e.StatusCode,
		e.Body,
	)
}

// StatusErr builds a StatusError from a non-2xx response.
func (c *Client) StatusErr(op string, resp *Response) error {
	body := string(resp.Body)
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	return &StatusError{
		Vendor:     c.vendor,
		Operation:  op,
		StatusCode: resp.StatusCode,
		Body:       body,
	}
}
