package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/shopstore/pkg/shopstore"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tCONDITION\tQTY\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\n",
			p.ID,
			truncate(p.Title, 40),
			shopstore.FormatPrice(p.Price, p.Currency),
			dash(p.Condition),
			p.AvailableQuantity,
		)
	}
	return tw.finish()
}

func printLoginResult(w io.Writer, r *shopstore.LoginResult) error {
	tw := newTabWriter(w)
	tw.writef("Access Token:\t%s\n", r.AccessToken)
	tw.writef("Token Type:\t%s\n", r.TokenType)
	tw.writef("Expires In:\t%ds\n", r.ExpiresIn)
	tw.writef("Scope:\t%s\n", dash(r.Scope))
	if r.UserID != 0 {
		tw.writef("User ID:\t%d\n", r.UserID)
	}
	if r.RefreshToken != "" {
		tw.writef("Refresh Token:\t%s\n", r.RefreshToken)
	}
	return tw.finish()
}

func printCreateResult(w io.Writer, r *shopstore.CreateResult) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Title:\t%s\n", dash(r.Title))
	tw.writef("Status:\t%s\n", dash(r.Status))
	tw.writef("URL:\t%s\n", dash(r.Permalink))
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to maxLen runes, ending in "...".
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
