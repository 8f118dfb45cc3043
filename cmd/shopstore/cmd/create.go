package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopstore/internal/mercadolivre"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
)

func createCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "create <payload.json>",
		Short: "Publish a listing from a JSON file",
		Long: "Publishes a listing. Mercado Livre payloads are validated against\n" +
			"the items schema unless --raw is set. Amazon payloads carry the\n" +
			"listing body plus an optional \"sku\" key.",
		Example: `  shopstore create item.json --token APP_USR-...
  shopstore create listing.json --vendor amazon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading payload: %w", err)
			}

			s, vendor, err := a.store()
			if err != nil {
				return err
			}

			payload, err := decodePayload(vendor, data, raw)
			if err != nil {
				return err
			}

			res, err := s.CreateProduct(cmd.Context(), payload)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printCreateResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "send the file as-is without schema validation")

	return cmd
}

// decodePayload turns the file contents into the payload CreateProduct
// expects for vendor.
func decodePayload(vendor shopstore.Vendor, data []byte, raw bool) (any, error) {
	if vendor == shopstore.VendorMercadoLivre && !raw {
		var item mercadolivre.CreateItemPayload
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&item); err != nil {
			return nil, fmt.Errorf("%w: %w", shopstore.ErrInvalidPayload, err)
		}
		return item, nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", shopstore.ErrInvalidPayload, err)
	}
	return m, nil
}
