package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopstore/pkg/stores"
)

func linkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "link <product-id>",
		Short:   "Print the Mercado Livre product page for an item id",
		Example: `  shopstore link MLB123456789`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stores.NewMercadoLivreStore(a.cfg, a.logger)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s.ProductLink(args[0]))
			return err
		},
	}
}
