package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopstore/internal/amazon"
	"github.com/donaldgifford/shopstore/internal/mercadolivre"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	domain "github.com/donaldgifford/shopstore/pkg/types"
)

func productsCmd(a *app) *cobra.Command {
	var (
		page, limit int
		pageToken   string
	)

	cmd := &cobra.Command{
		Use:   "products [seller-id]",
		Short: "List a seller's catalog",
		Long: "Lists the products of a seller. Amazon falls back to the\n" +
			"configured seller id when none is given.",
		Example: `  shopstore products 123456789 --token APP_USR-...
  shopstore products --vendor amazon --page 2 --limit 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, vendor, err := a.store()
			if err != nil {
				return err
			}
			sellerID, err := a.sellerID(args, vendor)
			if err != nil {
				return err
			}

			opts := fetchOptions(page, limit)
			if pageToken != "" {
				if opts == nil {
					opts = &domain.FetchOptions{}
				}
				opts.Extra = map[string]string{"pageToken": pageToken}
			}

			res, err := listCatalog(cmd.Context(), s, sellerID, opts)
			if err != nil {
				return err
			}
			if !a.jsonOutput() && len(res.products) > 0 {
				if err := printPageSummary(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			}
			return a.printProducts(cmd, res.products)
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Amazon page token from a previous call")

	return cmd
}

func searchCmd(a *app) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "search <seller-id> <query>",
		Short: "Search a seller's catalog",
		Example: `  shopstore search 123456789 "camiseta azul"
  shopstore search A2SELLER pillow --vendor amazon --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := a.store()
			if err != nil {
				return err
			}

			products, err := s.SearchInSeller(cmd.Context(), args[0], args[1], fetchOptions(page, limit))
			if err != nil {
				return err
			}
			return a.printProducts(cmd, products)
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	return cmd
}

func fetchOptions(page, limit int) *domain.FetchOptions {
	if page == 0 && limit == 0 {
		return nil
	}
	return &domain.FetchOptions{Page: page, Limit: limit}
}

func (a *app) printProducts(cmd *cobra.Command, products []domain.Product) error {
	w := cmd.OutOrStdout()
	if a.jsonOutput() {
		return outputJSON(w, products)
	}
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found.")
		return err
	}
	return printProductsTable(w, products)
}

// catalogPage is one page of a seller catalog. total is -1 when the
// adapter does not report it.
type catalogPage struct {
	products  []domain.Product
	total     int
	nextToken string
}

// listCatalog uses the adapters' paging calls when available so the
// table can report the catalog size.
func listCatalog(
	ctx context.Context,
	s shopstore.Store,
	sellerID string,
	opts *domain.FetchOptions,
) (*catalogPage, error) {
	switch st := s.(type) {
	case *mercadolivre.Store:
		res, err := st.SearchPage(ctx, sellerID, "", opts)
		if err != nil {
			return nil, err
		}
		return &catalogPage{products: res.Products, total: res.Paging.Total}, nil
	case *amazon.Store:
		res, err := st.ListingsPage(ctx, "get_seller_products", sellerID, opts)
		if err != nil {
			return nil, err
		}
		page := &catalogPage{products: res.Products, total: res.Total}
		if res.Pagination != nil {
			page.nextToken = res.Pagination.NextToken
		}
		return page, nil
	default:
		products, err := s.GetSellerProducts(ctx, sellerID, opts)
		if err != nil {
			return nil, err
		}
		return &catalogPage{products: products, total: -1}, nil
	}
}

func printPageSummary(w io.Writer, p *catalogPage) error {
	if p.total < 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Showing %d of %d products\n", len(p.products), p.total); err != nil {
		return err
	}
	if p.nextToken != "" {
		if _, err := fmt.Fprintf(w, "Next page token: %s\n", p.nextToken); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
