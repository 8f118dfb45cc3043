package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/shopstore/pkg/stores"
)

func authURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "auth-url",
		Short: "Print the seller authorization URL",
		Long: "Prints the page a seller opens to grant this application access.\n" +
			"The marketplace redirects back to the configured redirect URI with\n" +
			"the code that 'shopstore login' exchanges for a token.",
		Example: `  shopstore auth-url --vendor mercadolivre
  shopstore auth-url --vendor amazon --config shopstore.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := a.store()
			if err != nil {
				return err
			}
			u, err := stores.AuthURL(s, a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
}

func loginCmd(a *app) *cobra.Command {
	var (
		code         string
		clientID     string
		clientSecret string
		redirectURI  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange an authorization code for an access token",
		Long: "Exchanges the code from the authorization redirect for an access\n" +
			"token. Client credentials default to the config file.",
		Example: `  shopstore login --code TG-5f1c... --vendor mercadolivre
  SHOPSTORE_VENDOR=amazon shopstore login --code ANDf... --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, vendor, err := a.store()
			if err != nil {
				return err
			}

			id, secret, redirect := stores.Credentials(vendor, a.cfg)
			if clientID != "" {
				id = clientID
			}
			if clientSecret != "" {
				secret = clientSecret
			}
			if redirectURI != "" {
				redirect = redirectURI
			}

			res, err := s.Login(cmd.Context(), id, secret, code, redirect)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printLoginResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "authorization code from the redirect")
	cmd.Flags().StringVar(&clientID, "client-id", "", "override the configured client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "override the configured client secret")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "override the configured redirect URI")
	cobra.CheckErr(cmd.MarkFlagRequired("code"))

	return cmd
}
