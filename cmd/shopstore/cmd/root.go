// Package cmd implements the shopstore CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/shopstore/internal/config"
	"github.com/donaldgifford/shopstore/pkg/logger"
	"github.com/donaldgifford/shopstore/pkg/shopstore"
	"github.com/donaldgifford/shopstore/pkg/stores"
)

// storeFactory builds the adapter a command talks to.
type storeFactory func(shopstore.Vendor, *config.Config, *slog.Logger) (shopstore.Store, error)

// app carries the state shared by every command of one root.
type app struct {
	v        *viper.Viper
	newStore storeFactory

	cfg    *config.Config
	logger *slog.Logger
}

// Root returns a fresh root command wired to the real marketplace adapters.
func Root() *cobra.Command {
	return newRootCmd(stores.New)
}

// Execute runs the root command.
func Execute() {
	if err := Root().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(factory storeFactory) *cobra.Command {
	a := &app{v: viper.New(), newStore: factory}

	root := &cobra.Command{
		Use:   "shopstore",
		Short: "Marketplace seller CLI for Amazon and Mercado Livre",
		Long: "shopstore talks to marketplace seller APIs on your behalf.\n" +
			"It exchanges OAuth codes for tokens, lists and searches a seller's\n" +
			"catalog, and publishes new listings.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (YAML)")
	flags.String("vendor", "", "marketplace (amazon, mercadolivre); defaults to the config vendor")
	flags.String("token", "", "access token for catalog and create calls")
	flags.String("output", "table", "output format (table, json)")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("log-format", "", "log format override (text, json, console)")

	for _, name := range []string{"config", "vendor", "token", "output", "log-level", "log-format"} {
		cobra.CheckErr(a.v.BindPFlag(name, flags.Lookup(name)))
	}

	a.v.SetEnvPrefix("SHOPSTORE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		authURLCmd(a),
		loginCmd(a),
		productsCmd(a),
		searchCmd(a),
		createCmd(a),
		linkCmd(a),
		versionCmd(),
	)

	return root
}

// load reads the config file, if any, and builds the logger.
func (a *app) load() error {
	cfg := config.Default()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.Logging.Level
	if l := a.v.GetString("log-level"); l != "" {
		level = l
	}

	format := cfg.Logging.Format
	if f := a.v.GetString("log-format"); f != "" {
		format = f
	}

	a.cfg = cfg
	a.logger = logger.New(level, format)
	return nil
}

func (a *app) vendor() (shopstore.Vendor, error) {
	name := a.v.GetString("vendor")
	if name == "" {
		name = a.cfg.Vendor
	}
	return stores.ParseVendor(name)
}

// store builds the adapter for the selected vendor and loads the token
// from --token or SHOPSTORE_TOKEN.
func (a *app) store() (shopstore.Store, shopstore.Vendor, error) {
	vendor, err := a.vendor()
	if err != nil {
		return nil, "", err
	}
	s, err := a.newStore(vendor, a.cfg, a.logger)
	if err != nil {
		return nil, "", err
	}
	if token := a.v.GetString("token"); token != "" {
		s.SetToken(token)
	}
	return s, vendor, nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetString("output") == "json"
}

// sellerID returns the first positional argument, falling back to the
// configured Amazon seller.
func (a *app) sellerID(args []string, vendor shopstore.Vendor) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if vendor == shopstore.VendorAmazon && a.cfg.Amazon.SellerID != "" {
		return a.cfg.Amazon.SellerID, nil
	}
	return "", fmt.Errorf("seller id is required")
}
