// Package cmd implements the mws CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/mws-toolkit/internal/api/client"
	"github.com/donaldgifford/mws-toolkit/pkg/logger"
	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

const mockSellerID = "MOCKSELLER"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "mws",
		Short: "Command-line client for the merchant web service",
		Long: "mws calls the merchant web service directly with the credentials of\n" +
			"one seller account, and talks to a running mws-sync server through\n" +
			"the server subcommands.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.mws.yaml)")
	flags.String("store", "", "named store from the config file")
	flags.String("seller-id", "", "seller ID")
	flags.String("marketplace-id", "", "marketplace ID")
	flags.String("access-key-id", "", "access key ID")
	flags.String("secret-key", "", "secret key")
	flags.String("auth-token", "", "MWS auth token for delegated access")
	flags.String("service-url", "", "service URL (default from marketplace)")
	flags.String("mock-dir", "", "replay fixture files from this directory")
	flags.StringSlice("mock", nil, "fixture files to replay, in order")
	flags.Int("max-pages", 1, "pages to fetch for list commands (0 for all)")
	flags.String("server", "http://localhost:8080", "mws-sync server URL")
	flags.String("output", "table", "output format (table, json)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	for _, name := range []string{
		"store", "seller-id", "marketplace-id", "access-key-id", "secret-key",
		"auth-token", "service-url", "mock-dir", "mock", "max-pages", "server",
		"output", "log-level",
	} {
		cobra.CheckErr(viper.BindPFlag(viperKey(name), flags.Lookup(name)))
	}

	rootCmd.AddCommand(
		ordersCmd(),
		reportsCmd(),
		feedsCmd(),
		productsCmd(),
		inventoryCmd(),
		inboundCmd(),
		outboundCmd(),
		financesCmd(),
		sellersCmd(),
		statusCmd(),
		marketplacesCmd(),
		serverCmd(),
		versionCmd(),
	)
}

func viperKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mws")
	}

	viper.SetEnvPrefix("MWS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// credentials resolves the seller account from flags, environment and the
// config file. Top-level keys win over the named store's entries.
func credentials() (mws.Credentials, error) {
	creds := mws.Credentials{
		SellerID:      viper.GetString("seller_id"),
		MarketplaceID: viper.GetString("marketplace_id"),
		AccessKeyID:   viper.GetString("access_key_id"),
		SecretKey:     viper.GetString("secret_key"),
		AuthToken:     viper.GetString("auth_token"),
		ServiceURL:    viper.GetString("service_url"),
	}

	if name := viper.GetString("store"); name != "" {
		sub := viper.Sub("stores." + name)
		if sub == nil {
			return creds, fmt.Errorf("store %q is not configured", name)
		}
		fill(&creds.SellerID, sub.GetString("seller_id"))
		fill(&creds.MarketplaceID, sub.GetString("marketplace_id"))
		fill(&creds.AccessKeyID, sub.GetString("access_key_id"))
		fill(&creds.SecretKey, sub.GetString("secret_key"))
		fill(&creds.AuthToken, sub.GetString("auth_token"))
		fill(&creds.ServiceURL, sub.GetString("service_url"))
	}

	if mockMode() {
		fill(&creds.SellerID, mockSellerID)
		fill(&creds.AccessKeyID, "MOCKKEY")
		fill(&creds.SecretKey, "MOCKSECRET")
	}
	return creds, nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func mockMode() bool {
	return viper.GetString("mock_dir") != ""
}

// newMWSClient builds a vendor client, replaying fixtures in mock mode.
func newMWSClient() (*mws.Client, error) {
	creds, err := credentials()
	if err != nil {
		return nil, err
	}

	opts := []mws.Option{
		mws.WithLogger(logger.New(viper.GetString("log_level"), "text")),
		mws.WithUserAgent("mws-cli/" + Version),
	}
	if mockMode() {
		opts = append(opts, mws.WithMock(mws.NewMockTransport(
			viper.GetString("mock_dir"), viper.GetStringSlice("mock")...,
		)))
	}
	return mws.NewClient(creds, opts...)
}

func pagerOptions() []mws.PagerOption {
	return []mws.PagerOption{mws.WithMaxPages(viper.GetInt("max_pages"))}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
