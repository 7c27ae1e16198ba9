package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/flashcode/flashweb/internal/config"
	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/export"
	"github.com/flashcode/flashweb/internal/storage"
)

var (
	exportOut       string
	exportAssetBase string
)

// exportFs is the filesystem export writes to; tests swap in a MemMapFs.
var exportFs = afero.NewOsFs()

// exportCmd writes the landing page as a static site
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the landing page as a static site",
	Long: `Render the landing page without live views and write it, together with
its stylesheet, to a directory that any static host can serve. The FAQ
falls back to native <details> elements and every block is visible.

Checkout links are read from CHECKOUT_STANDARD_URL and CHECKOUT_PREMIUM_URL.

Examples:
  flashweb-cli export --out dist
  flashweb-cli export --out dist --asset-base https://cdn.example.com`,
	RunE: exportHandler,
}

func exportHandler(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg, err := config.ReadEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	page := content.New(content.WithCheckoutURLs(cfg.GetCheckoutStandardURL(), cfg.GetCheckoutPremiumURL()))

	base := exportAssetBase
	if base == "" {
		base = cfg.GetAssetBaseURL()
	}

	res, err := export.New(storage.NewAferoStore(exportFs), export.WithAssetBase(base)).Export(cmd.Context(), page, exportOut)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range res.Files {
		fmt.Fprintf(out, "wrote %s/%s\n", exportOut, f)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringVar(&exportAssetBase, "asset-base", "", "Prefix for asset URLs (defaults to ASSET_BASE_URL)")
}
