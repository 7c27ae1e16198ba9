package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flashcode/flashweb/internal/content"
)

var (
	contentSection string
	contentFormat  string
)

var contentSections = []string{"comparison", "modules", "plans", "bonuses", "faq"}

// contentCmd prints the copy the landing page renders
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the landing page copy",
	Long: `Print one section of the landing page copy, in display order.

Sections: comparison, modules, plans, bonuses, faq

Examples:
  flashweb-cli content --section modules
  flashweb-cli content --section faq --format json`,
	RunE: contentHandler,
}

func contentHandler(cmd *cobra.Command, args []string) error {
	page := content.New()

	var data any
	switch strings.ToLower(contentSection) {
	case "comparison":
		data = page.Comparison.Comparison
	case "modules":
		data = page.Modules.Entries
	case "plans":
		data = page.Pricing.Plans
	case "bonuses":
		data = page.Bonuses.Entries
	case "faq", "faqs":
		data = page.FAQ.Entries
	default:
		return fmt.Errorf("unknown section '%s'. Valid sections: %s", contentSection, strings.Join(contentSections, ", "))
	}

	out := cmd.OutOrStdout()
	switch contentFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "table":
		return writeContentTable(out, data)
	default:
		return fmt.Errorf("unsupported output format '%s'. Use 'table' or 'json'", contentFormat)
	}
}

func writeContentTable(out io.Writer, data any) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	switch rows := data.(type) {
	case content.ComparisonList:
		fmt.Fprintln(w, "OLD WAY\tNEW WAY")
		for i := range rows.OldWay {
			fmt.Fprintf(w, "%s\t%s\n", rows.OldWay[i], rows.NewWay[i])
		}
	case []content.ModuleEntry:
		fmt.Fprintln(w, "ID\tTITLE\tICON")
		for _, m := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Title, m.Icon)
		}
	case []content.Plan:
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tOLD PRICE\tCHECKOUT")
		for _, p := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Price, p.OldPrice, p.CTA.Href)
		}
	case []content.BonusEntry:
		fmt.Fprintln(w, "LABEL\tTITLE\tVALUE")
		for i, b := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", content.BonusLabel(i), b.Title, b.OldPrice)
		}
	case []content.FaqEntry:
		fmt.Fprintln(w, "#\tQUESTION")
		for i, f := range rows {
			fmt.Fprintf(w, "%d\t%s\n", i+1, f.Question)
		}
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(contentCmd)

	contentCmd.Flags().StringVarP(&contentSection, "section", "s", "modules", "Section to print ("+strings.Join(contentSections, ", ")+")")
	contentCmd.Flags().StringVarP(&contentFormat, "format", "f", "table", "Output format (table, json)")
}
