package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	"github.com/X-lab2017/opendigger-cli/internal/display"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
)

var (
	catalogType       string
	catalogIntroducer string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the indicator catalogue",
	Long: `Lists every known indicator with its entity type and query capability.
The QUERY column reads "yes" when a query suffix is accepted, "req" when one
is required, and "no" when queries are rejected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defs := registry.All()

		if catalogType != "" {
			t := indicator.Type(catalogType)
			if t != indicator.TypeRepo && t != indicator.TypeUser {
				return oderror.Newf("unknown indicator type %q, expected repo or user", catalogType).
					WithCode(oderror.CodeInvalidConfig).
					WithDetail("value", catalogType)
			}
			defs = filterDefs(defs, func(d *indicator.Definition) bool { return d.Type == t })
		}

		if catalogIntroducer != "" {
			i := indicator.Introducer(catalogIntroducer)
			if i != indicator.IntroducerXLab && i != indicator.IntroducerCHAOSS {
				return oderror.Newf("unknown introducer %q, expected X-lab or CHAOSS", catalogIntroducer).
					WithCode(oderror.CodeInvalidConfig).
					WithDetail("value", catalogIntroducer)
			}
			defs = filterDefs(defs, func(d *indicator.Definition) bool { return d.Introducer == i })
		}

		fmt.Fprint(os.Stdout, display.Catalogue(defs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogType, "type", "", "filter by entity type (repo or user)")
	catalogCmd.Flags().StringVar(&catalogIntroducer, "introducer", "", "filter by introducer (X-lab or CHAOSS)")

	catalogCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"repo", "user"}, cobra.ShellCompDirectiveNoFileComp
	})
	catalogCmd.RegisterFlagCompletionFunc("introducer", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"X-lab", "CHAOSS"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func filterDefs(defs []*indicator.Definition, keep func(*indicator.Definition) bool) []*indicator.Definition {
	var out []*indicator.Definition
	for _, d := range defs {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
