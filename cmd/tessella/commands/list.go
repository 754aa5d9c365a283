package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessella/uniform"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the registry of known uniform tilings",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIGNATURE\tT\tE")
			for _, v := range uniform.Variants() {
				e := fmt.Sprintf("%d", v.EdgeTypes)
				if v.EdgeTypes == 0 {
					e = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", v.Name, v.Signature, v.Uniformity, e)
			}

			return tw.Flush()
		},
	}

	return cmd
}
