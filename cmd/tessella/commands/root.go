package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "tessella",
		Short:         "Generate and render uniform tessellations of the plane",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(listCmd(), generateCmd())

	return root.Execute()
}
