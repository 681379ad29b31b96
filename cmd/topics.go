package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/advice"
)

func NewTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the built-in advice topics in priority order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range advice.Topics() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, name)
			}
		},
	}
}
