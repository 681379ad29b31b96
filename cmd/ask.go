package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/provider"
)

func NewAskCmd() *cobra.Command {
	var (
		mode    string
		history []string
	)

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask a single question and print the advice",
		Long: `Ask a single question and print the advice.

Prior turns can be supplied with repeated --history flags, alternating
user and assistant text starting with the user.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			m, err := a.dispatcher.ParseMode(mode)
			if err != nil {
				return err
			}
			h := internal.ConversationHistory(history)
			if err := provider.ValidateHistory(h); err != nil {
				return err
			}

			reply := a.dispatcher.GenerateResponse(cmd.Context(), strings.Join(args, " "), h, m)
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(internal.ModeLocal), "responder: local, openai or huggingface")
	cmd.Flags().StringArrayVar(&history, "history", nil, "prior conversation turn (repeatable)")
	return cmd
}
