package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal"
	"github.com/MUTHUKUMARAN-K-01/FINANCEGURU/internal/store"
)

func NewChatCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive advice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			m, err := a.dispatcher.ParseMode(mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			mem := store.NewMemoryStore()
			fmt.Fprintf(out, "FinanceGuru (%s mode). Type 'exit' to quit, 'reset' to start over.\n", m)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				case "reset":
					mem.Reset()
					fmt.Fprintln(out, "Conversation cleared.")
					continue
				}

				reply := a.dispatcher.GenerateResponse(cmd.Context(), line, mem.History(), m)
				mem.AppendExchange(line, reply)
				fmt.Fprintf(out, "\n%s\n\n", reply)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(internal.ModeLocal), "responder: local, openai or huggingface")
	return cmd
}
