package main

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/print-orders/internal/upload"
	"github.com/spf13/cobra"
)

func newSubmitCmd(root *rootOptions) *cobra.Command {
	var items itemOptions
	var email, po string

	cmd := &cobra.Command{
		Use:   "submit <image>...",
		Short: "Submit images as a print order",
		Long: `Submit creates an order on the storefront and uploads each image in turn.

Uploads stop at the first failure. Images uploaded before the failure stay
with the order; the error names the order so staff can complete it.`,
		Example: `  printorder submit poster.png banner.png --email buyer@example.com --po 4410`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infra, err := root.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer infra.Close()

			session := infra.NewSession(consoleNotifier{w: cmd.ErrOrStderr()})
			if err := items.fill(cmd, session, args); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order total: %s\n", session.Form.Summary().Price)

			result, err := session.Form.Submit(cmd.Context(), email, po, func(s upload.Status) {
				switch s.State {
				case upload.StateCreatingOrder:
					fmt.Fprintln(out, "Creating order...")
				case upload.StateUploading:
					if s.Done {
						fmt.Fprintf(out, "  uploaded %s (%d/%d, %d%%)\n", s.File, s.Index+1, s.Total, s.Progress)
					}
				}
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Order %s submitted: %s\n", result.OrderID, strings.Join(result.Uploaded, ", "))
			fmt.Fprintf(out, "Confirmation: %s\n", result.Redirect)
			return nil
		},
	}

	items.register(cmd)
	cmd.Flags().StringVar(&email, "email", "", "Contact email for the order (required)")
	cmd.Flags().StringVar(&po, "po", "", "Purchase order number")
	cmd.MarkFlagRequired("email")

	return cmd
}
