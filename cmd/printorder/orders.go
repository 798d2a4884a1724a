package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/JaimeStill/print-orders/internal/admin"
	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/spf13/cobra"
)

func newOrdersCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Staff tools for submitted orders",
	}

	cmd.AddCommand(newOrdersListCmd(root))

	return cmd
}

func newOrdersListCmd(root *rootOptions) *cobra.Command {
	var (
		file     string
		view     string
		from     string
		to       string
		page     int
		pageSize int
		session  string
		export   string
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders from a storefront export",
		Long: `List filters an order export (YAML or JSON) by status tab and date range
and prints one page of the result.

The page, page size, and tab are remembered per --session, so a later call
without those flags resumes where the previous one left off. Changing the
tab, the date range, or the page size starts again from the first page.
--reset forgets the remembered position first.`,
		Example: `  # Open orders from March, 50 per page
  printorder orders list --file orders.yaml --view open --from 2025-03-01 --to 2025-03-31 --page-size 50

  # Export the current page to a spreadsheet
  printorder orders list --file orders.yaml --export page.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			infra, err := root.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer infra.Close()

			orders, err := admin.LoadOrders(file)
			if err != nil {
				return err
			}

			var v admin.View
			if cmd.Flags().Changed("view") {
				if v, err = admin.ParseView(view); err != nil {
					return err
				}
			}

			result, err := infra.NewListing().Browse(cmd.Context(), orders, admin.Query{
				Session:  session,
				View:     v,
				From:     from,
				To:       to,
				Page:     page,
				PageSize: pageSize,
				Reset:    reset,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tCREATED\tEMAIL\tPO\tSTATUS\tTOTAL")
			for _, o := range result.Data {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					o.OrderNumber,
					o.CreatedAt.Format("2006-01-02 15:04"),
					o.Email,
					o.PONumber,
					o.Status,
					pricing.FormatMoney(o.TotalCost),
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if result.Total == 0 {
				fmt.Fprintln(out, "No orders match your current filters.")
			}
			fmt.Fprintf(out, "Page %d of %d (%d orders, %d per page)\n",
				result.Page, result.TotalPages, result.Total, result.PageSize)
			if result.HasPrev() {
				fmt.Fprintf(out, "Previous: --page %d\n", result.Page-1)
			}
			if result.HasNext() {
				fmt.Fprintf(out, "Next: --page %d\n", result.Page+1)
			}

			if export != "" {
				f, err := os.Create(export)
				if err != nil {
					return fmt.Errorf("create export: %w", err)
				}
				defer f.Close()

				if err := admin.Export(f, result.Data); err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %d orders to %s\n", len(result.Data), export)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "orders.yaml", "Order export to read (YAML or JSON)")
	cmd.Flags().StringVar(&view, "view", "", "Status tab: open, closed, or all")
	cmd.Flags().StringVar(&from, "from", "", "First creation day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last creation day to include (YYYY-MM-DD)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number (default: remembered or 1)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Orders per page: 10, 20, 50, or 100")
	cmd.Flags().StringVar(&session, "session", admin.DefaultSession, "Name under which preferences are remembered")
	cmd.Flags().StringVar(&export, "export", "", "Also write the page to this XLSX file")
	cmd.Flags().BoolVar(&reset, "reset", false, "Forget the remembered page, page size, and tab before listing")

	return cmd
}
