package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/JaimeStill/print-orders/internal/form"
	"github.com/JaimeStill/print-orders/internal/infrastructure"
	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

type itemOptions struct {
	quantity int
	notes    string
	width    string
	height   string
}

func (o *itemOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.quantity, "quantity", 1, "Copies of each image")
	cmd.Flags().StringVar(&o.notes, "notes", "", "Notes attached to each image")
	cmd.Flags().StringVar(&o.width, "width", "", "Print width in inches; height follows the aspect ratio")
	cmd.Flags().StringVar(&o.height, "height", "", "Print height in inches; width follows the aspect ratio")
}

// fill adds paths to the session's form and applies the item options.
func (o *itemOptions) fill(cmd *cobra.Command, session *infrastructure.Session, paths []string) error {
	files := make([]orders.File, 0, len(paths))
	for _, p := range paths {
		f, err := orders.OpenFile(p)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	ids := session.Form.AddFiles(cmd.Context(), files)
	if len(ids) == 0 {
		return fmt.Errorf("no usable images")
	}

	for _, id := range ids {
		if o.width != "" {
			if _, err := session.Form.SetWidth(id, o.width); err != nil {
				return err
			}
		} else if o.height != "" {
			if _, err := session.Form.SetHeight(id, o.height); err != nil {
				return err
			}
		}
		if _, err := session.Form.SetQuantity(id, fmt.Sprint(o.quantity)); err != nil {
			return err
		}
		if o.notes != "" {
			if _, err := session.Form.SetNotes(id, o.notes); err != nil {
				return err
			}
		}
	}
	return nil
}

func newQuoteCmd(root *rootOptions) *cobra.Command {
	var items itemOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "quote <image>...",
		Short: "Price images without submitting an order",
		Example: `  # Price two posters at three copies each
  printorder quote poster.png banner.png --quantity 3

  # Price at a fixed width, sizing locally at the configured DPI
  printorder quote poster.png --width 12 --sizing local`,
		Args: cobra.MinimumNArgs(1),
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

			summary := session.Form.Summary()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return printSummary(cmd.OutOrStdout(), session, summary)
		},
	}

	items.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the quote as JSON")

	return cmd
}

func printSummary(w io.Writer, session *infrastructure.Session, summary form.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFILE SIZE\tSIZE (IN)\tBILLED (IN²)\tQTY\tCOST")

	for _, row := range summary.Rows {
		var fileSize string
		if item, ok := session.Registry.Get(row.ID); ok {
			fileSize = units.HumanSize(float64(item.File.Size()))
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f x %.2f\t%.0f x %.0f = %.0f\t%d\t%s\n",
			row.Filename,
			fileSize,
			row.Width, row.Height,
			row.Quote.RoundedWidth, row.Quote.RoundedHeight, row.Quote.Area,
			row.Quantity,
			row.Cost,
		)
	}

	fmt.Fprintf(tw, "\t\t\t\tTOTAL\t%s\n", summary.Price)
	return tw.Flush()
}
