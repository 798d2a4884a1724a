package admin

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Order Number",
	"Email",
	"PO Number",
	"Status",
	"Created",
	"Total Cost",
}

// Export writes orders as an XLSX workbook.
func Export(w io.Writer, orders []Order) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, o := range orders {
		values := []any{
			o.OrderNumber,
			o.Email,
			o.PONumber,
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.TotalCost,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
