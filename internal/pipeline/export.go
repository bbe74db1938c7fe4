package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"possales/internal"
)

// ExportLineItemsToXLSX writes normalized line items to a review workbook
// using the same columns the sink receives.
func ExportLineItemsToXLSX(items []internal.LineItem, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range recordColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, item := range items {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, item.OrderID)
		set(2, item.Item)
		set(3, derefString(item.SubCategory))
		set(4, derefString(item.Category))
		set(5, derefString(item.Flavor))
		set(6, derefString(item.Variation))
		set(7, derefString(item.Size))
		set(8, item.Quantity)
		set(9, derefString(item.SpiceLevel))
		set(10, derefString(item.SugarLevel))
		set(11, derefFloat(item.TotalOrderAmount))
		set(12, derefFloat(item.ReceivedAmount))
		set(13, item.PaymentTime)
		set(14, string(item.PaymentType))
		set(15, item.OrderType)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
