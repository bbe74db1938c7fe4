package pipeline

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"possales/internal/menu"
)

const testSheet = "Paid order list"

func mkWorkbook(t *testing.T, sheet string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell %s: %v", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

var testHeader = []string{
	"Order ID", "Products", "Product amount", "Received amount",
	"Cash", "Gcash", "Payment time", "Type/Channel",
}

func TestTransformWorkbook(t *testing.T) {
	content := mkWorkbook(t, testSheet, [][]string{
		testHeader,
		{"1001", "Croissant - Plain x2, French Fries", "250", "250", "250", "-", "2026-08-01 10:15", "Dine-in"},
		{"", "Total", "250", "250", "", "", "", ""},
	})

	tr := NewTransformer(testSheet, menu.Default())
	items, err := tr.TransformWorkbook(content, "report.xlsx")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.Item != "Croissant - Plain" {
		t.Fatalf("item = %q", first.Item)
	}
	if first.SubCategory == nil || *first.SubCategory != "Pastries" {
		t.Fatalf("sub-category = %v", first.SubCategory)
	}
	if first.Category == nil || *first.Category != "Desserts" {
		t.Fatalf("category = %v", first.Category)
	}
	if first.Quantity != 2 {
		t.Fatalf("quantity = %v", first.Quantity)
	}
	if first.PaymentType != "Cash" {
		t.Fatalf("payment type = %q", first.PaymentType)
	}
	if first.TotalOrderAmount == nil || *first.TotalOrderAmount != 250 {
		t.Fatalf("total = %v", first.TotalOrderAmount)
	}

	second := items[1]
	if second.Item != "French Fries" {
		t.Fatalf("item = %q", second.Item)
	}
	if second.SubCategory == nil || *second.SubCategory != "Appetizers" {
		t.Fatalf("sub-category = %v", second.SubCategory)
	}
	if second.Quantity != 1 {
		t.Fatalf("quantity = %v", second.Quantity)
	}
	if second.OrderID != "1001" {
		t.Fatalf("order id = %q", second.OrderID)
	}
	if second.PaymentTime != "2026-08-01 10:15" {
		t.Fatalf("payment time = %q", second.PaymentTime)
	}
}

func TestTransformWorkbookFooterOnly(t *testing.T) {
	content := mkWorkbook(t, testSheet, [][]string{
		testHeader,
		{"", "Total", "0", "0", "", "", "", ""},
	})

	tr := NewTransformer(testSheet, menu.Default())
	items, err := tr.TransformWorkbook(content, "report.xlsx")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items, want 0", len(items))
	}
}

func TestTransformWorkbookMissingSheet(t *testing.T) {
	content := mkWorkbook(t, "Sheet1", [][]string{testHeader})

	tr := NewTransformer(testSheet, menu.Default())
	if _, err := tr.TransformWorkbook(content, "report.xlsx"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestTransformWorkbookMissingProductsColumn(t *testing.T) {
	content := mkWorkbook(t, testSheet, [][]string{
		{"Order ID", "Cash", "Gcash"},
		{"1001", "250", "-"},
	})

	tr := NewTransformer(testSheet, menu.Default())
	_, err := tr.TransformWorkbook(content, "report.xlsx")
	if err == nil {
		t.Fatal("expected error for missing Products column")
	}
	if !strings.Contains(err.Error(), "Products") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestTransformWorkbookCorrupt(t *testing.T) {
	tr := NewTransformer(testSheet, menu.Default())
	if _, err := tr.TransformWorkbook([]byte("not a workbook"), "report.xlsx"); err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
}
