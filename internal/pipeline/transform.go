package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"possales/internal"
	"possales/internal/menu"
	"possales/internal/util"
)

// Source column headers as the POS system exports them. Header cells are
// trimmed before matching but keep their casing.
const (
	colOrderID        = "Order ID"
	colProducts       = "Products"
	colProductAmount  = "Product amount"
	colReceivedAmount = "Received amount"
	colCash           = "Cash"
	colGcash          = "Gcash"
	colPaymentTime    = "Payment time"
	colChannel        = "Type/Channel"
)

type Transformer struct {
	sheetName   string
	classifier  *Classifier
	corrections map[string]string
}

func NewTransformer(sheetName string, tax menu.Taxonomy) *Transformer {
	return &Transformer{
		sheetName:   sheetName,
		classifier:  NewClassifier(tax),
		corrections: tax.Corrections,
	}
}

// TransformWorkbook normalizes one export workbook into line items, one per
// purchased product. An error means the file is unusable as a whole (corrupt
// workbook, missing sheet or Products column) and the caller skips it;
// per-row oddities never fail the file.
func (t *Transformer) TransformWorkbook(content []byte, filename string) ([]internal.LineItem, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	rows, err := f.GetRows(t.sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q in %s: %w", t.sheetName, filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", t.sheetName, filename)
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}
	if _, ok := columns[colProducts]; !ok {
		return nil, fmt.Errorf("sheet %q in %s has no %q column", t.sheetName, filename, colProducts)
	}

	items := []internal.LineItem{}
	for _, row := range rows[1:] {
		items = append(items, t.explodeOrder(orderRowFromCells(row, columns))...)
	}

	// Every export ends with a totals footer that explodes into one
	// trailing line item; it is not a data row.
	if len(items) > 0 {
		items = items[:len(items)-1]
	}

	return items, nil
}

func orderRowFromCells(cells []string, columns map[string]int) internal.OrderRow {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(cells) {
			return ""
		}
		return cells[idx]
	}
	return internal.OrderRow{
		OrderID:        cell(colOrderID),
		Products:       cell(colProducts),
		ProductAmount:  cell(colProductAmount),
		ReceivedAmount: cell(colReceivedAmount),
		Cash:           cell(colCash),
		Gcash:          cell(colGcash),
		PaymentTime:    cell(colPaymentTime),
		Channel:        cell(colChannel),
	}
}

// explodeOrder expands one order row into one line item per product token.
// Order-level fields (amounts, payment, channel) replicate across the
// order's line items; tokens that normalize to an empty name carry no
// information and are dropped.
func (t *Transformer) explodeOrder(order internal.OrderRow) []internal.LineItem {
	paymentType := PaymentTypeFor(order.Cash, order.Gcash)
	totalAmount := util.ParseAmount(order.ProductAmount)
	receivedAmount := util.ParseAmount(order.ReceivedAmount)

	tokens := SplitProducts(order.Products)
	out := make([]internal.LineItem, 0, len(tokens))
	for _, token := range tokens {
		name := ApplyCorrections(NormalizeItemName(token), t.corrections)
		if name == "" {
			continue
		}
		attrs := ExtractAttributes(token)
		sub, cat := t.classifier.Classify(name)
		out = append(out, internal.LineItem{
			OrderID:          order.OrderID,
			Item:             name,
			SubCategory:      sub,
			Category:         cat,
			Flavor:           attrs.Flavor,
			Variation:        attrs.Variation,
			Size:             attrs.Size,
			Quantity:         attrs.Quantity,
			SpiceLevel:       attrs.SpiceLevel,
			SugarLevel:       attrs.SugarLevel,
			TotalOrderAmount: totalAmount,
			ReceivedAmount:   receivedAmount,
			PaymentTime:      order.PaymentTime,
			PaymentType:      paymentType,
			OrderType:        order.Channel,
		})
	}
	return out
}
