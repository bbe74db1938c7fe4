package pipeline

import (
	"math"

	"possales/internal"
)

// Output columns, in the order the review export writes them.
var recordColumns = []string{
	"order_id", "items", "sub_category", "category", "flavor", "variation",
	"size", "quantity", "spice_level", "sugar_level", "total_order_amount",
	"received_amount", "payment_time", "payment_type", "order_type",
}

// BuildRecords flattens line items into sink records keyed by the
// lower_snake output columns.
func BuildRecords(items []internal.LineItem) []internal.Record {
	out := make([]internal.Record, 0, len(items))
	for _, item := range items {
		out = append(out, internal.Record{
			"order_id":           item.OrderID,
			"items":              item.Item,
			"sub_category":       nullableString(item.SubCategory),
			"category":           nullableString(item.Category),
			"flavor":             nullableString(item.Flavor),
			"variation":          nullableString(item.Variation),
			"size":               nullableString(item.Size),
			"quantity":           item.Quantity,
			"spice_level":        nullableString(item.SpiceLevel),
			"sugar_level":        nullableString(item.SugarLevel),
			"total_order_amount": nullableFloat(item.TotalOrderAmount),
			"received_amount":    nullableFloat(item.ReceivedAmount),
			"payment_time":       item.PaymentTime,
			"payment_type":       string(item.PaymentType),
			"order_type":         item.OrderType,
		})
	}
	return out
}

// SanitizeRecords is the last pass before the sink: any non-finite float
// anywhere in the batch becomes an explicit null, regardless of which
// upstream step produced it. The persistence layer cannot represent NaN or
// infinities.
func SanitizeRecords(records []internal.Record) []internal.Record {
	out := make([]internal.Record, 0, len(records))
	for _, record := range records {
		clean := make(internal.Record, len(record))
		for key, value := range record {
			if f, ok := value.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
				clean[key] = nil
				continue
			}
			clean[key] = value
		}
		out = append(out, clean)
	}
	return out
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
