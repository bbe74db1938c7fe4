package internal

// SourceFile identifies one pending export workbook at the file source.
type SourceFile struct {
	ID   string
	Name string
}

// OrderRow is one completed order as exported by the POS system. Cell text
// is kept raw; parsing happens downstream.
type OrderRow struct {
	OrderID        string
	Products       string
	ProductAmount  string
	ReceivedAmount string
	Cash           string
	Gcash          string
	PaymentTime    string
	Channel        string
}

type PaymentType string

const (
	PaymentFree   PaymentType = "Free/Voucher/Discounted"
	PaymentCash   PaymentType = "Cash"
	PaymentGcash  PaymentType = "Gcash"
	PaymentCredit PaymentType = "Credit / Debit"
)

// LineItem is the output unit of the pipeline: one product token expanded
// into structured fields, one row per purchased product.
type LineItem struct {
	OrderID          string
	Item             string
	SubCategory      *string
	Category         *string
	Flavor           *string
	Variation        *string
	Size             *string
	Quantity         float64
	SpiceLevel       *string
	SugarLevel       *string
	TotalOrderAmount *float64
	ReceivedAmount   *float64
	PaymentTime      string
	PaymentType      PaymentType
	OrderType        string
}

// Record is one flat row as handed to the sink: lower_snake keys, values
// limited to string, float64 or nil.
type Record map[string]any

type FileRow struct {
	ID       int
	Provider string
	FileID   string
	Name     string
	Hash     string
	Status   string
	RowCount int
	RawRef   string
}
