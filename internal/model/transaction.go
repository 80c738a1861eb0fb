package model

// TransactionRecord is one row of the paginated transaction history.
// The list is append-only from the client's perspective; invoice_number
// is the unique key used to detect duplicates across pages.
type TransactionRecord struct {
	InvoiceNumber   string `json:"invoice_number"`
	TransactionType string `json:"transaction_type"`
	Description     string `json:"description"`
	TotalAmount     int64  `json:"total_amount"`
	CreatedOn       string `json:"created_on"`
}

// TransactionHistory is the payload of GET /transaction/history: the
// echoed paging window plus the records inside it.
type TransactionHistory struct {
	Offset  int                 `json:"offset"`
	Limit   int                 `json:"limit"`
	Records []TransactionRecord `json:"records"`
}

// Transaction is the payload returned by POST /transaction after a
// successful service payment.
type Transaction struct {
	InvoiceNumber   string `json:"invoice_number"`
	ServiceCode     string `json:"service_code"`
	ServiceName     string `json:"service_name"`
	TransactionType string `json:"transaction_type"`
	TotalAmount     int64  `json:"total_amount"`
	CreatedOn       string `json:"created_on"`
}

// TopUpResult is the payload returned by POST /topup: the credited
// amount and the resulting balance.
type TopUpResult struct {
	TopUpAmount int64 `json:"top_up_amount"`
	Balance     int64 `json:"balance"`
}

// Top-up bounds enforced client-side before the backend is called.
const (
	TopUpMin int64 = 10_000
	TopUpMax int64 = 1_000_000
)

// TopUpPresets are the quick-pick amounts offered on the top-up form.
var TopUpPresets = []int64{10_000, 20_000, 50_000, 100_000, 250_000, 500_000}
