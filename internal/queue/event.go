// Package queue defines message payloads exchanged over the message broker.
package queue

// TransactionCompletedEvent is published after the backend confirms a
// balance top-up or a service payment. It carries enough information
// for downstream consumers to log or notify without calling the
// backend API again.
type TransactionCompletedEvent struct {
	InvoiceNumber   string `json:"invoice_number"`
	TransactionType string `json:"transaction_type"` // TOPUP or PAYMENT
	ServiceCode     string `json:"service_code,omitempty"`
	ServiceName     string `json:"service_name,omitempty"`
	TotalAmount     int64  `json:"total_amount"`
	Email           string `json:"email"`
	CreatedOn       string `json:"created_on"`
}
