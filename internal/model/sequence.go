package model

import "time"

// SequenceInvoice names the counter row that numbers invoices.
const SequenceInvoice = "invoice"

// InvoiceSequence is a named counter. LastValue is the last number handed
// out; it is only advanced inside the transaction that inserts the invoice.
type InvoiceSequence struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	LastValue int64     `gorm:"not null"`
	UpdatedAt time.Time
}
