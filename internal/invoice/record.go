package invoice

import (
	"encoding/json"

	"github.com/Akk525/invoice-parser/internal/extract"
)

// Amount is a monetary or quantity value that degrades to its original
// textual form when numeric normalization fails. It marshals as a JSON
// number when parsed and as the raw string otherwise.
type Amount struct {
	value  float64
	raw    string
	parsed bool
}

func ParsedAmount(v float64) Amount {
	return Amount{value: v, parsed: true}
}

func RawAmount(raw string) Amount {
	return Amount{raw: raw}
}

// Float64 returns the numeric value and whether normalization succeeded.
func (a Amount) Float64() (float64, bool) {
	return a.value, a.parsed
}

func (a Amount) Raw() string {
	return a.raw
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.parsed {
		return json.Marshal(a.value)
	}
	return json.Marshal(a.raw)
}

// LineItem is one row of billed goods or services.
type LineItem struct {
	Description   string  `json:"description,omitempty"`
	Quantity      *Amount `json:"quantity,omitempty"`
	UnitPrice     *Amount `json:"unit_price,omitempty"`
	TotalAmount   *Amount `json:"total_amount,omitempty"`
	ServicePeriod string  `json:"service_period,omitempty"`
}

// fieldCount reports how many line-item fields are populated. Rows that
// populate fewer than two are treated as noise, not line items.
func (li LineItem) fieldCount() int {
	n := 0
	if li.Description != "" {
		n++
	}
	if li.Quantity != nil {
		n++
	}
	if li.UnitPrice != nil {
		n++
	}
	if li.TotalAmount != nil {
		n++
	}
	return n
}

// VendorInfo holds contact details scraped from the letterhead region.
type VendorInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (v VendorInfo) Empty() bool {
	return v.Email == "" && v.Phone == "" && v.Address == ""
}

// DebugInfo carries extraction statistics attached only in debug mode.
type DebugInfo struct {
	ExtractedTextLength   int    `json:"extracted_text_length"`
	TablesFound           int    `json:"tables_found"`
	FilenameInvoiceNumber string `json:"filename_invoice_number,omitempty"`
}

// Record is the single JSON object emitted per document. Every field is
// independently optional: the primary fields stay present as null when
// unresolved, everything else is omitted when absent.
type Record struct {
	Error string `json:"error,omitempty"`

	InvoiceNumber *string `json:"invoice_number"`
	Date          *string `json:"date"`
	DueDate       *string `json:"due_date"`
	Total         *Amount `json:"total"`
	Subtotal      *Amount `json:"subtotal"`
	Tax           *Amount `json:"tax"`
	VendorName    *string `json:"vendor_name"`
	CustomerName  *string `json:"customer_name"`

	VendorInfo   *VendorInfo `json:"vendor_info,omitempty"`
	LineItems    []LineItem  `json:"line_items,omitempty"`
	PONumber     string      `json:"po_number,omitempty"`
	PaymentTerms string      `json:"payment_terms,omitempty"`
	Currency     string      `json:"currency,omitempty"`

	ExtractionDate string `json:"extraction_date,omitempty"`
	SourceFile     string `json:"source_file,omitempty"`

	DebugInfo *DebugInfo      `json:"debug_info,omitempty"`
	RawText   string          `json:"raw_text,omitempty"`
	RawTables []extract.Table `json:"raw_tables,omitempty"`
}

// ErrorRecord builds the record returned when extraction fails as a whole.
func ErrorRecord(msg string) *Record {
	return &Record{Error: msg}
}

// MarshalJSON collapses failed extractions to exactly {"error": <message>}
// so callers never see half-populated records next to an error.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}
	type plain Record
	return json.Marshal((*plain)(r))
}
