package constants

// Field is the canonical name of one datum the extractor attempts to resolve.
type Field string

// Stable values (these exact strings are the JSON keys in the output record).
const (
	FieldInvoiceNumber Field = "invoice_number"
	FieldDate          Field = "date"
	FieldDueDate       Field = "due_date"
	FieldTotal         Field = "total"
	FieldSubtotal      Field = "subtotal"
	FieldTax           Field = "tax"
	FieldVendorName    Field = "vendor_name"
	FieldCustomerName  Field = "customer_name"
)

var allFields = []Field{
	FieldInvoiceNumber,
	FieldDate,
	FieldDueDate,
	FieldTotal,
	FieldSubtotal,
	FieldTax,
	FieldVendorName,
	FieldCustomerName,
}

// AllFields returns the fields in resolution order.
func AllFields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// Header keyword groups used to classify table columns into line-item fields.
var (
	DescriptionHeaders = []string{"description", "item", "product", "service"}
	QuantityHeaders    = []string{"qty", "quantity", "qnt"}
	UnitPriceHeaders   = []string{"price", "rate", "unit"}
	TotalHeaders       = []string{"amount", "total", "sum"}
)
