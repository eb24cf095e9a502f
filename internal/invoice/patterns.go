package invoice

import (
	"github.com/Akk525/invoice-parser/constants"
)

// Rule is one match expression plus the capture group holding the value.
// Rules are applied case-insensitively over the whitespace-preserved,
// lowercased document text; declaration order encodes precedence.
type Rule struct {
	Pattern string
	Group   int
}

// PatternSet maps each field to its ordered rule list. It is built once and
// passed by reference into the extractor; nothing mutates it at runtime.
type PatternSet map[constants.Field][]Rule

// DefaultPatterns returns the stock rule tables. vendor_name and
// customer_name carry no direct rules on purpose: those values are
// positioned structurally, not label-prefixed, and resolve through the
// registered fallback strategies instead.
func DefaultPatterns() PatternSet {
	return PatternSet{
		constants.FieldInvoiceNumber: {
			{Pattern: `invoice\s*number\s*:?\s*([A-Fa-f0-9]{8}[0-9]{4})`, Group: 1},
			{Pattern: `invoice\s*number\s*:?\s*([A-Za-z0-9\-_]+)`, Group: 1},
			{Pattern: `invoice\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`, Group: 1},
			{Pattern: `inv\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`, Group: 1},
			{Pattern: `#\s*([A-Za-z0-9\-_]+)`, Group: 1},
			{Pattern: `doc\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`, Group: 1},
			{Pattern: `reference\s*#?\s*:?\s*([A-Za-z0-9\-_]+)`, Group: 1},
			{Pattern: `([A-Fa-f0-9]{8}[0-9]{4})`, Group: 1},
			{Pattern: `([A-Za-z0-9]{4}-[A-Za-z0-9]{8}-[A-Za-z0-9]{4})`, Group: 1},
		},
		constants.FieldDate: {
			{Pattern: `date\s*of\s*issue\s*:?\s*([A-Za-z]{3,9}\s+[0-9]{1,2},?\s+[0-9]{4})`, Group: 1},
			{Pattern: `invoice\s*date\s*:?\s*([A-Za-z]{3,9}\s+[0-9]{1,2},?\s+[0-9]{4})`, Group: 1},
			{Pattern: `date\s*:?\s*([0-9]{1,2}[\/\-.][0-9]{1,2}[\/\-.][0-9]{2,4})`, Group: 1},
			{Pattern: `([A-Za-z]{3,9}\s+[0-9]{1,2},?\s+[0-9]{4})`, Group: 1},
			{Pattern: `([0-9]{4}-[0-9]{2}-[0-9]{2})`, Group: 1}, // ISO format
			{Pattern: `([0-9]{2}\/[0-9]{2}\/[0-9]{4})`, Group: 1}, // MM/DD/YYYY format
			{Pattern: `([0-9]{1,2}[\/\-.][0-9]{1,2}[\/\-.][0-9]{2,4})`, Group: 1},
		},
		constants.FieldDueDate: {
			{Pattern: `date\s*due\s*:?\s*([A-Za-z]{3,9}\s+[0-9]{1,2},?\s+[0-9]{4})`, Group: 1},
			{Pattern: `due\s*date\s*:?\s*([A-Za-z]{3,9}\s+[0-9]{1,2},?\s+[0-9]{4})`, Group: 1},
			{Pattern: `due\s*:?\s*([A-Za-z]{3,9}\s+[0-9]{1,2},?\s+[0-9]{4})`, Group: 1},
			{Pattern: `due\s*date\s*:?\s*([0-9]{1,2}[\/\-.][0-9]{1,2}[\/\-.][0-9]{2,4})`, Group: 1},
			{Pattern: `payment\s*due\s*:?\s*([0-9]{1,2}[\/\-.][0-9]{1,2}[\/\-.][0-9]{2,4})`, Group: 1},
			{Pattern: `due\s*:?\s*([0-9]{1,2}[\/\-.][0-9]{1,2}[\/\-.][0-9]{2,4})`, Group: 1},
		},
		constants.FieldTotal: {
			{Pattern: `total\s*:?\s*us\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `total\s*:?\s*\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `total\s*:?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `amount\s*due\s*:?\s*us\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `amount\s*due\s*:?\s*\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `balance\s*due\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `grand\s*total\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `total\s*amount\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `net\s*amount\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
		},
		constants.FieldSubtotal: {
			{Pattern: `subtotal\s*:?\s*us\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `subtotal\s*:?\s*\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `sub\s*total\s*:?\s*us\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `sub\s*total\s*:?\s*\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `sub-total\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
		},
		constants.FieldTax: {
			{Pattern: `tax\s*:?\s*us\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `tax\s*:?\s*\$\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `sales\s*tax\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `vat\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `gst\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
			{Pattern: `hst\s*:?\s*\$?\s*([0-9,]+\.?[0-9]*)`, Group: 1},
		},
		constants.FieldVendorName:   {},
		constants.FieldCustomerName: {},
	}
}
