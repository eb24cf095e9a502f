package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akk525/invoice-parser/constants"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(DefaultPatterns(), DefaultLayoutProfile(), nil)
}

func TestResolveFirstMatchingRuleWins(t *testing.T) {
	e := newTestExtractor(t)

	// Rule one (total prefixed with us$) matches 10.00; a later rule would
	// also match the grand total line with a different value.
	text := "Total: US$10.00\nGrand Total: $99.99"
	got, ok := e.Resolve(text, constants.FieldTotal)
	require.True(t, ok)
	assert.Equal(t, "10.00", got)
}

func TestResolveLabeledFields(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name  string
		field constants.Field
		text  string
		want  string
	}{
		{
			name:  "invoice number with hex-digit shape",
			field: constants.FieldInvoiceNumber,
			text:  "Invoice Number: 4E62BC7A0001",
			want:  "4e62bc7a0001", // matching happens on lowercased text
		},
		{
			name:  "invoice number free-form label",
			field: constants.FieldInvoiceNumber,
			text:  "Invoice Number: ABC-123",
			want:  "abc-123",
		},
		{
			name:  "date of issue",
			field: constants.FieldDate,
			text:  "Date of issue: March 3, 2024",
			want:  "march 3, 2024",
		},
		{
			name:  "due date",
			field: constants.FieldDueDate,
			text:  "Due Date: April 15, 2024",
			want:  "april 15, 2024",
		},
		{
			name:  "subtotal",
			field: constants.FieldSubtotal,
			text:  "Subtotal: US$40.00",
			want:  "40.00",
		},
		{
			name:  "tax",
			field: constants.FieldTax,
			text:  "Sales Tax: $4.00",
			want:  "4.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Resolve(tt.text, tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAbsentField(t *testing.T) {
	e := newTestExtractor(t)

	// due_date has no fallback strategy, so a text without any due label
	// resolves absent.
	_, ok := e.Resolve("nothing to see here", constants.FieldDueDate)
	assert.False(t, ok)
}

func TestResolveSkipsMalformedRule(t *testing.T) {
	patterns := PatternSet{
		constants.FieldTotal: {
			{Pattern: `total (`}, // does not compile
			{Pattern: `total\s*:?\s*\$([0-9.]+)`},
		},
	}
	e := NewExtractor(patterns, DefaultLayoutProfile(), nil)

	got, ok := e.Resolve("Total: $12.34", constants.FieldTotal)
	require.True(t, ok)
	assert.Equal(t, "12.34", got)
}

func TestRegisterFallbackRunsAfterDefaults(t *testing.T) {
	e := NewExtractor(PatternSet{}, DefaultLayoutProfile(), nil)
	e.RegisterFallback(constants.FieldDueDate, func(string) (string, bool) {
		return "from strategy", true
	})

	got, ok := e.Resolve("anything", constants.FieldDueDate)
	require.True(t, ok)
	assert.Equal(t, "from strategy", got)
}
