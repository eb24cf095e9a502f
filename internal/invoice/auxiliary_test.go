package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAuxiliaryPONumber(t *testing.T) {
	t.Run("postal box is not a purchase order", func(t *testing.T) {
		aux := ExtractAuxiliary("PO Box 1630", nil)
		assert.Empty(t, aux.PONumber)
	})

	t.Run("labeled po number", func(t *testing.T) {
		aux := ExtractAuxiliary("PO# 88231", nil)
		assert.Equal(t, "88231", aux.PONumber)
	})

	t.Run("purchase order label", func(t *testing.T) {
		aux := ExtractAuxiliary("Purchase Order: Z-441", nil)
		assert.Equal(t, "Z-441", aux.PONumber)
	})
}

func TestExtractAuxiliaryPaymentTerms(t *testing.T) {
	aux := ExtractAuxiliary("Payment Terms: Net 30", nil)
	assert.Equal(t, "Net 30", aux.PaymentTerms)

	aux = ExtractAuxiliary("please pay net 15", nil)
	assert.Equal(t, "15", aux.PaymentTerms)
}

func TestExtractAuxiliaryCurrency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "dollar sign", text: "Total: $44.00", want: "USD"},
		{name: "euro sign", text: "Gesamt: €100", want: "EUR"},
		{name: "pound sign", text: "Amount: £12", want: "GBP"},
		{name: "literal code", text: "all prices in CAD", want: "CAD"},
		{name: "none", text: "no money here", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aux := ExtractAuxiliary(tt.text, nil)
			assert.Equal(t, tt.want, aux.Currency)
		})
	}
}

func TestExtractVendorInfo(t *testing.T) {
	profile := DefaultLayoutProfile()

	text := "Khan Academy\n" +
		"PO Box 1630\n" +
		"support@khanacademy.org\n" +
		"(650) 123-4567\n" +
		"second@khanacademy.org\n"

	info := ExtractVendorInfo(text, profile, nil)
	assert.Equal(t, "support@khanacademy.org", info.Email) // first match wins
	assert.Equal(t, "(650) 123-4567", info.Phone)
	assert.Equal(t, "PO Box 1630", info.Address)
	assert.False(t, info.Empty())
}

func TestExtractVendorInfoScansHeaderRegionOnly(t *testing.T) {
	profile := DefaultLayoutProfile()

	// contact details buried past the letterhead region are ignored
	text := strings.Repeat("filler line\n", 20) + "support@khanacademy.org\n"
	info := ExtractVendorInfo(text, profile, nil)
	assert.True(t, info.Empty())
}
