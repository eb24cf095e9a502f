package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akk525/invoice-parser/constants"
)

func TestInvoiceNumberFallbackShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "hex then digits token",
			text: "ref 4E62BC7A0001 thanks",
			want: "4E62BC7A0001",
		},
		{
			name: "three segment dash id",
			text: "code AB12-4E62BC7A-0001",
			want: "AB12-4E62BC7A-0001",
		},
		{
			name: "hex dash digits",
			text: "see 4E62BC7A-0001 above",
			want: "4E62BC7A-0001",
		},
		{
			name: "inv prefixed token",
			text: "your id INV-2024-001",
			want: "INV-2024-001",
		},
		{
			name: "bare digit run",
			text: "order placed on day 20240105",
			want: "20240105",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := invoiceNumberFallback(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := invoiceNumberFallback("no id anywhere")
	assert.False(t, ok)
}

func TestLargestAmountFallback(t *testing.T) {
	got, ok := largestAmountFallback("fee $4.00 item $40.00 total $44.00")
	require.True(t, ok)
	assert.Equal(t, "44", got)
	assert.Equal(t, ParsedAmount(44), NormalizeAmount(got))

	_, ok = largestAmountFallback("no amounts here")
	assert.False(t, ok)

	// non-positive candidates are discarded
	_, ok = largestAmountFallback("$0.00")
	assert.False(t, ok)
}

func TestVendorNameStrategies(t *testing.T) {
	profile := DefaultLayoutProfile()

	t.Run("anchor line before bill-to marker", func(t *testing.T) {
		got, ok := profile.vendorAnchorLine("Khan Academy Bill to\nPO Box 1630")
		require.True(t, ok)
		assert.Equal(t, "Khan Academy", got)
	})

	t.Run("standalone letters-only line", func(t *testing.T) {
		got, ok := profile.vendorStandaloneLine("Receipt\nKhan Academy\n123 Somewhere St")
		require.True(t, ok)
		assert.Equal(t, "Khan Academy", got)
	})

	t.Run("loose mention anywhere", func(t *testing.T) {
		got, ok := profile.vendorAnywhere("Thanks from the khan academy team!")
		require.True(t, ok)
		assert.Equal(t, "Khan Academy", got)
	})

	t.Run("no mention", func(t *testing.T) {
		_, ok := profile.vendorAnywhere("Some Other Vendor Inc")
		assert.False(t, ok)
	})
}

func TestCustomerNameStrategies(t *testing.T) {
	profile := DefaultLayoutProfile()

	t.Run("first plain name after bill-to", func(t *testing.T) {
		text := "Khan Academy Bill to\n" +
			"PO Box 1630\n" +
			"Mountain View, California 94042\n" +
			"United States\n" +
			"support@khanacademy.org\n" +
			"Jane Doe Smith\n"
		got, ok := profile.customerAfterBillTo(text)
		require.True(t, ok)
		assert.Equal(t, "Jane Doe Smith", got)
	})

	t.Run("nothing before bill-to counts", func(t *testing.T) {
		_, ok := profile.customerAfterBillTo("Jane Doe Smith\nno marker in sight")
		assert.False(t, ok)
	})

	t.Run("po box structural pattern", func(t *testing.T) {
		got, ok := profile.customerFromPOBox("PO Box 1630 jane doe")
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", got)
	})
}

func TestResolveUsesStructuralFallbacks(t *testing.T) {
	e := newTestExtractor(t)
	text := "Khan Academy Bill to\nPO Box 1630\nJane Doe Smith\nTotal: US$44.00"

	vendor, ok := e.Resolve(text, constants.FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "Khan Academy", vendor)

	customer, ok := e.Resolve(text, constants.FieldCustomerName)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe Smith", customer)
}
