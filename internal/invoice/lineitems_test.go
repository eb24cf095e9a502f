package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akk525/invoice-parser/internal/extract"
)

func TestReconstructLineItemsFromTables(t *testing.T) {
	tables := []extract.Table{{
		Page:       1,
		TableIndex: 1,
		Rows: []map[string]string{
			{"Description": "Annual subscription", "Qty": "1", "Unit Price": "US$40.00", "Amount": "US$40.00"},
			{"Description": "Support plan", "Qty": "2", "Unit Price": "US$2.00", "Amount": "US$4.00"},
			// a single stray cell is noise, not a line item
			{"Description": "continued on next page"},
		},
	}}

	items := ReconstructLineItems(tables, "", nil)
	require.Len(t, items, 2)

	assert.Equal(t, "Annual subscription", items[0].Description)
	qty, ok := items[0].Quantity.Float64()
	require.True(t, ok)
	assert.Equal(t, 1.0, qty)
	price, ok := items[0].UnitPrice.Float64()
	require.True(t, ok)
	assert.Equal(t, 40.0, price)
	total, ok := items[0].TotalAmount.Float64()
	require.True(t, ok)
	assert.Equal(t, 40.0, total)

	assert.Equal(t, "Support plan", items[1].Description)
}

func TestReconstructLineItemsKeepsRawOnBadAmount(t *testing.T) {
	tables := []extract.Table{{
		Page:       1,
		TableIndex: 1,
		Rows: []map[string]string{
			{"Item": "Consulting", "Quantity": "n/a", "Rate": "US$100.00"},
		},
	}}

	items := ReconstructLineItems(tables, "", nil)
	require.Len(t, items, 1)
	_, ok := items[0].Quantity.Float64()
	assert.False(t, ok)
	assert.Equal(t, "n/a", items[0].Quantity.Raw())
}

func TestReconstructLineItemsTextFallback(t *testing.T) {
	text := "Widgets 3 US$10.00 US$30.00\n" +
		"Jan 1, 2024 – 2 Feb 2024\n"

	items := ReconstructLineItems(nil, text, nil)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Widgets", item.Description)

	qty, ok := item.Quantity.Float64()
	require.True(t, ok)
	assert.Equal(t, 3.0, qty)

	price, ok := item.UnitPrice.Float64()
	require.True(t, ok)
	assert.Equal(t, 10.0, price)

	total, ok := item.TotalAmount.Float64()
	require.True(t, ok)
	assert.Equal(t, 30.0, total)

	assert.Equal(t, "Jan 1, 2024 - 2 Feb 2024", item.ServicePeriod)
}

func TestTextFallbackOnlyWhenTablesYieldNothing(t *testing.T) {
	tables := []extract.Table{{
		Page:       1,
		TableIndex: 1,
		Rows: []map[string]string{
			{"Description": "From table", "Amount": "US$5.00"},
		},
	}}
	text := "Widgets 3 US$10.00 US$30.00"

	items := ReconstructLineItems(tables, text, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "From table", items[0].Description)
}
