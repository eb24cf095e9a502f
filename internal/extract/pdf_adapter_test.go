package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// word places a text fragment at x with the given width.
func word(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestJoinRow(t *testing.T) {
	t.Run("space inserted on visual gap", func(t *testing.T) {
		row := []pdf.Text{
			word("Khan", 10, 30),
			word("Academy", 45, 50), // 5pt gap
		}
		assert.Equal(t, "Khan Academy", joinRow(row))
	})

	t.Run("adjacent fragments stay joined", func(t *testing.T) {
		row := []pdf.Text{
			word("US$", 10, 20),
			word("44.00", 30.5, 30), // sub-point gap, same token
		}
		assert.Equal(t, "US$44.00", joinRow(row))
	})

	t.Run("empty row", func(t *testing.T) {
		assert.Equal(t, "", joinRow(nil))
	})
}

func TestSplitCells(t *testing.T) {
	row := []pdf.Text{
		word("Annual", 10, 30),
		word("subscription", 45, 60), // word gap, same cell
		word("1", 200, 5),            // column gap
		word("US$40.00", 300, 40),    // column gap
	}
	assert.Equal(t, []string{"Annual subscription", "1", "US$40.00"}, splitCells(row))
}

func TestTablesFromRows(t *testing.T) {
	t.Run("aligned run becomes a table", func(t *testing.T) {
		cellRows := [][]string{
			{"some letterhead"}, // single cell, not tabular
			{"Description", "Qty", "Amount"},
			{"Widgets", "3", "US$30.00"},
			{"Support plan", "1", "US$4.00"},
			{"thank you"},
		}

		tables := tablesFromRows(1, cellRows)
		require.Len(t, tables, 1)

		tbl := tables[0]
		assert.Equal(t, 1, tbl.Page)
		assert.Equal(t, 1, tbl.TableIndex)
		require.Len(t, tbl.Rows, 2)
		assert.Equal(t, map[string]string{
			"Description": "Widgets", "Qty": "3", "Amount": "US$30.00",
		}, tbl.Rows[0])
	})

	t.Run("run shorter than two rows is plain text", func(t *testing.T) {
		cellRows := [][]string{
			{"Description", "Qty", "Amount"},
			{"footer"},
		}
		assert.Empty(t, tablesFromRows(1, cellRows))
	})

	t.Run("cell count change splits the run", func(t *testing.T) {
		cellRows := [][]string{
			{"Description", "Amount"},
			{"Widgets", "US$30.00"},
			{"Date", "Qty", "Amount"},
			{"Jan 1", "3", "US$30.00"},
		}

		tables := tablesFromRows(2, cellRows)
		require.Len(t, tables, 2)
		assert.Equal(t, 2, tables[0].Page)
		assert.Equal(t, 1, tables[0].TableIndex)
		assert.Equal(t, 2, tables[1].TableIndex)
		assert.Equal(t, map[string]string{"Description": "Widgets", "Amount": "US$30.00"}, tables[0].Rows[0])
		assert.Equal(t, map[string]string{"Date": "Jan 1", "Qty": "3", "Amount": "US$30.00"}, tables[1].Rows[0])
	})

	t.Run("duplicate header keeps first column", func(t *testing.T) {
		cellRows := [][]string{
			{"Amount", "Amount"},
			{"US$1.00", "US$2.00"},
		}
		tables := tablesFromRows(1, cellRows)
		require.Len(t, tables, 1)
		assert.Equal(t, map[string]string{"Amount": "US$1.00"}, tables[0].Rows[0])
	})
}
