package extract

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Akk525/invoice-parser/internal/common"
)

const (
	// columnGapPts is the horizontal whitespace (in points) that separates
	// one table cell from the next on the same row.
	columnGapPts = 18.0
	// wordGapPts is the smaller gap that separates words within a cell.
	wordGapPts = 1.0

	minTableRows = 2
	minTableCols = 2
)

// PDFAdapter extracts text and tables from PDF files.
type PDFAdapter struct {
	log *slog.Logger
}

func NewPDFAdapter(log *slog.Logger) *PDFAdapter {
	if log == nil {
		log = slog.Default()
	}
	return &PDFAdapter{log: log}
}

// ExtractText returns the document's plain text, one line per visual row.
// Pages that fail to decode are skipped.
func (a *PDFAdapter) ExtractText(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", common.WrapError(err, "open pdf")
	}
	defer a.closeFile(f, path)

	var b strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return b.String(), err
		}
		rows, ok := a.pageRows(r, pageNum)
		if !ok {
			continue
		}
		for _, row := range rows {
			line := joinRow(row.Content)
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	a.log.Debug("pdf.text.ok", "path", path, "pages", r.NumPage(), "bytes", b.Len())
	return b.String(), nil
}

// ExtractTables recovers row/column tables from each page by clustering row
// words into cells on large horizontal gaps and grouping consecutive rows
// with matching cell counts. The first row of each group becomes the header.
func (a *PDFAdapter) ExtractTables(ctx context.Context, path string) ([]Table, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, common.WrapError(err, "open pdf")
	}
	defer a.closeFile(f, path)

	var tables []Table
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return tables, err
		}
		rows, ok := a.pageRows(r, pageNum)
		if !ok {
			continue
		}
		var cellRows [][]string
		for _, row := range rows {
			cellRows = append(cellRows, splitCells(row.Content))
		}
		tables = append(tables, tablesFromRows(pageNum, cellRows)...)
	}

	a.log.Debug("pdf.tables.ok", "path", path, "tables", len(tables))
	return tables, nil
}

func (a *PDFAdapter) pageRows(r *pdf.Reader, pageNum int) (pdf.Rows, bool) {
	page := r.Page(pageNum)
	if page.V.IsNull() {
		a.log.Debug("pdf.page.empty", "page", pageNum)
		return nil, false
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		a.log.Warn("pdf.page.decode_error", "page", pageNum, "error", err)
		return nil, false
	}
	return rows, true
}

func (a *PDFAdapter) closeFile(f *os.File, path string) {
	if err := f.Close(); err != nil {
		a.log.Warn("pdf.close_error", "path", path, "error", err)
	}
}

// joinRow concatenates positioned text fragments into one line, inserting a
// space only where the fragments are visually separated.
func joinRow(words []pdf.Text) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			prev := words[i-1]
			if w.X-(prev.X+prev.W) > wordGapPts {
				b.WriteByte(' ')
			}
		}
		b.WriteString(w.S)
	}
	return strings.TrimSpace(b.String())
}

// splitCells breaks one visual row into cells on column-sized gaps.
func splitCells(words []pdf.Text) []string {
	var cells []string
	var cur strings.Builder
	for i, w := range words {
		if i > 0 {
			prev := words[i-1]
			gap := w.X - (prev.X + prev.W)
			if gap > columnGapPts {
				if s := strings.TrimSpace(cur.String()); s != "" {
					cells = append(cells, s)
				}
				cur.Reset()
			} else if gap > wordGapPts {
				cur.WriteByte(' ')
			}
		}
		cur.WriteString(w.S)
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}

// tablesFromRows groups maximal runs of consecutive rows sharing the same
// cell count into tables. Runs shorter than minTableRows are plain text.
func tablesFromRows(pageNum int, cellRows [][]string) []Table {
	var tables []Table
	var run [][]string

	flush := func() {
		if len(run) >= minTableRows {
			tables = append(tables, buildTable(pageNum, len(tables)+1, run))
		}
		run = nil
	}

	for _, cells := range cellRows {
		if len(cells) < minTableCols {
			flush()
			continue
		}
		if len(run) > 0 && len(run[len(run)-1]) != len(cells) {
			flush()
		}
		run = append(run, cells)
	}
	flush()
	return tables
}

func buildTable(pageNum, index int, run [][]string) Table {
	header := run[0]
	rows := make([]map[string]string, 0, len(run)-1)
	for _, cells := range run[1:] {
		rec := make(map[string]string, len(cells))
		for i, cell := range cells {
			key := header[i]
			if _, exists := rec[key]; exists {
				continue // duplicate header, keep the first column
			}
			rec[key] = cell
		}
		rows = append(rows, rec)
	}
	return Table{Page: pageNum, TableIndex: index, Rows: rows}
}
