package extract

import "context"

// Document holds everything the pipeline needs from one source file.
// It is built once by the ingestion adapter and never mutated afterwards.
type Document struct {
	FullText string
	Tables   []Table
}

// Table is one detected table: ordered rows mapping column header -> cell value.
type Table struct {
	Page       int                 `json:"page"`
	TableIndex int                 `json:"table_number"`
	Rows       []map[string]string `json:"data"`
}

// DocumentExtractor is Stage 1: file -> text + tables.
// Implementations must tolerate page-level failures: log, skip the page,
// and keep accumulating. A page with nothing extractable contributes nothing.
type DocumentExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
	ExtractTables(ctx context.Context, path string) ([]Table, error)
}
