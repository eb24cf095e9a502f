package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Akk525/invoice-parser/internal/common"
	"github.com/Akk525/invoice-parser/internal/extract"
	"github.com/Akk525/invoice-parser/internal/invoice"
)

// Config holds behavior flags for one extraction run.
type Config struct {
	Debug bool
}

// Pipeline runs the full extraction for a single document: ingestion,
// field resolution, assembly. It is the outermost error boundary — the
// caller always gets a record, never a fault.
type Pipeline struct {
	Log       *slog.Logger
	Cfg       Config
	Documents extract.DocumentExtractor
	Assembler *invoice.Assembler
}

func New(log *slog.Logger, cfg Config, docs extract.DocumentExtractor, asm *invoice.Assembler) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Log: log, Cfg: cfg, Documents: docs, Assembler: asm}
}

// ProcessFile extracts one document into a Record. Ingestion failures yield
// the no-text error record; anything unexpected is recovered into an error
// record as well.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (rec *invoice.Record) {
	runID := uuid.New().String()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			p.Log.Error("pipeline.run.panic", "run_id", runID, "panic", r)
			rec = invoice.ErrorRecord(fmt.Sprintf("failed to extract data: %v", r))
		}
	}()

	p.Log.Info("pipeline.run.start", "run_id", runID, "path", path)

	text, err := p.Documents.ExtractText(ctx, path)
	if err != nil {
		// Unreadable input degrades to empty text, reported below.
		p.Log.Warn("pipeline.ingest.text_error", "run_id", runID, "error", err)
		text = ""
	}
	if strings.TrimSpace(text) == "" {
		p.Log.Warn("pipeline.ingest.no_text", "run_id", runID, "path", path)
		return invoice.ErrorRecord(common.ErrNoText.Error())
	}

	tables, err := p.Documents.ExtractTables(ctx, path)
	if err != nil {
		p.Log.Warn("pipeline.ingest.tables_error", "run_id", runID, "error", err)
		tables = nil
	}

	doc := &extract.Document{FullText: text, Tables: tables}
	rec = p.Assembler.BuildRecord(doc, path, p.Cfg.Debug)

	p.Log.Info("pipeline.run.ok",
		"run_id", runID,
		"text_bytes", len(text),
		"tables", len(tables),
		"line_items", len(rec.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec
}
