package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Akk525/invoice-parser/internal/export"
	"github.com/Akk525/invoice-parser/internal/extract"
	"github.com/Akk525/invoice-parser/internal/invoice"
	"github.com/Akk525/invoice-parser/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		out     = flag.String("o", "", "output JSON file path (defaults to stdout)")
		pretty  = flag.Bool("pretty", false, "pretty-print JSON output")
		debug   = flag.Bool("debug", false, "include raw text sample and extraction diagnostics")
		xlsxOut = flag.String("xlsx", "", "also export line items to an XLSX workbook")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		printError("usage: invoice-parser [flags] <pdf-path>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	// logs go to stderr so stdout stays clean JSON
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Input-not-found is the one failure reported before any extraction.
	if _, err := os.Stat(path); err != nil {
		printError("Error: input file %q not found.\n", path)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	documents := extract.NewPDFAdapter(logger)
	profile := invoice.DefaultLayoutProfile()
	extractor := invoice.NewExtractor(invoice.DefaultPatterns(), profile, logger)
	assembler := invoice.NewAssembler(extractor, profile, logger)
	p := pipeline.New(logger, pipeline.Config{Debug: *debug}, documents, assembler)

	rec := p.ProcessFile(ctx, path)

	var buf []byte
	var err error
	if *pretty {
		buf, err = json.MarshalIndent(rec, "", "  ")
	} else {
		buf, err = json.Marshal(rec)
	}
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}

	if *debug {
		if verr := invoice.ValidateRecordJSON(invoice.BuildRecordJSONSchema(), buf); verr != nil {
			logger.Warn("record schema mismatch", "error", verr)
		}
	}

	if *out != "" {
		if err := os.WriteFile(*out, buf, 0o644); err != nil {
			printError("Error: write output %q: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("Invoice data extracted and saved to: %s\n", *out)
	} else {
		fmt.Println(string(buf))
	}

	if *xlsxOut != "" && rec.Error == "" {
		svc := export.NewService(logger)
		wb, err := svc.ExportLineItemsXLSX(rec)
		if err != nil {
			printError("Error: build XLSX export: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, wb, 0o644); err != nil {
			printError("Error: write XLSX %q: %v\n", *xlsxOut, err)
			os.Exit(1)
		}
		fmt.Printf("Line items exported to: %s\n", *xlsxOut)
	}
}
