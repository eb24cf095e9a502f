package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Akk525/invoice-parser/internal/common"
	"github.com/Akk525/invoice-parser/internal/genai"
)

func main() {
	var (
		out    = flag.String("o", "", "output text file path (defaults to stdout)")
		prompt = flag.String("prompt", genai.DefaultInstruction, "instruction sent with the document")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: summarize [flags] <pdf-path>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := common.LoadConfig()
	if err := cfg.ValidateGenAI(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(2)
	}

	docBytes, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read input %q: %v\n", path, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GenAI.Timeout)
	defer cancel()

	client := genai.NewClient(genai.Config{
		BaseURL:     cfg.GenAI.BaseURL,
		Model:       cfg.GenAI.Model,
		APIKey:      cfg.GenAI.APIKey,
		Temperature: cfg.GenAI.Temperature,
		Timeout:     cfg.GenAI.Timeout,
	}, logger)

	summary, err := client.SummarizeDocument(ctx, docBytes, *prompt)
	if err != nil {
		logger.Error("summarize failed", "path", path, "error", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := os.WriteFile(*out, []byte(summary), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write output %q: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("Summary saved to: %s\n", *out)
	} else {
		fmt.Println(summary)
	}
}
