package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"possales/internal/config"
	"possales/internal/connectors"
	driveconnector "possales/internal/connectors/drive"
	imapconnector "possales/internal/connectors/imap"
	"possales/internal/menu"
	"possales/internal/pipeline"
	"possales/internal/sink"
	"possales/internal/storage"
	"possales/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		provider := fs.String("provider", cfg.SourceProvider, "drive|imap")
		_ = fs.Parse(os.Args[2:])
		source, err := makeSource(cfg, *provider)
		must(err)
		processor := pipeline.NewProcessingService(db, cfg, source, sink.NewSupabase(cfg))
		result, err := processor.Run(context.Background())
		must(err)
		fmt.Printf("run done provider=%s files=%d skipped=%d uploaded=%d\n", *provider, result.Files, result.Skipped, result.Uploaded)
	case "transform":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input xlsx path")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--input and --out are required"))
		}
		content, err := os.ReadFile(*input)
		must(err)
		transformer := pipeline.NewTransformer(cfg.SheetName, menu.Default())
		items, err := transformer.TransformWorkbook(content, *input)
		must(err)
		must(pipeline.ExportLineItemsToXLSX(items, *out))
		fmt.Printf("transformed %d line items to %s\n", len(items), *out)
	case "files:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		status := fs.String("status", "archived", "fetched|archived|skipped")
		limit := fs.Int("limit", 50, "max rows")
		_ = fs.Parse(os.Args[2:])
		rows, err := db.ListFilesByStatus(*status, *limit)
		must(err)
		for _, row := range rows {
			fmt.Printf("%d\t%s\t%s\t%s\trows=%d\n", row.ID, row.Provider, row.Name, row.Status, row.RowCount)
		}
	case "watch":
		svc := watcher.NewService(db, cfg)
		must(svc.Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

func makeSource(cfg config.Config, provider string) (connectors.FileSource, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "drive":
		return driveconnector.NewConnector(cfg)
	case "imap":
		return imapconnector.NewConnector(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func usage() {
	fmt.Println("usage: possales <command>")
	fmt.Println("commands:")
	fmt.Println("  run --provider=drive|imap")
	fmt.Println("  transform --input=report.xlsx --out=./out/preview.xlsx")
	fmt.Println("  files:list --status=archived --limit=50")
	fmt.Println("  watch")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
