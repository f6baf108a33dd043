package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"warraq/internal/config"
	"warraq/internal/docstore"
	"warraq/internal/domain"
	"warraq/internal/nlp"
	"warraq/internal/service"
	"warraq/internal/tfidf"
	"warraq/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/warraq/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: warraq [--config=config.yaml] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components
	var store domain.Store
	switch cfg.Store.Type {
	case "memory", "":
		store = docstore.New()
	default:
		log.Fatalf("unknown store: %s", cfg.Store.Type)
	}

	editor := service.NewEditor(store, tfidf.NewScorer(), &nlp.Canned{}, cfg.Import.AllowedExtensions)

	for _, path := range inputs {
		doc, err := editor.Import(path)
		if err != nil {
			log.Fatalf("import %s failed: %v", path, err)
		}
		log.Printf("imported %s: %d page(s), fingerprint %s", doc.Name, len(doc.Pages), doc.OriginalFingerprint)
	}

	m := tui.New(editor, cfg.Search.MaxResults)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
