package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/JiCorrales/traffic-jam-solver/internal/catalog"
	"github.com/JiCorrales/traffic-jam-solver/internal/config"
	"github.com/JiCorrales/traffic-jam-solver/internal/library"
)

func newCatalogCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the stored library of named puzzles",
	}
	root.AddCommand(newCatalogImportCmd())
	root.AddCommand(newCatalogListCmd())
	return root
}

func newCatalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <manifest-dir>",
		Short: "Load every puzzle named in a manifest directory into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogImport(args[0])
		},
	}
}

func runCatalogImport(dir string) error {
	entries, err := library.Load(dir)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	store, err := catalog.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, entry := range entries {
		if _, err := library.ResolveAndParse(dir, entry); err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", entry.ID, err)
			continue
		}
		text, err := os.ReadFile(filepath.Join(dir, entry.Path))
		if err != nil {
			return err
		}
		record := catalog.Record{
			ID:        entry.ID,
			Title:     entry.Title,
			Body:      string(text),
			CreatedAt: time.Now(),
		}
		if err := store.Insert(ctx, record); err != nil {
			return err
		}
		fmt.Printf("imported %s (%s)\n", entry.ID, entry.Title)
	}
	return nil
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every puzzle currently stored in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList()
		},
	}
}

func runCatalogList() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	store, err := catalog.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%s\t%s\t%s\n", r.ID, r.Title, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
