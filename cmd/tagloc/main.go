package main

import (
	"context"
	"log"
	"os"

	"tagloc/internal/adapters/cli"
	"tagloc/internal/config"
	"tagloc/internal/infrastructure/catalog"
	"tagloc/internal/infrastructure/csvfile"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	cat := catalog.New(cfg.Locale)
	store := csvfile.NewStore()

	app := cli.New(cfg, store, cat, cat.ColumnLabel())
	if err := app.Run(context.Background()); err != nil {
		log.Printf("❌ Erreur lors de la mise à jour du fichier CSV: %v", err)
		os.Exit(1)
	}
}
