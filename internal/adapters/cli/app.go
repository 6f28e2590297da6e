package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"tagloc/internal/application"
	"tagloc/internal/config"
	"tagloc/internal/ports/input"
	"tagloc/internal/ports/output"
)

// App is the command-line adapter.
type App struct {
	config   *config.Config
	localize input.LocalizeUseCase
}

// New creates an App and wires ports: output adapters -> application (use case).
func New(cfg *config.Config, store output.DocumentStore, catalog output.Catalog, columnLabel string) *App {
	uc := application.NewLocalizeService(store, catalog, columnLabel)
	return &App{
		config:   cfg,
		localize: uc,
	}
}

// Run exécute la transformation puis affiche la ligne de confirmation.
// Toute erreur remonte telle quelle à l'appelant; rien n'est réessayé.
func (a *App) Run(ctx context.Context) error {
	if err := a.localize.Localize(ctx, a.config.CSVPath); err != nil {
		return err
	}
	fmt.Printf("✅ %s mis à jour avec les descriptions localisées (%s).\n",
		filepath.Base(a.config.CSVPath), a.config.Locale)
	return nil
}
