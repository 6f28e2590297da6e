package application

import (
	"context"

	"tagloc/internal/domain/entities"
	"tagloc/internal/ports/output"
)

type LocalizeService struct {
	store       output.DocumentStore
	catalog     output.Catalog
	columnLabel string
}

func NewLocalizeService(
	store output.DocumentStore,
	catalog output.Catalog,
	columnLabel string,
) *LocalizeService {
	return &LocalizeService{
		store:       store,
		catalog:     catalog,
		columnLabel: columnLabel,
	}
}

// Localize charge le fichier, enrichit chaque ligne avec la description
// localisée de son tag, puis remplace le fichier d'origine.
func (s *LocalizeService) Localize(ctx context.Context, path string) error {
	doc, err := s.store.Load(ctx, path)
	if err != nil {
		return err
	}
	s.augment(doc)
	return s.store.Replace(ctx, path, doc)
}

// augment ajoute le libellé de colonne à l'en-tête seulement s'il a moins
// de 3 champs, puis renseigne le troisième champ de chaque ligne de données
// avec l'entrée du catalogue ("" pour un tag inconnu).
func (s *LocalizeService) augment(doc *entities.Document) {
	if len(doc.Header) < 3 {
		doc.Header = append(doc.Header, s.columnLabel)
	}
	for i, row := range doc.Rows {
		doc.Rows[i] = row.SetLocalized(s.catalog.Lookup(row.Name()))
	}
}
