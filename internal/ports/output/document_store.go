package output

import (
	"context"

	"tagloc/internal/domain/entities"
)

// DocumentStore lit et remplace le fichier de ressources CSV.
type DocumentStore interface {
	// Load parse le fichier en un Document (première ligne = en-tête).
	Load(ctx context.Context, path string) (*entities.Document, error)
	// Replace réécrit le fichier à partir du Document, via un fichier
	// temporaire puis un rename atomique: aucun lecteur ne peut observer
	// un fichier partiellement écrit à ce chemin.
	Replace(ctx context.Context, path string, doc *entities.Document) error
}
