package domain

import "errors"

// Domain errors.
var (
	ErrRead          = errors.New("fichier CSV illisible")
	ErrParse         = errors.New("contenu CSV invalide")
	ErrReplace       = errors.New("remplacement atomique du fichier impossible")
	ErrEmptyDocument = errors.New("document CSV vide (ligne d'en-tête manquante)")
)
