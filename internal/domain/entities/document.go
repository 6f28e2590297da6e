package entities

// Row est une ligne CSV ordonnée: (Name, DescriptionEn, DescriptionJa?).
// Le premier champ est la clé de recherche dans le catalogue.
type Row []string

// Name retourne le champ 0 (nom du tag), ou "" pour une ligne vide.
func (r Row) Name() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// SetLocalized écrit la description localisée en troisième position:
// ajout si la ligne a moins de 3 champs, écrasement de l'index 2 sinon
// (les champs suivants, s'il y en a, restent intacts).
func (r Row) SetLocalized(desc string) Row {
	if len(r) < 3 {
		return append(r, desc)
	}
	r[2] = desc
	return r
}

// Document est le fichier de ressources en mémoire: un en-tête suivi
// des lignes de données, dans l'ordre du fichier.
type Document struct {
	Header Row
	Rows   []Row
}
