package catalog

import (
	"embed"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tagloc/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer.
// The message IDs are the literal tag syntaxes (e.g. "^root^") and the
// messages their localized descriptions.
type Catalog struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New builds a Catalog for the given locale (e.g. "ja").
//
// It currently loads descriptions from the embedded active.*.toml files.
func New(locale string) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Japanese
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.ja.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("catalog: failed to load %s: %v", file, err)
		}
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}
}

// Lookup renders the localized description for a tag name.
// Names absent from the catalog yield the empty string.
func (c *Catalog) Lookup(name string) string {
	if name == "" {
		return ""
	}
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: name})
	if err != nil {
		return ""
	}
	return msg
}

// ColumnLabel returns the CSV header label for the localized column,
// e.g. "DescriptionJa" for the "ja" locale.
func (c *Catalog) ColumnLabel() string {
	caser := cases.Title(language.Und)
	parts := strings.Split(c.tag.String(), "-")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return "Description" + strings.Join(parts, "")
}
