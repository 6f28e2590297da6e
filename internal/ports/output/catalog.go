package output

// Catalog exposes the localized descriptions of the template tags.
// Implementations provide a plain lookup on the tag's literal syntax.
type Catalog interface {
	// Lookup returns the localized description for a tag name.
	// Unknown names yield the empty string.
	Lookup(name string) string
}
