package messages

import "errors"

var (
	// ErrNoCatalogs is returned when no catalog file was found in the source directory.
	ErrNoCatalogs = errors.New("no message catalogs found")

	// ErrParseCatalog is returned when a catalog file is not a {group: {name: template}} YAML document.
	ErrParseCatalog = errors.New("failed to parse message catalog")

	// ErrDefaultLanguage is returned when the default language has no catalog.
	ErrDefaultLanguage = errors.New("default language has no catalog")
)
