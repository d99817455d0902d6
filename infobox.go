// Package infobox extracts the parameters of a named wiki template (an
// infobox) from the pages of a MediaWiki XML dump and checks the extracted
// identifiers for duplicates and malformed values.
//
// This package contains domain types, interfaces and the template scanner
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/, etree/,
// excelize/).
package infobox
