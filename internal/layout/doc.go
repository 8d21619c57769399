// Package layout holds the static catalog a scaffold run materializes: the
// ordered directory tree and the boilerplate files with their literal
// contents. The catalog is declared in the embedded layout.yaml, validated
// against an embedded JSON schema, and expanded once into plain tables.
package layout
