// Package scaffold materializes a project layout onto a filesystem. It
// creates every declared directory and writes every declared file, skipping
// paths that already exist, so repeated runs against the same base path are
// safe. Existing files are never compared or overwritten.
//
// A run is split into Plan, which only inspects the filesystem, and Apply,
// which performs the creations and prints one progress line per new path.
package scaffold
