// Package cli defines the Cobra command tree for the th-setup CLI. The root
// command scaffolds the project; each other file registers one subcommand.
// Commands only parse flags and format output; the work happens in the
// layout and scaffold packages.
package cli
