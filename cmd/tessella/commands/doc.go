// Package commands defines the tessella CLI.
//
// Commands
//
//   - list      Print the registry of known uniform tilings
//   - generate  Generate a named tiling and write it as SVG, HTML or PNG
//
// # Implementation
//
// Subcommands are thin wrappers over the uniform and render packages; the
// CLI holds no state and performs no work beyond flag parsing and file I/O.
package commands
