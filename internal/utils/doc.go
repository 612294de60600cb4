// Package utils provides shared utility functions for the notevault application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # Filesystem Utilities
//
// Functions for crash-safe file handling:
//   - WriteFileAtomic: writes via a temp file, fsync and rename
//   - FileExists: reports whether a regular file exists
//
// # String Utilities
//
// Functions for string manipulation and formatting:
//   - FormatPaths: formats file paths for human-readable output
//   - Preview: truncates note content for listings
//
// # I/O Utilities
//
// Functions for reading from stdin and other I/O operations:
//   - ReadStdin: reads all data from standard input
//   - ReadStdinLine: reads a single line, e.g. a piped password
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - ReadPassphrase: prompts without echoing input
//   - IsTerminal: checks if stdin is a terminal
package utils
