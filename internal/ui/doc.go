// Package ui provides theme and color support for terminal output.
// Color is applied only to interactive terminals: piped output stays
// byte-for-byte plain so that reports can be diffed and parsed.
package ui
