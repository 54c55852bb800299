// Package output writes rendered snippets as plain text, as markdown
// documentation, or as markdown rendered for the terminal with glamour.
package output
