// Package render converts a Markdown document into a standalone HTML page.
//
// Goldmark handles the Markdown-to-HTML conversion; the result is then
// substituted into a fixed page shell together with the title and an
// optional inline stylesheet.
package render
