// Package export renders a classification as the named text entries of the
// downloadable bundle: one CSV per category plus a README.
package export
