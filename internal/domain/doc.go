// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (line records, classification results) and contracts
// (interfaces) only.
package domain
