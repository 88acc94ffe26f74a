// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, entries, records), the error kinds every layer
// reports, and contracts (interfaces) only.
package domain
