// Package domain defines core data models and interfaces shared across numcode.
// It contains plain types (digits, numbers, encodings, records) and contracts
// (interfaces) only; the code tables live in internal/codec.
package domain
