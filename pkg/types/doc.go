// Package types defines the KeyedTable and Category building blocks of a
// symbol board, the persisted Record shape, the CLI Config, and the
// standard error types.
package types
