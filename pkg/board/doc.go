// Package board implements a two-level symbol board for AAC devices: a home
// screen of categories, each holding symbol to spoken-text items.
//
// A Board is driven by Select, Reset and AddItem and persisted in the
// line-oriented text format of internal/codec. A Board has no internal
// locking; callers sharing one across goroutines must serialize access.
package board
