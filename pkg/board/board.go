package board

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/aacboard/internal/codec"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// Board owns the home screen, the named categories, and the navigation
// cursor. The active category is always the home screen or a member of
// the categories table.
type Board struct {
	home       *types.Category
	categories *types.KeyedTable[string, *types.Category]
	active     *types.Category
	opts       options
}

// New returns an empty board in home mode.
func New(opts ...Option) *Board {
	home := types.NewCategory("")
	return &Board{
		home:       home,
		categories: types.NewKeyedTable[string, *types.Category](),
		active:     home,
		opts:       newOptions(opts),
	}
}

// Select acts on a symbol chosen by the user. A category symbol makes that
// category active and yields "". An item of the active category yields its
// text. Anything else is a no-op that yields "".
func (b *Board) Select(symbol string) string {
	if b.categories.HasKey(symbol) {
		cat, err := b.categories.Get(symbol)
		if err != nil {
			return ""
		}
		b.active = cat
		return ""
	}

	text, err := b.active.Select(symbol)
	if err != nil {
		b.opts.logger.WithFields(log.Fields{
			"symbol":   symbol,
			"category": b.active.Name(),
		}).Debug("selection ignored")
		return ""
	}
	return text
}

// Reset returns to the home screen.
func (b *Board) Reset() {
	b.active = b.home
}

// AddItem adds or replaces an item in the active category. In home mode the
// item lands on the home screen; it does not create a category.
func (b *Board) AddItem(symbol, text string) {
	b.active.AddItem(symbol, text)
}

// ImageLocs returns the symbols shown on the active screen. Never nil.
func (b *Board) ImageLocs() []string {
	return b.active.ImageLocs()
}

// Category returns the active category name, or "" on the home screen.
func (b *Board) Category() string {
	if b.InHome() {
		return ""
	}
	return b.active.Name()
}

// HasImage reports whether symbol is a registered category symbol.
// Use Text to look up an item on the active screen.
func (b *Board) HasImage(symbol string) bool {
	return b.categories.HasKey(symbol)
}

// Text returns the text stored for symbol on the active screen.
// Returns ErrNotFound if the active screen has no such item.
func (b *Board) Text(symbol string) (string, error) {
	return b.active.Select(symbol)
}

// InHome reports whether the home screen is active.
func (b *Board) InHome() bool {
	return b.active == b.home
}

// Categories returns the category symbols in the order they were declared.
func (b *Board) Categories() []string {
	return b.categories.Keys()
}

// CategoryName returns the display name registered on the home screen for
// a category symbol. Returns ErrNotFound if symbol is not a category.
func (b *Board) CategoryName(symbol string) (string, error) {
	if !b.categories.HasKey(symbol) {
		return "", types.ErrNotFound
	}
	return b.displayName(symbol), nil
}

// displayName prefers the home-screen text, which is authoritative for
// persistence, and falls back to the category's own name.
func (b *Board) displayName(symbol string) string {
	if name, err := b.home.Select(symbol); err == nil {
		return name
	}
	cat, err := b.categories.Get(symbol)
	if err != nil {
		return ""
	}
	return cat.Name()
}

// Records returns the persisted form of the board: each category record
// followed by its items, in declaration order. Navigation state is not
// touched.
func (b *Board) Records() []types.Record {
	var records []types.Record
	for _, symbol := range b.categories.Keys() {
		cat, err := b.categories.Get(symbol)
		if err != nil {
			continue
		}
		records = append(records, types.CategoryRecord(symbol, b.displayName(symbol)))
		for _, item := range cat.ImageLocs() {
			text, err := cat.Select(item)
			if err != nil {
				continue
			}
			records = append(records, types.ItemRecord(item, text))
		}
	}
	return records
}

// Write encodes the board to w in text format.
func (b *Board) Write(w io.Writer) error {
	return codec.Encode(w, b.Records())
}

// Save atomically writes the board to path. A record that cannot be
// encoded fails with ErrInvalidRecord and leaves path untouched; file
// errors wrap ErrIOFailure.
func (b *Board) Save(path string) error {
	if err := codec.WriteFile(path, b.Records()); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}
	b.opts.logger.WithFields(log.Fields{
		"path":       path,
		"categories": b.categories.Size(),
	}).Debug("board saved")
	return nil
}

// addCategory registers a category under symbol on both the home screen
// and the categories table. A repeated symbol replaces the earlier category.
func (b *Board) addCategory(symbol, name string) *types.Category {
	cat := types.NewCategory(name)
	b.home.AddItem(symbol, name)
	b.categories.Set(symbol, cat)
	return cat
}
