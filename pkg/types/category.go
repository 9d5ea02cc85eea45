package types

// Category is one named group of symbol to spoken-text entries.
// The home screen is a Category with an empty name.
type Category struct {
	name  string
	items *KeyedTable[string, string]
}

// NewCategory creates an empty category with the given name.
func NewCategory(name string) *Category {
	return &Category{
		name:  name,
		items: NewKeyedTable[string, string](),
	}
}

// AddItem stores text under symbol, replacing any previous text.
func (c *Category) AddItem(symbol, text string) {
	c.items.Set(symbol, text)
}

// Select returns the text associated with symbol.
// Returns ErrNotFound if symbol is not an item of this category.
func (c *Category) Select(symbol string) (string, error) {
	return c.items.Get(symbol)
}

// HasImage reports whether symbol is an item of this category.
func (c *Category) HasImage(symbol string) bool {
	return c.items.HasKey(symbol)
}

// ImageLocs returns the item symbols in insertion order. Never nil.
func (c *Category) ImageLocs() []string {
	return c.items.Keys()
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Len returns the number of items.
func (c *Category) Len() int {
	return c.items.Size()
}
