package types

// Record kinds. A board file is a sequence of category records, each
// followed by the item records that belong to it.
const (
	KindCategory = "category"
	KindItem     = "item"
)

// Record is one persisted line of a board.
// For a category record Text is the display name; for an item record it is
// the spoken text.
type Record struct {
	Kind   string `json:"kind"`
	Symbol string `json:"symbol"`
	Text   string `json:"text"`
}

// CategoryRecord builds a category declaration.
func CategoryRecord(symbol, name string) Record {
	return Record{Kind: KindCategory, Symbol: symbol, Text: name}
}

// ItemRecord builds an item declaration.
func ItemRecord(symbol, text string) Record {
	return Record{Kind: KindItem, Symbol: symbol, Text: text}
}
