// Package sqlite stores board snapshots in a SQLite database.
package sqlite

// Schema DDL. Ordinals preserve declaration order across a round trip.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    symbol TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    category_id TEXT NOT NULL,
    symbol TEXT NOT NULL,
    text TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    UNIQUE (category_id, symbol),
    FOREIGN KEY (category_id) REFERENCES categories(category_id) ON DELETE CASCADE
);`
)

// Index DDL for ordered reads.
const (
	idxCategoriesOrdinal = `CREATE INDEX IF NOT EXISTS idx_categories_ordinal ON categories(ordinal);`
	idxItemsCategory     = `CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id, ordinal);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createItems,
	idxCategoriesOrdinal,
	idxItemsCategory,
}
