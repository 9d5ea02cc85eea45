package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// Store holds one board snapshot: categories and their items, in order.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// A single connection keeps PRAGMA settings in effect for every query.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Replace overwrites the stored snapshot with records in one transaction.
// An item record before any category record fails with ErrInvalidRecord
// and leaves the previous snapshot in place.
func (s *Store) Replace(records []types.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}

	insertCategory, err := tx.Prepare(
		"INSERT INTO categories (category_id, symbol, name, ordinal) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing category insert: %w", err)
	}
	defer insertCategory.Close()

	insertItem, err := tx.Prepare(
		"INSERT INTO items (item_id, category_id, symbol, text, ordinal) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing item insert: %w", err)
	}
	defer insertItem.Close()

	var categoryID string
	categoryOrdinal, itemOrdinal := 0, 0
	for i, rec := range records {
		switch rec.Kind {
		case types.KindCategory:
			categoryID = generateUUID()
			if _, err := insertCategory.Exec(categoryID, rec.Symbol, rec.Text, categoryOrdinal); err != nil {
				return fmt.Errorf("inserting category %q: %w", rec.Symbol, err)
			}
			categoryOrdinal++
			itemOrdinal = 0
		case types.KindItem:
			if categoryID == "" {
				return fmt.Errorf("%w: record %d: item %q without category", types.ErrInvalidRecord, i+1, rec.Symbol)
			}
			if _, err := insertItem.Exec(generateUUID(), categoryID, rec.Symbol, rec.Text, itemOrdinal); err != nil {
				return fmt.Errorf("inserting item %q: %w", rec.Symbol, err)
			}
			itemOrdinal++
		default:
			return fmt.Errorf("%w: record %d: unknown kind %q", types.ErrInvalidRecord, i+1, rec.Kind)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Records returns the stored snapshot in persisted order: each category
// followed by its items. An empty store yields no records.
func (s *Store) Records() ([]types.Record, error) {
	rows, err := s.db.Query(`SELECT c.symbol, c.name, i.symbol, i.text
FROM categories c
LEFT JOIN items i ON i.category_id = c.category_id
ORDER BY c.ordinal ASC, i.ordinal ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	current := ""
	first := true
	for rows.Next() {
		var catSymbol, catName string
		var itemSymbol, itemText sql.NullString
		if err := rows.Scan(&catSymbol, &catName, &itemSymbol, &itemText); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		if first || catSymbol != current {
			records = append(records, types.CategoryRecord(catSymbol, catName))
			current = catSymbol
			first = false
		}
		if itemSymbol.Valid {
			records = append(records, types.ItemRecord(itemSymbol.String, itemText.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot: %w", err)
	}
	return records, nil
}

// generateUUID generates a UUID v7 row ID.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
