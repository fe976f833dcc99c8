// Package catalog provides the SQLite-backed food catalog store.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/eatwise/backend/internal/domain"
)

// Store is the local food catalog backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the catalog database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates the foods table and its indexes. The partial
// unique index on barcode is what resolves concurrent imports of the
// same external item: the loser of the race gets a constraint error
// and falls back to reading the winner's row. name_norm and brand_norm
// hold Go-lowercased copies because SQLite's lower() only folds ASCII,
// not Cyrillic.
func (s *Store) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS foods (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	name_norm    TEXT NOT NULL,
	brand        TEXT NOT NULL DEFAULT '',
	brand_norm   TEXT NOT NULL DEFAULT '',
	barcode      TEXT NOT NULL DEFAULT '',
	calories     REAL NOT NULL DEFAULT 0,
	protein      REAL NOT NULL DEFAULT 0,
	carbs        REAL NOT NULL DEFAULT 0,
	fats         REAL NOT NULL DEFAULT 0,
	fiber        REAL NOT NULL DEFAULT 0,
	sugar        REAL NOT NULL DEFAULT 0,
	serving_size REAL NOT NULL DEFAULT 100,
	serving_unit TEXT NOT NULL DEFAULT 'g',
	category     TEXT NOT NULL DEFAULT '',
	image_url    TEXT NOT NULL DEFAULT '',
	verified     INTEGER NOT NULL DEFAULT 0,
	created_by   TEXT NOT NULL DEFAULT '',
	source       TEXT NOT NULL DEFAULT 'manual',
	created_at   TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_foods_barcode ON foods(barcode) WHERE barcode != '';
CREATE INDEX IF NOT EXISTS idx_foods_name_norm ON foods(name_norm);
`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

const foodColumns = `id, name, brand, barcode, calories, protein, carbs, fats, fiber, sugar,
	serving_size, serving_unit, category, image_url, verified, created_by, source, created_at`

// Search returns up to limit items whose name or brand contains the
// raw query, or whose name contains any expansion term, ordered
// verified-first then by name. This is a broad pre-filter; the caller
// re-ranks with the scorer.
func (s *Store) Search(ctx context.Context, rawQuery string, terms []string, limit int) ([]domain.FoodItem, error) {
	raw := "%" + strings.ToLower(strings.TrimSpace(rawQuery)) + "%"

	conditions := []string{"name_norm LIKE ?", "brand_norm LIKE ?"}
	args := []any{raw, raw}
	for _, term := range terms {
		conditions = append(conditions, "name_norm LIKE ?")
		args = append(args, "%"+strings.ToLower(term)+"%")
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		`SELECT %s FROM foods WHERE %s ORDER BY verified DESC, name_norm ASC LIMIT ?`,
		foodColumns, strings.Join(conditions, " OR "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// FindByBarcode returns the item with the given barcode, or nil when
// the barcode is unknown.
func (s *Store) FindByBarcode(ctx context.Context, barcode string) (*domain.FoodItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE barcode = ?`, barcode)

	item, err := scanFood(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by barcode: %w", err)
	}
	return item, nil
}

// Insert stores a new catalog item. An empty ID is assigned; a barcode
// collision surfaces as domain.ErrDuplicateFood.
func (s *Store) Insert(ctx context.Context, item *domain.FoodItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO foods (`+foodColumns+`, name_norm, brand_norm)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Brand, item.Barcode,
		item.Calories, item.Protein, item.Carbs, item.Fats, item.Fiber, item.Sugar,
		item.ServingSize, item.ServingUnit, item.Category, item.ImageURL,
		item.Verified, item.CreatedBy, item.Source, item.CreatedAt.Format(time.RFC3339),
		strings.ToLower(item.Name), strings.ToLower(item.Brand),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrDuplicateFood
		}
		return fmt.Errorf("insert food: %w", err)
	}
	return nil
}

// ListDefault returns up to limit items ordered verified-first then by
// name, for empty-query listings.
func (s *Store) ListDefault(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+foodColumns+` FROM foods ORDER BY verified DESC, name_norm ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// Count returns the number of catalog entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFood(row rowScanner) (*domain.FoodItem, error) {
	var item domain.FoodItem
	var createdAt string
	err := row.Scan(
		&item.ID, &item.Name, &item.Brand, &item.Barcode,
		&item.Calories, &item.Protein, &item.Carbs, &item.Fats, &item.Fiber, &item.Sugar,
		&item.ServingSize, &item.ServingUnit, &item.Category, &item.ImageURL,
		&item.Verified, &item.CreatedBy, &item.Source, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if ts, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		item.CreatedAt = ts
	}
	return &item, nil
}

func scanFoods(rows *sql.Rows) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	for rows.Next() {
		item, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
