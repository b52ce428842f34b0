// Package catalog serves the marketplace listings, equipment rentals and
// community feed from an embedded-schema SQLite database seeded at startup.
// The catalog is read-only at runtime; no user data is ever written to it.
package catalog

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/example/cropdoctor/internal/logger"
	"github.com/example/cropdoctor/internal/models"
)

//go:embed schema.sql
var schemaFS embed.FS

// DB interface defines the catalog queries the server needs
type DB interface {
	ListMarketItems(ctx context.Context, kind models.MarketItemKind) ([]models.MarketItem, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	Close() error
}

// SQLiteDB implements the DB interface
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and seeds, if needed) the catalog database.
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Enable foreign keys and WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("error enabling WAL mode: %w", err)
	}

	if err := initializeSchema(db); err != nil {
		return nil, fmt.Errorf("error initializing schema: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func initializeSchema(db *sql.DB) error {
	schemaBytes, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("error reading schema file: %w", err)
	}

	if _, err := db.Exec(string(schemaBytes)); err != nil {
		return fmt.Errorf("error executing schema: %w", err)
	}

	logger.Info("catalog schema initialized")
	return nil
}

// ListMarketItems returns the seeded listings of one kind in display order.
func (s *SQLiteDB) ListMarketItems(ctx context.Context, kind models.MarketItemKind) ([]models.MarketItem, error) {
	query := `
		SELECT id, name, price, unit, location, image, kind
		FROM market_items
		WHERE kind = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty result serializes as a JSON array, not null.
	items := []models.MarketItem{}
	for rows.Next() {
		var item models.MarketItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Unit, &item.Location, &item.Image, &item.Kind); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListPosts returns the community feed in display order.
func (s *SQLiteDB) ListPosts(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT id, author, role, content, image, likes, comments, time_ago
		FROM posts
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		var image sql.NullString
		if err := rows.Scan(&post.ID, &post.Author, &post.Role, &post.Content, &image, &post.Likes, &post.Comments, &post.TimeAgo); err != nil {
			return nil, err
		}
		post.Image = image.String
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
