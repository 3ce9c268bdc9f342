// Package store is the back-office data layer: products, categories,
// orders, customers and payments over SQLite.
package store

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		original_price REAL DEFAULT 0,
		image TEXT,
		rating REAL DEFAULT 0,
		review_count INTEGER DEFAULT 0,
		category_id INTEGER,
		category TEXT,
		brand TEXT,
		in_stock INTEGER DEFAULT 1,
		stock_count INTEGER DEFAULT 0,
		description TEXT,
		features TEXT,
		tags TEXT,
		weight TEXT,
		origin TEXT,
		sku TEXT,
		is_active INTEGER DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		icon TEXT,
		color TEXT,
		description TEXT,
		is_active INTEGER DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		ref TEXT NOT NULL,
		user_id TEXT,
		subtotal REAL NOT NULL,
		tax REAL NOT NULL,
		delivery_fee REAL NOT NULL,
		discount REAL DEFAULT 0,
		total REAL NOT NULL,
		street TEXT,
		city TEXT,
		state TEXT,
		zip_code TEXT,
		instructions TEXT,
		payment_method TEXT,
		delivery_option TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL,
		product_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		quantity INTEGER NOT NULL,
		image TEXT,
		in_stock INTEGER DEFAULT 1,
		max_quantity INTEGER DEFAULT 0,
		FOREIGN KEY (order_id) REFERENCES orders(id)
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		role TEXT NOT NULL DEFAULT 'customer',
		password TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		intent_id TEXT,
		amount REAL NOT NULL,
		currency TEXT NOT NULL DEFAULT 'usd',
		status TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (order_id) REFERENCES orders(id)
	);
	`
	_, err := s.DB.Exec(query)
	return errors.Wrap(err, "create schema")
}
