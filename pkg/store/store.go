// Copyright 2025 ShopHub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store is the single point of access to the shop database. It owns
// the connection lifetime, schema creation, seeding and all query
// construction. Callers receive an initialized *Store from New + Initialize
// at process startup and share it across request handlers.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type Config struct {
	// DBPath is the location of the SQLite file. Defaults to data/shop.db
	// under the working directory.
	DBPath string
}

func DefaultConfig() Config {
	return Config{
		DBPath: filepath.Join("data", "shop.db"),
	}
}

// Store wraps a single SQLite connection shared by all request handlers.
// SQLite serializes writers internally; MaxOpenConns(1) keeps the driver
// from opening competing connections.
type Store struct {
	db     *sql.DB
	dbPath string
}

// New opens the database, creating the parent directory if needed. The
// schema is not touched until Initialize is called.
func New(cfg Config) (*Store, error) {
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultConfig().DBPath
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", buildConnectionString(cfg.DBPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:     db,
		dbPath: cfg.DBPath,
	}, nil
}

func buildConnectionString(dbPath string) string {
	baseParams := "?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000&_cache_size=-64000&_foreign_keys=on"

	if runtime.GOOS == "darwin" {
		baseParams += "&_fullfsync=1"
	}

	return dbPath + baseParams
}

// Initialize creates the schema if absent and seeds sample data when the
// products table is empty. It is idempotent and runs once at startup, before
// the HTTP layer accepts requests.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.createTables(ctx); err != nil {
		return err
	}

	count, err := s.GetProductCount(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		if err := s.insertSampleData(ctx); err != nil {
			return err
		}
	}

	zap.S().Infow("Store initialized", "path", s.dbPath, "products", count)

	return nil
}

// The DDL below is the durable on-disk contract. Column names, defaults and
// constraints must not change without a data migration.
var tableDDL = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		originalPrice REAL,
		image TEXT,
		rating REAL DEFAULT 0,
		reviewCount INTEGER DEFAULT 0,
		isNew BOOLEAN DEFAULT 0,
		discount INTEGER,
		category TEXT NOT NULL,
		brand TEXT NOT NULL,
		description TEXT,
		stock INTEGER DEFAULT 0,
		sku TEXT UNIQUE,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT DEFAULT 'customer',
		firstName TEXT,
		lastName TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS cart (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		userId INTEGER NOT NULL,
		productId INTEGER NOT NULL,
		quantity INTEGER DEFAULT 1,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (userId) REFERENCES users (id),
		FOREIGN KEY (productId) REFERENCES products (id)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		userId INTEGER NOT NULL,
		total REAL NOT NULL,
		status TEXT DEFAULT 'pending',
		shippingAddress TEXT,
		paymentMethod TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (userId) REFERENCES users (id)
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		orderId INTEGER NOT NULL,
		productId INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL,
		FOREIGN KEY (orderId) REFERENCES orders (id),
		FOREIGN KEY (productId) REFERENCES products (id)
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS brands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

func (s *Store) createTables(ctx context.Context) error {
	for _, ddl := range tableDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return nil
}

// Ping reports whether the underlying connection is alive. Used by the
// readiness check.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Path returns the location of the database file on disk.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
