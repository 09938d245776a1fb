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

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shophub/storefront/pkg/models"
)

// Sort orders accepted by ProductFilters.SortBy. Anything else falls back
// to id ascending.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortName      = "name"
)

// ProductFilters narrows and orders a product listing. Zero values add no
// clause; all set filters compose with AND, except Query which expands to a
// case-insensitive substring match OR'd across name, description, brand and
// category. Page and Limit paginate only when both are positive (1-indexed
// pages).
type ProductFilters struct {
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Rating   float64
	Query    string
	SortBy   string
	Page     int
	Limit    int
}

func (f ProductFilters) whereClause() (string, []any) {
	clause := " WHERE 1=1"

	var args []any

	if f.Category != "" {
		clause += " AND category = ?"
		args = append(args, f.Category)
	}

	if f.Brand != "" {
		clause += " AND brand = ?"
		args = append(args, f.Brand)
	}

	if f.MinPrice > 0 {
		clause += " AND price >= ?"
		args = append(args, f.MinPrice)
	}

	if f.MaxPrice > 0 {
		clause += " AND price <= ?"
		args = append(args, f.MaxPrice)
	}

	if f.Rating > 0 {
		clause += " AND rating >= ?"
		args = append(args, f.Rating)
	}

	if f.Query != "" {
		clause += " AND (name LIKE ? OR description LIKE ? OR brand LIKE ? OR category LIKE ?)"
		term := "%" + f.Query + "%"
		args = append(args, term, term, term, term)
	}

	return clause, args
}

func (f ProductFilters) orderClause() string {
	switch f.SortBy {
	case SortPriceLow:
		return " ORDER BY price ASC"
	case SortPriceHigh:
		return " ORDER BY price DESC"
	case SortRating:
		return " ORDER BY rating DESC"
	case SortNewest:
		return " ORDER BY createdAt DESC"
	case SortName:
		return " ORDER BY name ASC"
	default:
		return " ORDER BY id ASC"
	}
}

const productColumns = `id, name, price, originalPrice, image, rating, reviewCount,
	isNew, discount, category, brand, description, stock, sku, createdAt, updatedAt`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.OriginalPrice,
		&p.Image,
		&p.Rating,
		&p.ReviewCount,
		&p.IsNew,
		&p.Discount,
		&p.Category,
		&p.Brand,
		&p.Description,
		&p.Stock,
		&p.SKU,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	return p, err
}

// GetProducts returns the product rows matching the filters. When Page and
// Limit are set the result is one page; use CountProducts with the same
// filters for the pre-limit total.
func (s *Store) GetProducts(ctx context.Context, filters ProductFilters) ([]models.Product, error) {
	where, args := filters.whereClause()
	query := "SELECT " + productColumns + " FROM products" + where + filters.orderClause()

	if filters.Page > 0 && filters.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	defer func() { _ = rows.Close() }()

	products := []models.Product{}

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

// CountProducts returns the number of rows matching the filters, ignoring
// pagination. Pagination metadata must come from here, not from the length
// of a limited page.
func (s *Store) CountProducts(ctx context.Context, filters ProductFilters) (int64, error) {
	where, args := filters.whereClause()

	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// GetProduct looks up one product by primary key. Returns ErrNotFound when
// no row matches.
func (s *Store) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}

		return models.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

// CreateProduct inserts a product and returns the generated id. Unset
// optional fields are stored as NULL; rating, reviewCount and stock default
// to zero. SKU uniqueness is enforced only by the database constraint, whose
// error surfaces verbatim.
func (s *Store) CreateProduct(ctx context.Context, p models.Product) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO products (name, price, originalPrice, image, rating, reviewCount,
			isNew, discount, category, brand, description, stock, sku)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name,
		p.Price,
		p.OriginalPrice,
		p.Image,
		p.Rating,
		p.ReviewCount,
		p.IsNew,
		p.Discount,
		p.Category,
		p.Brand,
		p.Description,
		p.Stock,
		p.SKU,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated product id: %w", err)
	}

	return id, nil
}

// UpdateProduct overwrites every mutable column of one product and refreshes
// updatedAt. It is a full-row update, not a partial patch. Returns
// ErrNotFound when the id matches no row.
func (s *Store) UpdateProduct(ctx context.Context, id int64, p models.Product) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE products SET
			name = ?, price = ?, originalPrice = ?, image = ?,
			rating = ?, reviewCount = ?, isNew = ?, discount = ?,
			category = ?, brand = ?, description = ?, stock = ?,
			sku = ?, updatedAt = CURRENT_TIMESTAMP
		WHERE id = ?`,
		p.Name,
		p.Price,
		p.OriginalPrice,
		p.Image,
		p.Rating,
		p.ReviewCount,
		p.IsNew,
		p.Discount,
		p.Category,
		p.Brand,
		p.Description,
		p.Stock,
		p.SKU,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteProduct removes one product. Returns ErrNotFound when the id matches
// no row. There is no cascade: foreign key enforcement rejects the delete
// while cart or order_items rows still reference the product.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
