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

// GetCartItems returns the cart of one user, newest line first, with each
// line carrying its full product.
func (s *Store) GetCartItems(ctx context.Context, userID int64) ([]models.CartItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT
			c.id, c.quantity, c.createdAt,
			p.id, p.name, p.price, p.originalPrice, p.image, p.rating, p.reviewCount,
			p.isNew, p.discount, p.category, p.brand, p.description, p.stock, p.sku,
			p.createdAt, p.updatedAt
		FROM cart c
		JOIN products p ON c.productId = p.id
		WHERE c.userId = ?
		ORDER BY c.createdAt DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}

	defer func() { _ = rows.Close() }()

	items := []models.CartItem{}

	for rows.Next() {
		var item models.CartItem

		err := rows.Scan(
			&item.ID,
			&item.Quantity,
			&item.CreatedAt,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Price,
			&item.Product.OriginalPrice,
			&item.Product.Image,
			&item.Product.Rating,
			&item.Product.ReviewCount,
			&item.Product.IsNew,
			&item.Product.Discount,
			&item.Product.Category,
			&item.Product.Brand,
			&item.Product.Description,
			&item.Product.Stock,
			&item.Product.SKU,
			&item.Product.CreatedAt,
			&item.Product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// AddToCart increments the quantity of an existing (user, product) line or
// inserts a new one. The read and the write run in one transaction so
// concurrent adds for the same pair cannot both insert; the cart table
// carries no UNIQUE(userId, productId) constraint, the transaction is what
// upholds the one-line-per-pair invariant.
func (s *Store) AddToCart(ctx context.Context, userID, productID, quantity int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	var existingID int64

	err = tx.QueryRowContext(ctx,
		"SELECT id FROM cart WHERE userId = ? AND productId = ?",
		userID, productID,
	).Scan(&existingID)

	switch {
	case err == nil:
		_, err = tx.ExecContext(ctx,
			"UPDATE cart SET quantity = quantity + ? WHERE id = ?",
			quantity, existingID,
		)
		if err != nil {
			return fmt.Errorf("failed to update cart quantity: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			"INSERT INTO cart (userId, productId, quantity) VALUES (?, ?, ?)",
			userID, productID, quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cart item: %w", err)
		}
	default:
		return fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart transaction: %w", err)
	}

	return nil
}

// UpdateCartItem sets the quantity of one cart line directly (not additive).
// A quantity of zero or less deletes the line; clearing via zero is
// intentional semantics, not an error. Returns ErrNotFound when a positive
// quantity targets a line that does not exist.
func (s *Store) UpdateCartItem(ctx context.Context, cartItemID, quantity int64) error {
	if quantity <= 0 {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM cart WHERE id = ?", cartItemID); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}

		return nil
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE cart SET quantity = ? WHERE id = ?",
		quantity, cartItemID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
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

// RemoveCartItem deletes one cart line by id. The delete is idempotent:
// removing a line that does not exist is still a nil error.
func (s *Store) RemoveCartItem(ctx context.Context, cartItemID int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cart WHERE id = ?", cartItemID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}

// RemoveFromCart deletes the line of one (user, product) pair. Idempotent
// like RemoveCartItem.
func (s *Store) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM cart WHERE userId = ? AND productId = ?",
		userID, productID,
	); err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	return nil
}

// ClearCart empties a user's cart.
func (s *Store) ClearCart(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cart WHERE userId = ?", userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
