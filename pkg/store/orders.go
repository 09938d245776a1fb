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
	"fmt"

	"github.com/shophub/storefront/pkg/models"
)

// Orders support creation and a narrow status update only. The header and
// its line items are written in one transaction so a failed item insert
// never leaves a dangling order.

func (s *Store) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	status := order.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO orders (userId, total, status, shippingAddress, paymentMethod)
		VALUES (?, ?, ?, ?, ?)`,
		order.UserID,
		order.Total,
		status,
		order.ShippingAddress,
		order.PaymentMethod,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated order id: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (orderId, productId, quantity, price) VALUES (?, ?, ?, ?)",
			orderID,
			item.ProductID,
			item.Quantity,
			item.Price,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return orderID, nil
}

// UpdateOrderStatus sets the status of one order and refreshes updatedAt.
// Returns ErrNotFound when the id matches no row.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updatedAt = CURRENT_TIMESTAMP WHERE id = ?",
		status, orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
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
