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
)

// Category and brand values live denormalized on product rows; the listing
// endpoints read the distinct values from there rather than from the lookup
// tables.

func (s *Store) GetCategories(ctx context.Context) ([]string, error) {
	return s.distinctProductColumn(ctx, "category")
}

func (s *Store) GetBrands(ctx context.Context) ([]string, error) {
	return s.distinctProductColumn(ctx, "brand")
}

func (s *Store) distinctProductColumn(ctx context.Context, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT DISTINCT %s FROM products ORDER BY %s", column, column))
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}

	defer func() { _ = rows.Close() }()

	values := []string{}

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", column, err)
		}

		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return values, nil
}

// GetProductCount returns the total number of product rows.
func (s *Store) GetProductCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
