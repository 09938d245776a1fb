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
	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

// sampleProducts and sampleUsers are inserted exactly once, when the store
// is initialized against an empty products table.
var sampleProducts = []models.Product{
	{
		Name:          "Wireless Bluetooth Headphones",
		Price:         89.99,
		OriginalPrice: ptr(129.99),
		Image:         ptr("https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop"),
		Rating:        4.5,
		ReviewCount:   128,
		IsNew:         true,
		Discount:      ptr(int64(31)),
		Category:      "Electronics",
		Brand:         "Sony",
		Description:   ptr("High-quality wireless headphones with noise cancellation"),
		Stock:         50,
		SKU:           ptr("SONY-WH-001"),
	},
	{
		Name:        "Smart Fitness Watch",
		Price:       199.99,
		Image:       ptr("https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop"),
		Rating:      4.8,
		ReviewCount: 89,
		Category:    "Electronics",
		Brand:       "Apple",
		Description: ptr("Advanced fitness tracking with heart rate monitor"),
		Stock:       25,
		SKU:         ptr("APPLE-WATCH-001"),
	},
	{
		Name:          "Premium Coffee Maker",
		Price:         149.99,
		OriginalPrice: ptr(199.99),
		Image:         ptr("https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=400&h=400&fit=crop"),
		Rating:        4.3,
		ReviewCount:   67,
		Discount:      ptr(int64(25)),
		Category:      "Home & Garden",
		Brand:         "Breville",
		Description:   ptr("Professional coffee maker for coffee enthusiasts"),
		Stock:         15,
		SKU:           ptr("BREV-COFF-001"),
	},
	{
		Name:        "Running Shoes",
		Price:       79.99,
		Image:       ptr("https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop"),
		Rating:      4.6,
		ReviewCount: 156,
		Category:    "Sports",
		Brand:       "Nike",
		Description: ptr("Lightweight running shoes for maximum comfort"),
		Stock:       100,
		SKU:         ptr("NIKE-RUN-001"),
	},
	{
		Name:          "Gaming Laptop",
		Price:         1299.99,
		OriginalPrice: ptr(1499.99),
		Image:         ptr("https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=400&h=400&fit=crop"),
		Rating:        4.7,
		ReviewCount:   234,
		IsNew:         true,
		Discount:      ptr(int64(13)),
		Category:      "Electronics",
		Brand:         "Dell",
		Description:   ptr("High-performance gaming laptop with RTX graphics"),
		Stock:         10,
		SKU:           ptr("DELL-GAM-001"),
	},
}

var sampleUsers = []models.User{
	{
		Username:  "admin",
		Email:     "admin@shophub.com",
		Password:  "admin123",
		Role:      models.RoleAdmin,
		FirstName: ptr("Admin"),
		LastName:  ptr("User"),
	},
	{
		Username:  "customer",
		Email:     "customer@example.com",
		Password:  "customer123",
		Role:      models.RoleCustomer,
		FirstName: ptr("John"),
		LastName:  ptr("Doe"),
	},
}

func (s *Store) insertSampleData(ctx context.Context) error {
	for _, p := range sampleProducts {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("failed to insert sample product %q: %w", p.Name, err)
		}
	}

	for _, u := range sampleUsers {
		if _, err := s.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("failed to insert sample user %q: %w", u.Username, err)
		}
	}

	zap.S().Infow("Sample data inserted",
		"products", len(sampleProducts),
		"users", len(sampleUsers),
	)

	return nil
}
