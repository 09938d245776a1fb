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

// Package models holds the entities persisted in the shop database.
// JSON tags match the column names of the on-disk schema, which are also
// the field names of the HTTP API payloads.
package models

import "time"

// Product is one row of the products table. Pointer fields are nullable
// columns and marshal as JSON null when absent.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         *string  `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int64    `json:"reviewCount"`
	IsNew         bool     `json:"isNew"`
	Discount      *int64   `json:"discount"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Description   *string  `json:"description"`
	Stock         int64    `json:"stock"`
	SKU           *string  `json:"sku"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is one row of the users table. The password column is an opaque
// string; this system performs no authentication.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartItem is one cart row joined with its product, the shape returned to
// cart consumers.
type CartItem struct {
	ID        int64     `json:"id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	Product   Product   `json:"product"`
}

// Order is an order header. Line items live in OrderItem.
type Order struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Total           float64   `json:"total"`
	Status          string    `json:"status"`
	ShippingAddress *string   `json:"shippingAddress"`
	PaymentMethod   *string   `json:"paymentMethod"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OrderItem is one line of an order, with the price captured at purchase
// time.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// Category and Brand are lookup rows. Product keeps category/brand as
// denormalized text columns; these tables exist for schema compatibility.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Brand struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Order status values.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)
