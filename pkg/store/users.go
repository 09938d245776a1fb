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

// GetUserByEmail looks up one user by email. Returns ErrNotFound when no
// row matches.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, role, firstName, lastName, createdAt, updatedAt
		FROM users WHERE email = ?`,
		email,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.FirstName,
		&u.LastName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}

		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// CreateUser inserts a user and returns the generated id. An empty role
// defaults to customer. Username and email uniqueness are enforced by the
// database constraints; their errors surface verbatim.
func (s *Store) CreateUser(ctx context.Context, u models.User) (int64, error) {
	role := u.Role
	if role == "" {
		role = models.RoleCustomer
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password, role, firstName, lastName)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Username,
		u.Email,
		u.Password,
		role,
		u.FirstName,
		u.LastName,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated user id: %w", err)
	}

	return id, nil
}
