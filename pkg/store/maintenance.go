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
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Backup copies the database file to a timestamped sibling path and returns
// that path. Returns ErrBackupSourceMissing when the file does not exist on
// disk yet. The copy is a plain file copy; with WAL enabled the most recent
// transactions may still live in the -wal file, which is acceptable for the
// admin panel's manual backup button.
func (s *Store) Backup(ctx context.Context) (string, error) {
	if _, err := os.Stat(s.dbPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrBackupSourceMissing
		}

		return "", fmt.Errorf("failed to stat database file: %w", err)
	}

	backupPath := strings.TrimSuffix(s.dbPath, ".db") +
		fmt.Sprintf("-backup-%d.db", time.Now().UnixMilli())

	src, err := os.Open(s.dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}

	defer func() { _ = src.Close() }()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy database file: %w", err)
	}

	zap.S().Infow("Database backed up", "path", backupPath)

	return backupPath, nil
}

// Vacuum rebuilds the database file to reclaim free pages. VACUUM blocks
// all other access while it runs, so this is exposed as a manual admin
// operation only.
func (s *Store) Vacuum(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}

	zap.S().Info("Database vacuum completed")

	return nil
}
