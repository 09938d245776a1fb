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

// Common errors returned by the store. Check with errors.Is.

// ErrNotFound indicates a lookup by id or key matched zero rows. It is a
// business outcome, not a failure of the store itself.
var ErrNotFound = &storeError{msg: "not found"}

// ErrBackupSourceMissing indicates Backup was called before the database
// file exists on disk.
var ErrBackupSourceMissing = &storeError{msg: "Database file not found"}

type storeError struct {
	msg string
}

func (e *storeError) Error() string {
	return e.msg
}
