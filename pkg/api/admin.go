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

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shophub/storefront/pkg/metrics"
)

// POST /api/admin/backup
func (a *API) backupHandler(c *gin.Context) {
	backupPath, err := a.store.Backup(c.Request.Context())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("Backup").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Database backup completed successfully",
		"backupPath": backupPath,
	})
}

// POST /api/admin/optimize
func (a *API) optimizeHandler(c *gin.Context) {
	if err := a.store.Vacuum(c.Request.Context()); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("Vacuum").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database optimization completed successfully",
	})
}
