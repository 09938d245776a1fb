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
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shophub/storefront/pkg/metrics"
)

// Category and brand lists only change on product writes, so they are
// served from a short-lived cache.
const lookupCacheTTL = time.Minute

// GET /api/categories
func (a *API) getCategoriesHandler(c *gin.Context) {
	a.lookupHandler(c, "categories", a.store.GetCategories)
}

// GET /api/brands
func (a *API) getBrandsHandler(c *gin.Context) {
	a.lookupHandler(c, "brands", a.store.GetBrands)
}

func (a *API) lookupHandler(c *gin.Context, key string, fetch func(context.Context) ([]string, error)) {
	if cached, found := a.lookupCache.Get(key); found {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})

		return
	}

	values, err := fetch(c.Request.Context())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("Get" + key).Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	a.lookupCache.Set(key, values, gocache.DefaultExpiration)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": values})
}
