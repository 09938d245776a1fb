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

// Package api is the HTTP layer of the storefront. Each handler coerces and
// validates its input, calls exactly one store operation and maps the result
// onto a {success, data|error} JSON body. No business rules live here.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shophub/storefront/pkg/store"
	"go.uber.org/zap"
)

// API carries the dependencies shared by all handlers: the store handle
// injected at startup and a small TTL cache for the lookup endpoints.
type API struct {
	store       *store.Store
	lookupCache *gocache.Cache
}

func New(s *store.Store) *API {
	return &API{
		store:       s,
		lookupCache: gocache.New(lookupCacheTTL, 10*time.Minute),
	}
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	a := New(s)

	router := gin.New()

	// Request log and panic recovery through zap, like the rest of the
	// process logging.
	router.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(zap.L(), true))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(requestID())
	router.Use(measureRequests())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "online")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/products", a.getProductsHandler)
		apiGroup.POST("/products", a.createProductHandler)
		apiGroup.GET("/products/:id", a.getProductHandler)
		apiGroup.PUT("/products/:id", a.updateProductHandler)
		apiGroup.DELETE("/products/:id", a.deleteProductHandler)

		apiGroup.GET("/cart", a.getCartHandler)
		apiGroup.POST("/cart", a.addToCartHandler)
		apiGroup.DELETE("/cart", a.removeFromCartHandler)
		apiGroup.PUT("/cart/:id", a.updateCartItemHandler)
		apiGroup.DELETE("/cart/:id", a.removeCartItemHandler)

		apiGroup.GET("/categories", a.getCategoriesHandler)
		apiGroup.GET("/brands", a.getBrandsHandler)

		apiGroup.POST("/admin/backup", a.backupHandler)
		apiGroup.POST("/admin/optimize", a.optimizeHandler)
	}

	return router
}
