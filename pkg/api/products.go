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
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shophub/storefront/pkg/metrics"
	"github.com/shophub/storefront/pkg/models"
	"github.com/shophub/storefront/pkg/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type pagination struct {
	Page          int   `json:"page"`
	Limit         int   `json:"limit"`
	TotalProducts int64 `json:"totalProducts"`
	TotalPages    int64 `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// GET /api/products
func (a *API) getProductsHandler(c *gin.Context) {
	filters := store.ProductFilters{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		SortBy:   c.Query("sortBy"),
		Page:     intQuery(c, "page", defaultPage),
		Limit:    intQuery(c, "limit", defaultLimit),
	}
	filters.MinPrice, _ = strconv.ParseFloat(c.Query("minPrice"), 64)
	filters.MaxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)
	filters.Rating, _ = strconv.ParseFloat(c.Query("rating"), 64)

	products, err := a.store.GetProducts(c.Request.Context(), filters)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("GetProducts").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	// The page query caps the rows it returns, so the total has to come
	// from a separate count over the same predicate.
	total, err := a.store.CountProducts(c.Request.Context(), filters)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("CountProducts").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	totalPages := (total + int64(filters.Limit) - 1) / int64(filters.Limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"pagination": pagination{
			Page:          filters.Page,
			Limit:         filters.Limit,
			TotalProducts: total,
			TotalPages:    totalPages,
			HasNext:       int64(filters.Page) < totalPages,
			HasPrev:       filters.Page > 1,
		},
	})
}

type productRequest struct {
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
}

func (r productRequest) toModel() models.Product {
	return models.Product{
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		IsNew:         r.IsNew,
		Discount:      r.Discount,
		Category:      r.Category,
		Brand:         r.Brand,
		Description:   r.Description,
		Stock:         r.Stock,
		SKU:           r.SKU,
	}
}

// missingField reports the first required field that is absent, in the
// order the contract promises its error messages.
func (r productRequest) missingField() (string, bool) {
	switch {
	case r.Name == "":
		return "name", true
	case r.Price == 0:
		return "price", true
	case r.Category == "":
		return "category", true
	case r.Brand == "":
		return "brand", true
	default:
		return "", false
	}
}

// POST /api/products
func (a *API) createProductHandler(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())

		return
	}

	if field, missing := req.missingField(); missing {
		respondError(c, http.StatusBadRequest, "Missing required field: "+field)

		return
	}

	id, err := a.store.CreateProduct(c.Request.Context(), req.toModel())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("CreateProduct").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	created, err := a.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("GetProduct").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Product created successfully",
	})
}

// GET /api/products/:id
func (a *API) getProductHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Product ID is required")

		return
	}

	product, err := a.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")

			return
		}

		metrics.StoreErrorsTotal.WithLabelValues("GetProduct").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// PUT /api/products/:id
func (a *API) updateProductHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Product ID is required")

		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())

		return
	}

	if err := a.store.UpdateProduct(c.Request.Context(), id, req.toModel()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusBadRequest, "Product not found")

			return
		}

		metrics.StoreErrorsTotal.WithLabelValues("UpdateProduct").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	updated, err := a.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("GetProduct").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Product updated successfully",
	})
}

// DELETE /api/products/:id
func (a *API) deleteProductHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Product ID is required")

		return
	}

	if err := a.store.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusBadRequest, "Product not found")

			return
		}

		metrics.StoreErrorsTotal.WithLabelValues("DeleteProduct").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func intQuery(c *gin.Context, name string, defaultValue int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return defaultValue
	}

	return v
}
