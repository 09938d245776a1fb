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
	"github.com/shophub/storefront/pkg/store"
)

// GET /api/cart?userId=
func (a *API) getCartHandler(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "User ID is required")

		return
	}

	items, err := a.store.GetCartItems(c.Request.Context(), userID)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("GetCartItems").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

type addToCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// POST /api/cart
func (a *API) addToCartHandler(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())

		return
	}

	if req.UserID == 0 || req.ProductID == 0 {
		respondError(c, http.StatusBadRequest, "User ID and Product ID are required")

		return
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	if err := a.store.AddToCart(c.Request.Context(), req.UserID, req.ProductID, req.Quantity); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("AddToCart").Inc()
		respondError(c, http.StatusBadRequest, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    req,
		"message": "Item added to cart successfully",
	})
}

// DELETE /api/cart?userId=&productId=
func (a *API) removeFromCartHandler(c *gin.Context) {
	userID, userErr := strconv.ParseInt(c.Query("userId"), 10, 64)
	productID, productErr := strconv.ParseInt(c.Query("productId"), 10, 64)

	if userErr != nil || productErr != nil {
		respondError(c, http.StatusBadRequest, "User ID and Product ID are required")

		return
	}

	if err := a.store.RemoveFromCart(c.Request.Context(), userID, productID); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("RemoveFromCart").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	// Hand the refreshed cart back so the client does not need a second
	// round trip.
	items, err := a.store.GetCartItems(c.Request.Context(), userID)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("GetCartItems").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"message": "Item removed from cart successfully",
	})
}

type updateCartItemRequest struct {
	Quantity *int64 `json:"quantity"`
}

// PUT /api/cart/:id
func (a *API) updateCartItemHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Cart item ID is required")

		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())

		return
	}

	// Quantity zero is a valid request and clears the line; a missing or
	// negative quantity is not.
	if req.Quantity == nil || *req.Quantity < 0 {
		respondError(c, http.StatusBadRequest, "Valid quantity is required")

		return
	}

	if err := a.store.UpdateCartItem(c.Request.Context(), id, *req.Quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusBadRequest, "Cart item not found")

			return
		}

		metrics.StoreErrorsTotal.WithLabelValues("UpdateCartItem").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart item updated successfully",
	})
}

// DELETE /api/cart/:id
func (a *API) removeCartItemHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Cart item ID is required")

		return
	}

	if err := a.store.RemoveCartItem(c.Request.Context(), id); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("RemoveCartItem").Inc()
		respondError(c, http.StatusInternalServerError, err.Error())

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart item removed successfully",
	})
}
