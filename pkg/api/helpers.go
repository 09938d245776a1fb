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
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// All responses share the {success, ...} envelope. Error strings from the
// store pass through verbatim; the UI displays them as-is.

func respondError(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		zap.S().Errorw("Request failed",
			"route", c.FullPath(),
			"status", status,
			"error", msg,
		)
	} else {
		zap.S().Debugw("Request rejected",
			"route", c.FullPath(),
			"status", status,
			"error", msg,
		)
	}

	c.JSON(status, gin.H{"success": false, "error": msg})
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
