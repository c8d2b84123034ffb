package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/basilogast/portfolio-server/internal/db"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// tableParam validates the :table path segment against the allow-list and
// responds with 400 when it is unknown. No query is built from a table name
// that fails this check.
func tableParam(c *gin.Context) (db.Table, bool) {
	table, err := db.ParseTable(c.Param("table"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid table specified")
		return "", false
	}
	return table, true
}

// idParam parses the :id path segment as an integer.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return id, true
}

// parseTextPara decodes the serialized paragraph list. Malformed input or a
// non-array payload falls back to an empty list instead of failing the
// request, mirroring what the frontend has always relied on.
func parseTextPara(raw string) db.StringList {
	var paras db.StringList
	if err := json.Unmarshal([]byte(raw), &paras); err != nil || paras == nil {
		return db.StringList{}
	}
	return paras
}
