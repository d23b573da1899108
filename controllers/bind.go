package controllers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// bindStrictJSON decodes the request body into dst, rejecting unknown fields.
// Patch endpoints use this so a field outside the allowed set (for example
// "status" or "deadline_id" on a submission update) fails instead of being
// silently dropped.
func bindStrictJSON(c *gin.Context, dst interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
