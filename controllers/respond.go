package controllers

import (
	"errors"
	"net/http"

	"deadline-management-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into the response envelope.
// fallback is the message used for unexpected (500) failures so internal
// details are still surfaced alongside a stable summary.
func respondServiceError(c *gin.Context, err error, fallback string) {
	status := services.HTTPStatusFromError(err)

	var dpe *services.DeadlinePassedError
	if errors.As(err, &dpe) {
		c.JSON(status, gin.H{
			"success":       false,
			"error":         "Submission deadline has passed. Late submissions are not accepted.",
			"deadline_info": dpe,
		})
		return
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"success": false, "error": fallback + ": " + err.Error()})
		return
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
