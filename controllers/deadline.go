package controllers

import (
	"net/http"
	"strconv"
	"time"

	"deadline-management-api/services"
	"deadline-management-api/utils"

	"github.com/gin-gonic/gin"
)

// ===== DEADLINE CONTROLLERS =====

type CreateDeadlineRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// CreateDeadline - create a new deadline (Admin only)
func CreateDeadline(c *gin.Context) {
	var req CreateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	svc := services.NewDeadlineService(nil)
	deadline, err := svc.Create(c.Request.Context(),
		utils.SanitizeInput(req.Title),
		utils.SanitizeInput(req.Description),
		req.Deadline,
		userID.(int),
	)
	if err != nil {
		respondServiceError(c, err, "Failed to create deadline")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Deadline created successfully",
		"data":    deadline,
	})
}

// GetDeadlines - all deadlines, newest first
func GetDeadlines(c *gin.Context) {
	svc := services.NewDeadlineService(nil)
	deadlines, err := svc.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch deadlines")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(deadlines),
		"data":    deadlines,
	})
}

// GetActiveDeadlines - deadlines still open for submissions, soonest first
func GetActiveDeadlines(c *gin.Context) {
	svc := services.NewDeadlineService(nil)
	deadlines, err := svc.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch active deadlines")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(deadlines),
		"data":    deadlines,
	})
}

// GetDeadline - single deadline by ID
func GetDeadline(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline ID"})
		return
	}

	svc := services.NewDeadlineService(nil)
	deadline, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch deadline")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    deadline,
	})
}

// UpdateDeadline - partial update (Admin only)
func UpdateDeadline(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline ID"})
		return
	}

	var patch services.DeadlineUpdate
	if err := bindStrictJSON(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	svc := services.NewDeadlineService(nil)
	deadline, err := svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondServiceError(c, err, "Failed to update deadline")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deadline updated successfully",
		"data":    deadline,
	})
}

// DeleteDeadline - remove a deadline (Admin only). Existing submissions stay.
func DeleteDeadline(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline ID"})
		return
	}

	svc := services.NewDeadlineService(nil)
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete deadline")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deadline deleted successfully",
		"data":    gin.H{},
	})
}

// ToggleDeadlineStatus - flip is_active (Admin only)
func ToggleDeadlineStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline ID"})
		return
	}

	svc := services.NewDeadlineService(nil)
	deadline, err := svc.ToggleActive(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to toggle deadline status")
		return
	}

	message := "Deadline deactivated successfully"
	if deadline.IsActive {
		message = "Deadline activated successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    deadline,
	})
}
