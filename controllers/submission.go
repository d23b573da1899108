// controllers/submission.go
package controllers

import (
	"net/http"
	"strconv"

	"deadline-management-api/services"
	"deadline-management-api/utils"

	"github.com/gin-gonic/gin"
)

// ===== SUBMISSION CONTROLLERS =====

type CreateSubmissionRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	DeadlineID int    `json:"deadline_id" binding:"required"`
}

// CreateSubmission - submit for a deadline (one per user per deadline)
func CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	svc := services.NewSubmissionService(nil)
	submission, err := svc.Create(c.Request.Context(),
		utils.SanitizeInput(req.Title),
		utils.SanitizeInput(req.Content),
		req.DeadlineID,
		userID.(int),
	)
	if err != nil {
		respondServiceError(c, err, "Failed to create submission")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Submission created successfully",
		"data":    submission,
	})
}

// GetAllSubmissions - every submission, newest first (Admin only)
func GetAllSubmissions(c *gin.Context) {
	svc := services.NewSubmissionService(nil)
	submissions, err := svc.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(submissions),
		"data":    submissions,
	})
}

// GetSubmissionsByDeadline - submissions for one deadline (Admin only)
func GetSubmissionsByDeadline(c *gin.Context) {
	deadlineID, err := strconv.Atoi(c.Param("deadlineId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline ID"})
		return
	}

	svc := services.NewSubmissionService(nil)
	submissions, err := svc.ListByDeadline(c.Request.Context(), deadlineID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(submissions),
		"data":    submissions,
	})
}

// GetMySubmissions - submissions owned by the caller
func GetMySubmissions(c *gin.Context) {
	userID, _ := c.Get("userID")

	svc := services.NewSubmissionService(nil)
	submissions, err := svc.ListMine(c.Request.Context(), userID.(int))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch your submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(submissions),
		"data":    submissions,
	})
}

// GetSubmission - single submission; owners see their own, admins see all
func GetSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid submission ID"})
		return
	}

	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	svc := services.NewSubmissionService(nil)
	submission, err := svc.GetByID(c.Request.Context(), id, userID.(int), roleID.(int))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    submission,
	})
}

// UpdateSubmission - owner-only, and only before the deadline cutoff
func UpdateSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid submission ID"})
		return
	}

	var patch services.SubmissionUpdate
	if err := bindStrictJSON(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	svc := services.NewSubmissionService(nil)
	submission, err := svc.Update(c.Request.Context(), id, patch, userID.(int))
	if err != nil {
		respondServiceError(c, err, "Failed to update submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission updated successfully",
		"data":    submission,
	})
}

// DeleteSubmission - owner-only, and only before the deadline cutoff
func DeleteSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid submission ID"})
		return
	}

	userID, _ := c.Get("userID")

	svc := services.NewSubmissionService(nil)
	if err := svc.Delete(c.Request.Context(), id, userID.(int)); err != nil {
		respondServiceError(c, err, "Failed to delete submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission deleted successfully",
		"data":    gin.H{},
	})
}

// GetSubmissionStats - total / on-time / late counts for a deadline (Admin only)
func GetSubmissionStats(c *gin.Context) {
	deadlineID, err := strconv.Atoi(c.Param("deadlineId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid deadline ID"})
		return
	}

	svc := services.NewSubmissionService(nil)
	stats, err := svc.Stats(c.Request.Context(), deadlineID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch submission statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
