package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Patch bodies carrying fields outside the allowed set must be rejected, not
// silently dropped. The bind fails before any service call, so no database is
// needed here.
func TestUpdateSubmissionRejectsUnknownPatchFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", 7)
		c.Next()
	})
	router.PUT("/api/submissions/:id", UpdateSubmission)

	body := `{"title":"Revised","status":"late","deadline_id":99}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/submissions/11", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown patch fields, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown field") {
		t.Fatalf("expected unknown field error, got %s", w.Body.String())
	}
}

func TestUpdateDeadlineRejectsUnknownPatchFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/deadlines/:id", UpdateDeadline)

	body := `{"title":"Q3 report","created_by":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/deadlines/4", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown patch fields, got %d", w.Code)
	}
}
