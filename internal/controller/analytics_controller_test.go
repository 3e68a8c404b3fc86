package controller

import (
	"book_quiz_backend/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBatchQuestionStatsInvalidIDsTopLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewAnalyticsController(nil, nil, &config.AnalyticsConfig{})

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	body := `{"questionIds":["000000000000000000000001","not-an-id"]}`
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/analytics/questions/stats", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	c.BatchQuestionStats(ctx)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}

	var resp struct {
		Success    bool     `json:"success"`
		Error      string   `json:"error"`
		InvalidIDs []string `json:"invalidIds"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("resp = %+v, want success=false with error message", resp)
	}
	// invalidIds 与 error 平级，不嵌在 data 里
	if len(resp.InvalidIDs) != 1 || resp.InvalidIDs[0] != "not-an-id" {
		t.Errorf("invalidIds = %v, want [not-an-id]", resp.InvalidIDs)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode raw body: %v", err)
	}
	if _, ok := raw["data"]; ok {
		t.Errorf("validation failure payload carries a data field")
	}
}
