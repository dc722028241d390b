// README: Handler tests for the quote endpoint.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rentbus/internal/http/handlers"
	"rentbus/internal/modules/pricing"
)

// buildQuoteRouter wires a minimal Gin engine around the quote handler.
// pricing.NewService(nil) is safe here because no quote log is configured.
func buildQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewQuoteHandler(pricing.NewService(nil))
	r.POST("/api/quotes", h.Create)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validQuoteBody() map[string]any {
	return map[string]any{
		"service":    "city_tour",
		"passengers": "10",
		"date":       "2030-06-12", // far-future Wednesday, no last-minute fee
		"time":       "11:00",
		"pickup":     "Grand Place",
		"dropoff":    "Atomium",
	}
}

func TestQuoteCreate(t *testing.T) {
	r := buildQuoteRouter()
	w := doRequest(r, http.MethodPost, "/api/quotes", validQuoteBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Breakdown struct {
			Total struct {
				Amount int64 `json:"amount"`
			} `json:"total"`
		} `json:"breakdown"`
		Lines []struct {
			Label  string `json:"label"`
			Amount string `json:"amount"`
		} `json:"lines"`
		PerPerson string `json:"per_person"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// city tour €80 + distance €15 + 6 extra passengers €30 = €125
	if resp.Breakdown.Total.Amount != 12500 {
		t.Fatalf("total = %d, want 12500", resp.Breakdown.Total.Amount)
	}
	if resp.PerPerson != "€12.50" {
		t.Fatalf("per person = %q", resp.PerPerson)
	}
	if first := resp.Lines[0].Label; first != "Base Price" {
		t.Fatalf("first line = %q", first)
	}
	if last := resp.Lines[len(resp.Lines)-1].Label; last != "Total Price" {
		t.Fatalf("last line = %q", last)
	}
	// Peak, weekend and last-minute do not apply; only 4 rows remain.
	if len(resp.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %+v", len(resp.Lines), resp.Lines)
	}
}

func TestQuoteCreateFrenchLabels(t *testing.T) {
	r := buildQuoteRouter()
	w := doRequest(r, http.MethodPost, "/api/quotes?lang=fr", validQuoteBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Lines []struct {
			Label string `json:"label"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Lines[0].Label != "Prix de Base" {
		t.Fatalf("first line = %q", resp.Lines[0].Label)
	}
}

func TestQuoteCreateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing service", func(b map[string]any) { b["service"] = "" }},
		{"missing date", func(b map[string]any) { b["date"] = "" }},
		{"bad date format", func(b map[string]any) { b["date"] = "12/06/2030" }},
		{"bad time format", func(b map[string]any) { b["time"] = "25:99" }},
		{"non-numeric passengers", func(b map[string]any) { b["passengers"] = "many" }},
		{"zero passengers", func(b map[string]any) { b["passengers"] = "0" }},
		{"over capacity", func(b map[string]any) { b["passengers"] = "61" }},
	}

	r := buildQuoteRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validQuoteBody()
			tt.mutate(body)
			w := doRequest(r, http.MethodPost, "/api/quotes", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestQuoteCreateInvalidJSON(t *testing.T) {
	r := buildQuoteRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
