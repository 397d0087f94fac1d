package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aajna-shetty/DietVeda/internal/config"
	"github.com/aajna-shetty/DietVeda/internal/handler"
	"github.com/aajna-shetty/DietVeda/internal/service"
	"github.com/gin-gonic/gin"
)

const routerTestCatalog = `dish_name,dish_type,ingredients,dosha_suitable_for,avoids_for,season,taste_profile,effect
Moong Dal Khichdi,Lunch,"Moong dal, rice","Kapha, Pitta, Vata",,All,Sweet,Calming
Warm Oat Porridge,Breakfast,"Oats, milk",Vata,,All,Sweet,Grounding
`

func newRouterTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := service.ParseCatalog(strings.NewReader(routerTestCatalog))
	if err != nil {
		t.Fatalf("failed to parse test catalog: %v", err)
	}

	api := handler.NewAPI(nil, catalog, config.AppConfig{})
	return SetupRouter(api, "test-secret")
}

func TestPingRoute(t *testing.T) {
	r := newRouterTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestStatusRoute(t *testing.T) {
	r := newRouterTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if result["status"] != "Online" {
		t.Fatalf("expected Online status, got %v", result["status"])
	}
	if result["dishes"] != float64(2) {
		t.Fatalf("expected 2 dishes, got %v", result["dishes"])
	}
}
