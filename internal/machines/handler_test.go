package machines_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/bootstrap"
	"planner-backend/internal/shared/config"
)

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type machineBody struct {
	MachineID   string `json:"machineId"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	Status      string `json:"status"`
	FuturePlans []struct {
		ID        string `json:"id"`
		Kind      string `json:"kind"`
		Days      int    `json:"days"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"futurePlans"`
}

func decodeMachine(t *testing.T, resp *httptest.ResponseRecorder) machineBody {
	t.Helper()
	var m machineBody
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode machine response: %v", err)
	}
	return m
}

func TestMachineCreateAddPlanAndMove(t *testing.T) {
	router := buildRouter(t)

	// Create a machine.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/machines", map[string]any{
		"name":      "K-01",
		"class":     "single",
		"dailyRate": 150,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	created := decodeMachine(t, resp)
	if created.MachineID == "" {
		t.Fatalf("expected machineId, got empty")
	}
	if created.Status != "NO_ORDER" {
		t.Fatalf("expected default status NO_ORDER, got %s", created.Status)
	}

	// Add two plans.
	for _, plan := range []map[string]any{
		{"fabric": "interlock", "client": "acme", "quantity": 300, "dailyRate": 100},
		{"fabric": "interlock", "client": "acme", "quantity": 500, "dailyRate": 100},
	} {
		resp = doJSON(t, router, http.MethodPost, "/api/v1/machines/"+created.MachineID+"/plans", plan)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
		}
	}
	withPlans := decodeMachine(t, resp)
	if len(withPlans.FuturePlans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(withPlans.FuturePlans))
	}
	first, second := withPlans.FuturePlans[0], withPlans.FuturePlans[1]
	if second.StartDate != first.EndDate {
		t.Fatalf("expected contiguous schedule, got %s then %s", first.EndDate, second.StartDate)
	}

	// Move the second plan up.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/machines/"+created.MachineID+"/plans/1/move", map[string]any{
		"direction": "up",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	moved := decodeMachine(t, resp)
	if moved.FuturePlans[0].ID != second.ID {
		t.Fatalf("expected %s first after move, got %s", second.ID, moved.FuturePlans[0].ID)
	}
}

func TestMachineValidationAndNotFound(t *testing.T) {
	router := buildRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/machines", map[string]any{"name": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/machines/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/machines/missing/plans/abc/move", map[string]any{"direction": "up"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad index, got %d", resp.Code)
	}
}
