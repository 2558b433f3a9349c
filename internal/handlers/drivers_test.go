package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amaspm/driver-management/internal/lifecycle"
	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/presence"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/response"
)

type stubFetcher struct{}

func (stubFetcher) FetchOnline(context.Context) (presence.Snapshot, error) {
	return presence.Snapshot{}, nil
}

// newDriversRouter wires the drivers handler against a fake record store,
// with a stand-in for the auth middleware that injects a fixed credential.
func newDriversRouter(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	records := recordstore.New(srv.URL, 5*time.Second, nil)
	poller := presence.NewPoller(stubFetcher{}, time.Hour, nil)
	h := NewDrivers(records, poller, nil, nil, nil, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), middleware.ContextKeyCredential, recordstore.Credential{Token: "admin-token"})
		ctx = context.WithValue(ctx, middleware.ContextKeyActor, "admin")
		c.Request = c.Request.WithContext(ctx)
	})
	r.GET("/drivers", h.List)
	r.GET("/drivers/:id", h.Get)
	r.PATCH("/drivers/:id", h.UpdateStatus)
	r.POST("/drivers/:id/approve", h.Approve)
	r.POST("/drivers/:id/reject", h.Reject)
	r.POST("/drivers/:id/suspend", h.Suspend)
	r.DELETE("/drivers/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Body {
	t.Helper()
	var b response.Body
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return b
}

func driverJSON(id int64, status string) string {
	return `{"id_driver": ` + strconv.FormatInt(id, 10) + `, "nama": "Budi", "status": "` + status + `"}`
}

func TestApprovePendingDriver(t *testing.T) {
	var patched atomic.Value
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/drivers/7/":
			w.Write([]byte(driverJSON(7, "pending")))
		case r.Method == http.MethodPatch && r.URL.Path == "/drivers/7/":
			var body map[string]json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode patch body: %v", err)
			}
			patched.Store(body)
			w.Write([]byte(driverJSON(7, "active")))
		default:
			t.Errorf("unexpected upstream call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	r := newDriversRouter(t, upstream)

	w := doJSON(r, http.MethodPost, "/drivers/7/approve", "")
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d, body %s", w.Code, w.Body.String())
	}

	body, _ := patched.Load().(map[string]json.RawMessage)
	if body == nil {
		t.Fatal("no PATCH reached the record store")
	}
	if got := string(body["status"]); got != `"active"` {
		t.Errorf("patched status = %s, want \"active\"", got)
	}
	// Clearing a stale rejection reason needs the field present and null.
	raw, present := body["alasan_penolakan"]
	if !present {
		t.Error("alasan_penolakan missing from patch payload")
	} else if string(raw) != "null" {
		t.Errorf("alasan_penolakan = %s, want null", raw)
	}
}

func TestTrainingTargetBlockedForActiveDriver(t *testing.T) {
	var patchCalls atomic.Int32
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patchCalls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(driverJSON(3, "active")))
	})
	r := newDriversRouter(t, upstream)

	w := doJSON(r, http.MethodPatch, "/drivers/3", `{"status": "training"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", w.Code, w.Body.String())
	}
	if n := patchCalls.Load(); n != 0 {
		t.Errorf("record store received %d PATCH calls, want none", n)
	}
}

func TestRejectWithoutDocuments(t *testing.T) {
	var patchCalls atomic.Int32
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patchCalls.Add(1)
		}
		w.Write([]byte(driverJSON(5, "pending")))
	})
	r := newDriversRouter(t, upstream)

	w := doJSON(r, http.MethodPost, "/drivers/5/reject", `{"category": "dokumen_tidak_jelas", "documents": []}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", w.Code, w.Body.String())
	}
	if patchCalls.Load() != 0 {
		t.Error("invalid rejection still reached the record store")
	}
}

func TestRejectJoinsLabelsInCanonicalOrder(t *testing.T) {
	var reason atomic.Value
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			var body struct {
				Status string  `json:"status"`
				Reason *string `json:"alasan_penolakan"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode patch body: %v", err)
			}
			if body.Reason != nil {
				reason.Store(*body.Reason)
			}
			w.Write([]byte(driverJSON(9, "rejected")))
			return
		}
		w.Write([]byte(driverJSON(9, "pending")))
	})
	r := newDriversRouter(t, upstream)

	// Selection order sim-before-ktp must not leak into the reason.
	w := doJSON(r, http.MethodPost, "/drivers/9/reject",
		`{"category": "dokumen_tidak_jelas", "documents": ["sim", "ktp", "sim"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("reject status = %d, body %s", w.Code, w.Body.String())
	}
	want := lifecycle.UnclearDocumentsPrefix + "KTP, SIM"
	if got, _ := reason.Load().(string); got != want {
		t.Errorf("stored reason = %q, want %q", got, want)
	}
}

func TestDeleteConflictDetailPassedThrough(t *testing.T) {
	const detail = "driver is referenced by 3 completed orders"
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": detail})
	})
	r := newDriversRouter(t, upstream)

	w := doJSON(r, http.MethodDelete, "/drivers/4", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != detail {
		t.Errorf("message = %q, want the store's detail verbatim", env.Message)
	}
}

func TestListReportsOfflineWithoutSnapshot(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[` + driverJSON(1, "active") + `]`))
	})
	r := newDriversRouter(t, upstream)

	w := doJSON(r, http.MethodGet, "/drivers", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var drivers []struct {
		IDDriver int64 `json:"id_driver"`
		Online   bool  `json:"online"`
	}
	raw, _ := json.Marshal(env.Data)
	if err := json.Unmarshal(raw, &drivers); err != nil {
		t.Fatalf("decode drivers: %v", err)
	}
	if len(drivers) != 1 || drivers[0].Online {
		t.Errorf("drivers = %+v, want one offline driver", drivers)
	}
}

func TestUpstreamUnauthorizedSurfacesAs401(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r := newDriversRouter(t, upstream)

	w := doJSON(r, http.MethodGet, "/drivers", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
