package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Amaspm/driver-management/internal/domain"
	"github.com/Amaspm/driver-management/internal/lifecycle"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func TestListDrivers(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/drivers/" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Token abc123" {
			t.Errorf("Authorization = %q, want Token abc123", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id_driver": 1, "nama": "Budi", "status": "pending"}]`))
	}))

	drivers, err := c.ListDrivers(context.Background(), Credential{Token: "abc123"})
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	if len(drivers) != 1 || drivers[0].Nama != "Budi" || drivers[0].Status != domain.StatusPending {
		t.Errorf("drivers = %+v", drivers)
	}
}

func TestApplyTransitionPayload(t *testing.T) {
	var body map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/drivers/12/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id_driver": 12, "status": "active"}`))
	}))

	tr, err := lifecycle.Evaluate(domain.StatusPending, lifecycle.Input{DriverID: 12, Target: domain.StatusActive})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	updated, err := c.ApplyTransition(context.Background(), Credential{Token: "t"}, tr)
	if err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if updated.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", updated.Status)
	}

	if got := body["status"]; got != "active" {
		t.Errorf("patched status = %v, want active", got)
	}
	// The reason key must be present and null so a stale rejection reason is
	// cleared by the same PATCH.
	if v, ok := body["alasan_penolakan"]; !ok || v != nil {
		t.Errorf("alasan_penolakan = %v (present=%v), want explicit null", v, ok)
	}
}

func TestDeleteDriverNotFound(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Not found."}`))
	}))

	err := c.DeleteDriver(context.Background(), Credential{Token: "t"}, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteDriverConflictDetailVerbatim(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "Driver masih memiliki armada aktif"}`))
	}))

	err := c.DeleteDriver(context.Background(), Credential{Token: "t"}, 4)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want ConflictError", err)
	}
	if ce.Detail != "Driver masih memiliki armada aktif" {
		t.Errorf("detail = %q, want upstream message verbatim", ce.Detail)
	}
}

func TestUnauthorized(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.ListDrivers(context.Background(), Credential{Token: "expired"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse all connections from here on

	c := New(srv.URL, time.Second, nil)
	_, err := c.ListDrivers(context.Background(), Credential{Token: "t"})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want TransportError", err)
	}
}

func TestAdminLogin(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/admin-login/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry a credential, got %q", got)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "admin" || req["password"] != "rahasia" {
			t.Errorf("body = %v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "opaque-upstream-token"}`))
	}))

	cred, err := c.AdminLogin(context.Background(), "admin", "rahasia")
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if cred.Token != "opaque-upstream-token" {
		t.Errorf("token = %q", cred.Token)
	}
}

func TestMutationsSerializedPerDriver(t *testing.T) {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id_driver": 5, "status": "active"}`))
	}))

	tr := lifecycle.Transition{DriverID: 5, Status: domain.StatusActive}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.ApplyTransition(context.Background(), Credential{Token: "t"}, tr)
		}()
	}
	wg.Wait()

	if maxInFlight != 1 {
		t.Errorf("max concurrent mutations for one driver = %d, want 1", maxInFlight)
	}
}

func TestCheckSync(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_users": 5, "total_drivers": 4,
			"orphaned_users_count": 1,
			"orphaned_users": [{"id": 9, "username": "x", "email": "x@y.z"}],
			"drivers_without_users_count": 0,
			"drivers_without_users": [],
			"is_synchronized": false
		}`))
	}))

	report, err := c.CheckSync(context.Background(), Credential{Token: "t"})
	if err != nil {
		t.Fatalf("CheckSync: %v", err)
	}
	if report.IsSynchronized || report.OrphanedUsersCount != 1 || report.TotalUsers != 5 {
		t.Errorf("report = %+v", report)
	}
}
