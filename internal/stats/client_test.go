package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchGlobal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/all" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"updated": 1700000000000,
			"cases": 704753890,
			"todayCases": 1204,
			"deaths": 7010681,
			"recovered": 675619811,
			"active": 22123398,
			"critical": 34794,
			"tests": 7019712313,
			"affectedCountries": 231
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	res := client.FetchGlobal(context.Background())
	if !res.Found() {
		t.Fatalf("FetchGlobal() not Found: message=%q err=%v", res.Message, res.Err)
	}
	rec := res.Record
	if rec.Cases != 704753890 {
		t.Errorf("Cases = %d, want 704753890", rec.Cases)
	}
	if rec.AffectedCountries != 231 {
		t.Errorf("AffectedCountries = %d, want 231", rec.AffectedCountries)
	}
	if rec.Updated != 1700000000000 {
		t.Errorf("Updated = %d, want 1700000000000", rec.Updated)
	}
	if rec.UpdatedMillis() != "1700000000000" {
		t.Errorf("UpdatedMillis() = %q", rec.UpdatedMillis())
	}
}

func TestFetchCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/countries/singapore" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"updated": 1700000000000,
			"country": "Singapore",
			"cases": 2537181,
			"todayCases": 0,
			"deaths": 1727,
			"todayDeaths": 0,
			"recovered": 2521549,
			"active": 13905,
			"critical": 5
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	res := client.FetchCountry(context.Background(), "singapore")
	if !res.Found() {
		t.Fatalf("FetchCountry() not Found: message=%q err=%v", res.Message, res.Err)
	}
	if res.Record.Country != "Singapore" {
		t.Errorf("Country = %q, want Singapore", res.Record.Country)
	}
	if res.Record.Critical != 5 {
		t.Errorf("Critical = %d, want 5", res.Record.Critical)
	}
}

func TestFetchCountryEscapesPathSegment(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"updated": 1, "country": "S. Korea", "cases": 34571873}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	res := client.FetchCountry(context.Background(), "s. korea")
	if !res.Found() {
		t.Fatalf("FetchCountry() not Found: message=%q err=%v", res.Message, res.Err)
	}
	if gotPath != "/countries/s.%20korea" {
		t.Errorf("request path = %q, want escaped segment", gotPath)
	}
}

func TestFetchCountryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Country not found or doesn't have any cases"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	res := client.FetchCountry(context.Background(), "atlantis")
	if !res.NotFound() {
		t.Fatalf("result should be NotFound, got record=%v err=%v", res.Record, res.Err)
	}
	if res.Message != "Country not found or doesn't have any cases" {
		t.Errorf("Message = %q, want provider message verbatim", res.Message)
	}
}

func TestFetchTransientErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"garbage body", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>502</html>"))
		}},
		{"empty error payload", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, time.Second)
			res := client.FetchGlobal(context.Background())
			if !res.Failed() {
				t.Fatalf("result should be Failed, got record=%v message=%q", res.Record, res.Message)
			}
		})
	}
}

func TestFetchNetworkError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond)
	res := client.FetchGlobal(context.Background())
	if !res.Failed() {
		t.Fatal("result should be Failed on connection refusal")
	}
}
