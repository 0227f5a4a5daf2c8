// internal/server/server_test.go
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/mwiater/longctx/internal/view"
)

func ptr(v float64) *float64 { return &v }

func testServer(showAll bool) *Server {
	reg := &catalog.Registry{
		Families: []catalog.Family{
			{Name: "Alpha", Color: "#112233", Models: []string{"a1", "a2"}},
			{Name: "Beta", Color: "#445566", Models: []string{"b1"}},
		},
		TopModels: []string{"a1"},
	}
	ds := dataset.New(
		dataset.DataPoint{Window: 0, Scores: map[string]*float64{"a1": ptr(100), "a2": ptr(100), "b1": ptr(100)}},
		dataset.DataPoint{Window: 4000, Scores: map[string]*float64{"a1": ptr(40), "a2": ptr(80), "b1": nil}},
	)
	ds.Title = "Server Chart"
	return New(view.NewBuilder(reg, ds), nil, showAll)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeChart(t *testing.T, rec *httptest.ResponseRecorder) view.Chart {
	t.Helper()
	var chart view.Chart
	if err := json.Unmarshal(rec.Body.Bytes(), &chart); err != nil {
		t.Fatalf("decode chart: %v\n%s", err, rec.Body.String())
	}
	return chart
}

func lineIDs(chart view.Chart) []string {
	var ids []string
	for _, line := range chart.Lines {
		ids = append(ids, line.Model.ID)
	}
	return ids
}

func TestHealthz(t *testing.T) {
	rec := get(t, testServer(false).Handler(), "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestChartDefaultsToTopModels(t *testing.T) {
	rec := get(t, testServer(false).Handler(), "/api/chart")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	chart := decodeChart(t, rec)
	if diff := cmp.Diff([]string{"a1"}, lineIDs(chart)); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestChartQuery(t *testing.T) {
	h := testServer(false).Handler()

	chart := decodeChart(t, get(t, h, "/api/chart?models=b1,a1&hover=a1"))
	if diff := cmp.Diff([]string{"b1", "a1"}, lineIDs(chart)); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	for _, item := range chart.Legend {
		if item.Dimmed != (item.Model.ID != "a1") {
			t.Fatalf("legend %s dimmed=%v", item.Model.ID, item.Dimmed)
		}
	}

	chart = decodeChart(t, get(t, h, "/api/chart?models="))
	if chart.Status != view.StatusNoSelection {
		t.Fatalf("status = %q want no-selection", chart.Status)
	}

	chart = decodeChart(t, get(t, h, "/api/chart?models=&all=true"))
	if diff := cmp.Diff([]string{"a1", "a2", "b1"}, lineIDs(chart)); diff != "" {
		t.Fatalf("show-all lines mismatch (-want +got):\n%s", diff)
	}
	var legend []string
	for _, item := range chart.Legend {
		legend = append(legend, item.Model.ID)
	}
	if diff := cmp.Diff([]string{"a2", "a1", "b1"}, legend); diff != "" {
		t.Fatalf("show-all legend mismatch (-want +got):\n%s", diff)
	}
}

func TestChartFormats(t *testing.T) {
	h := testServer(true).Handler()

	rec := get(t, h, "/api/chart?format=markdown")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "| 1 | Alpha | a2 | 100.0 | 80.0 |") {
		t.Fatalf("markdown = %d\n%s", rec.Code, rec.Body.String())
	}

	rec = get(t, h, "/api/chart?format=yaml")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "title: Server Chart") {
		t.Fatalf("yaml = %d\n%s", rec.Code, rec.Body.String())
	}

	rec = get(t, h, "/api/chart?format=pdf")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("pdf status = %d want 400", rec.Code)
	}
}

func TestIndex(t *testing.T) {
	rec := get(t, testServer(false).Handler(), "/?models=a1,a2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Server Chart</title>") || !strings.Contains(body, "40.0") {
		t.Fatalf("unexpected index body:\n%s", body)
	}

	if rec := get(t, testServer(false).Handler(), "/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path status = %d want 404", rec.Code)
	}
}

func TestTooltip(t *testing.T) {
	h := testServer(false).Handler()

	rec := get(t, h, "/api/tooltip?window=4000&models=a1,b1,a2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var tip view.Tooltip
	if err := json.Unmarshal(rec.Body.Bytes(), &tip); err != nil {
		t.Fatalf("decode tooltip: %v", err)
	}
	var texts []string
	for _, e := range tip.Entries {
		texts = append(texts, e.Text)
	}
	want := []string{"a2: 80%", "a1: 40%", "b1: N/A"}
	if tip.Label != "Context: 4k" {
		t.Fatalf("label = %q", tip.Label)
	}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Fatalf("tooltip mismatch (-want +got):\n%s", diff)
	}

	if rec := get(t, h, "/api/tooltip?window=abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad window status = %d want 400", rec.Code)
	}
}

func TestListenAndServeShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- testServer(false).ListenAndServe(ctx, addr) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
