package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"skylight/internal/core"
	"skylight/internal/features/gallery/models"
)

func testSourceConfig(source, serverURL string) *SourceConfig {
	return &SourceConfig{
		Source:      source,
		FeedURL:     serverURL,
		APODBaseURL: serverURL,
		APODAPIKey:  "TEST_KEY",
		APODThumbs:  true,
		Timeout:     5 * time.Second,
		UserAgent:   "Skylight Test/1.0",
	}
}

func TestReconcileWorkedExample(t *testing.T) {
	reconciler := NewReconciler(core.NewLogger())

	window, err := models.WindowFromDate("2021-06-20")
	if err != nil {
		t.Fatalf("Failed to build window: %v", err)
	}

	entries := []models.Entry{
		{Date: "2021-06-20", Title: "In range"},
		{Date: "2021-06-22", Title: "Also in range"},
		{Date: "2021-07-01", Title: "Past the window"},
	}

	matched := reconciler.Reconcile(window, entries)

	if len(matched) != 2 {
		t.Fatalf("Expected 2 matched entries, got %d", len(matched))
	}
	if matched[0].Date != "2021-06-20" {
		t.Errorf("Expected first match on 2021-06-20, got %s", matched[0].Date)
	}
	if matched[1].Date != "2021-06-22" {
		t.Errorf("Expected second match on 2021-06-22, got %s", matched[1].Date)
	}
}

func TestReconcileKeepsWindowOrder(t *testing.T) {
	reconciler := NewReconciler(core.NewLogger())

	window, err := models.WindowFromDate("2021-06-20")
	if err != nil {
		t.Fatalf("Failed to build window: %v", err)
	}

	// Entries arrive shuffled; the projection follows the window's days
	entries := []models.Entry{
		{Date: "2021-06-25", Title: "C"},
		{Date: "2021-06-20", Title: "A"},
		{Date: "2021-06-22", Title: "B"},
	}

	matched := reconciler.Reconcile(window, entries)

	if len(matched) != 3 {
		t.Fatalf("Expected 3 matched entries, got %d", len(matched))
	}
	for i := 1; i < len(matched); i++ {
		if matched[i-1].Date >= matched[i].Date {
			t.Errorf("Expected ascending dates, got %s before %s", matched[i-1].Date, matched[i].Date)
		}
	}
}

func TestReconcileLastEntryWinsOnDuplicates(t *testing.T) {
	reconciler := NewReconciler(core.NewLogger())

	window, err := models.WindowFromDate("2021-06-20")
	if err != nil {
		t.Fatalf("Failed to build window: %v", err)
	}

	entries := []models.Entry{
		{Date: "2021-06-21", Title: "First version"},
		{Date: "2021-06-21", Title: "Second version"},
	}

	matched := reconciler.Reconcile(window, entries)

	if len(matched) != 1 {
		t.Fatalf("Expected 1 matched entry, got %d", len(matched))
	}
	if matched[0].Title != "Second version" {
		t.Errorf("Expected the later entry to win, got %s", matched[0].Title)
	}
}

func TestReconcileEmptyEntries(t *testing.T) {
	reconciler := NewReconciler(core.NewLogger())

	window, err := models.WindowFromDate("2021-06-20")
	if err != nil {
		t.Fatalf("Failed to build window: %v", err)
	}

	matched := reconciler.Reconcile(window, nil)
	if len(matched) != 0 {
		t.Errorf("Expected no matches for an empty feed, got %d", len(matched))
	}
}

func TestReconcileNeverExceedsWindowSize(t *testing.T) {
	reconciler := NewReconciler(core.NewLogger())

	window, err := models.WindowFromDate("2021-06-10")
	if err != nil {
		t.Fatalf("Failed to build window: %v", err)
	}

	// A feed covering the whole month still yields one entry per window day
	entries := make([]models.Entry, 0, 30)
	for day := 1; day <= 30; day++ {
		entries = append(entries, models.Entry{Date: fmt.Sprintf("2021-06-%02d", day)})
	}

	matched := reconciler.Reconcile(window, entries)

	if len(matched) != models.WindowSize {
		t.Errorf("Expected %d matched entries, got %d", models.WindowSize, len(matched))
	}
}

func TestLoaderAcceptsAndNormalizesEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date": "2021-06-20", "title": "A", "url": "https://example.com/a.jpg", "media_type": "image"},
			{"date": "garbage", "title": "B", "url": "https://example.com/b.jpg", "media_type": "image"},
			{"date": "2021-06-21T09:00:00Z", "title": "C", "url": "https://example.com/c.jpg", "media_type": "image"}
		]`))
	}))
	defer server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceFeed, server.URL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	loader := NewLoader(source, logger, core.NewMetrics())

	window, _ := models.WindowFromDate("2021-06-20")
	entries, ok := loader.Load(context.Background(), window)

	if !ok {
		t.Fatal("Expected the load to succeed")
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 accepted entries, got %d", len(entries))
	}
	if entries[0].Date != "2021-06-20" {
		t.Errorf("Expected first entry on 2021-06-20, got %s", entries[0].Date)
	}
	if entries[1].Date != "2021-06-21" {
		t.Errorf("Expected timestamp date to normalize to 2021-06-21, got %s", entries[1].Date)
	}
}

func TestLoaderDegradesToEmptyOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceFeed, server.URL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	loader := NewLoader(source, logger, core.NewMetrics())

	window, _ := models.WindowFromDate("2021-06-20")
	entries, ok := loader.Load(context.Background(), window)

	if ok {
		t.Error("Expected the load to report failure")
	}
	if entries == nil {
		t.Fatal("Expected an empty entry list, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestLoaderDegradesToEmptyOnBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "rate limit exceeded"}`))
	}))
	defer server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceFeed, server.URL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	loader := NewLoader(source, logger, core.NewMetrics())

	window, _ := models.WindowFromDate("2021-06-20")
	entries, ok := loader.Load(context.Background(), window)

	if ok {
		t.Error("Expected the load to report failure")
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestLoaderDegradesToEmptyOnTransportError(t *testing.T) {
	// Close the server before the loader ever reaches it
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceFeed, serverURL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	loader := NewLoader(source, logger, core.NewMetrics())

	window, _ := models.WindowFromDate("2021-06-20")
	entries, ok := loader.Load(context.Background(), window)

	if ok {
		t.Error("Expected the load to report failure")
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestFeedSourceSendsHeaders(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceFeed, server.URL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	window, _ := models.WindowFromDate("2021-06-20")
	if _, err := source.Fetch(context.Background(), window); err != nil {
		t.Fatalf("Failed to fetch: %v", err)
	}

	if gotUserAgent != "Skylight Test/1.0" {
		t.Errorf("Expected the configured user agent, got %s", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("Expected Accept application/json, got %s", gotAccept)
	}
}

func TestFeedSourceReportsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceFeed, server.URL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	window, _ := models.WindowFromDate("2021-06-20")
	_, err = source.Fetch(context.Background(), window)

	if err == nil {
		t.Fatal("Expected fetch to fail on a 404")
	}
	if !errors.Is(err, ErrUpstreamStatus) {
		t.Errorf("Expected a status error, got %v", err)
	}
}

func TestAPODSourceBuildsWindowedRequest(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	logger := core.NewLogger()
	source, err := NewSource(logger, testSourceConfig(core.GallerySourceAPOD, server.URL))
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	window, _ := models.WindowFromDate("2021-02-25")
	if _, err := source.Fetch(context.Background(), window); err != nil {
		t.Fatalf("Failed to fetch: %v", err)
	}

	if gotQuery.Get("api_key") != "TEST_KEY" {
		t.Errorf("Expected api_key TEST_KEY, got %s", gotQuery.Get("api_key"))
	}
	if gotQuery.Get("start_date") != "2021-02-25" {
		t.Errorf("Expected start_date 2021-02-25, got %s", gotQuery.Get("start_date"))
	}
	if gotQuery.Get("end_date") != "2021-03-05" {
		t.Errorf("Expected end_date 2021-03-05, got %s", gotQuery.Get("end_date"))
	}
	if gotQuery.Get("thumbs") != "true" {
		t.Errorf("Expected thumbs true, got %s", gotQuery.Get("thumbs"))
	}
}

func TestAPODSourceOmitsThumbsWhenDisabled(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	logger := core.NewLogger()
	config := testSourceConfig(core.GallerySourceAPOD, server.URL)
	config.APODThumbs = false

	source, err := NewSource(logger, config)
	if err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	window, _ := models.WindowFromDate("2021-02-25")
	if _, err := source.Fetch(context.Background(), window); err != nil {
		t.Fatalf("Failed to fetch: %v", err)
	}

	if gotQuery.Get("thumbs") != "" {
		t.Errorf("Expected no thumbs parameter, got %s", gotQuery.Get("thumbs"))
	}
}

func TestNewSourceRejectsUnknownName(t *testing.T) {
	logger := core.NewLogger()
	if _, err := NewSource(logger, testSourceConfig("carrier-pigeon", "https://example.com")); err == nil {
		t.Error("Expected an unknown source name to be rejected")
	}
}
