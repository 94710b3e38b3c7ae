package documents

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corpreg/furnishings-engine/internal/domain"
)

func TestMergeReturnsDocument(t *testing.T) {
	t.Parallel()

	var gotReq mergeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/furnishings/merge" {
			t.Errorf("path = %s, want /furnishings/merge", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode merge request: %v", err)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 test"))
	}))
	t.Cleanup(srv.Close)

	client, err := NewReportClient(srv.URL)
	if err != nil {
		t.Fatalf("NewReportClient() error = %v", err)
	}

	pdf, err := client.Merge(context.Background(), domain.CategoryBC, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("merged document should not be empty")
	}
	if gotReq.Category != "BC" {
		t.Fatalf("category = %s, want BC", gotReq.Category)
	}
	if len(gotReq.FurnishingIDs) != 3 {
		t.Fatalf("furnishing ids len = %d, want 3", len(gotReq.FurnishingIDs))
	}
}

func TestMergeNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client, err := NewReportClient(srv.URL)
	if err != nil {
		t.Fatalf("NewReportClient() error = %v", err)
	}

	if _, err := client.Merge(context.Background(), domain.CategoryXPRO, []int64{9}); err == nil {
		t.Fatal("expected error for non-200 merge response")
	}
}

func TestMergeRequiresIDs(t *testing.T) {
	t.Parallel()

	client, err := NewReportClient("https://report.example.com")
	if err != nil {
		t.Fatalf("NewReportClient() error = %v", err)
	}

	if _, err := client.Merge(context.Background(), domain.CategoryBC, nil); err == nil {
		t.Fatal("expected error for empty furnishing id list")
	}
}
