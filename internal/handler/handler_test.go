package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	lim := PageLimits{Default: 10, Max: 100}

	tests := []struct {
		name    string
		query   string
		want    [2]int // page, limit
		wantErr bool
	}{
		{name: "defaults", query: "", want: [2]int{1, 10}},
		{name: "explicit", query: "?page=3&limit=25", want: [2]int{3, 25}},
		{name: "zero page", query: "?page=0", wantErr: true},
		{name: "negative page", query: "?page=-1", wantErr: true},
		{name: "non numeric", query: "?page=abc", wantErr: true},
		{name: "limit over max", query: "?limit=101", wantErr: true},
		{name: "limit at max", query: "?limit=100", want: [2]int{1, 100}},
		{name: "zero limit", query: "?limit=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/projects"+tt.query, nil)
			q, err := parsePage(r, lim)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePage: %v", err)
			}
			if q.Page != tt.want[0] || q.Limit != tt.want[1] {
				t.Errorf("got page=%d limit=%d, want %v", q.Page, q.Limit, tt.want)
			}
		})
	}
}

func TestBoolParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?featured=true&active=nope", nil)

	if b := boolParam(r, "featured"); b == nil || !*b {
		t.Errorf("featured = %v", b)
	}
	if b := boolParam(r, "active"); b != nil {
		t.Errorf("unparseable value should be ignored, got %v", b)
	}
	if b := boolParam(r, "missing"); b != nil {
		t.Errorf("missing param should be nil, got %v", b)
	}
}
