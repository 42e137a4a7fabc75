package http

import (
	"context"
	"testing"
)

func TestRequest_Build(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		headers        []string
		expectedURL    string
		expectedMethod string
		expectedHeader map[string][]string
	}{
		{
			name:           "Simple GET request",
			method:         "GET",
			url:            "https://api.example.com/users",
			expectedURL:    "https://api.example.com/users",
			expectedMethod: "GET",
		},
		{
			name:           "Request with query parameters",
			method:         "GET",
			url:            "http://localhost:8080/index.html?page=1",
			expectedURL:    "http://localhost:8080/index.html?page=1",
			expectedMethod: "GET",
		},
		{
			name:           "Custom headers keep order",
			method:         "DELETE",
			url:            "https://api.example.com/users/1",
			headers:        []string{"X-A: 1", "X-A: 2", "Accept:text/html"},
			expectedURL:    "https://api.example.com/users/1",
			expectedMethod: "DELETE",
			expectedHeader: map[string][]string{
				"X-A":    {"1", "2"},
				"Accept": {"text/html"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(tt.method, tt.url)
			if err := req.WithRawHeaders(tt.headers); err != nil {
				t.Fatalf("Error adding headers: %v", err)
			}

			httpReq, err := req.Build(context.Background())
			if err != nil {
				t.Fatalf("Error building request: %v", err)
			}

			if httpReq.Method != tt.expectedMethod {
				t.Errorf("Expected method %s, got %s", tt.expectedMethod, httpReq.Method)
			}
			if httpReq.URL.String() != tt.expectedURL {
				t.Errorf("Expected URL %s, got %s", tt.expectedURL, httpReq.URL.String())
			}
			for key, want := range tt.expectedHeader {
				got := httpReq.Header.Values(key)
				if len(got) != len(want) {
					t.Fatalf("Expected header %s to be %v, got %v", key, want, got)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("Expected header %s to be %v, got %v", key, want, got)
					}
				}
			}
		})
	}
}

func TestRequest_BuildRejectsRelativeURL(t *testing.T) {
	for _, u := range []string{"/users", "example.com/users", "http://"} {
		if _, err := NewRequest("GET", u).Build(context.Background()); err == nil {
			t.Errorf("Expected error for URL %q, got nil", u)
		}
	}
}

func TestRequest_WithRawHeader(t *testing.T) {
	req := NewRequest("GET", "http://example.com")

	if err := req.WithRawHeader("Header-name-0: Header-value-0"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := req.Headers.Get("Header-name-0"); got != "Header-value-0" {
		t.Errorf("Expected Header-value-0, got %s", got)
	}

	for _, bad := range []string{"NoColon", ": value", "   : value"} {
		if err := req.WithRawHeader(bad); err == nil {
			t.Errorf("Expected error for header %q, got nil", bad)
		}
	}
}
