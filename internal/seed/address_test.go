package seed

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"
)

func TestBackendURL(t *testing.T) {
	tests := []struct {
		name string
		root string
		want string
	}{
		{name: "host and port", root: "localhost:9988", want: "http://localhost:9988"},
		{name: "trims space", root: "  localhost:9988  ", want: "http://localhost:9988"},
		{name: "explicit http", root: "http://10.0.0.5:9988", want: "http://10.0.0.5:9988"},
		{name: "https with path", root: "https://api.example.com/carrier/", want: "https://api.example.com/carrier"},
		{name: "drops query", root: "http://localhost:9988/?debug=1", want: "http://localhost:9988"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BackendURL(tt.root)
			if err != nil {
				t.Fatalf("BackendURL(%q): %v", tt.root, err)
			}
			if got != tt.want {
				t.Fatalf("BackendURL(%q) = %q, want %q", tt.root, got, tt.want)
			}
		})
	}
}

func TestBackendURL_Rejects(t *testing.T) {
	for _, root := range []string{"", "   ", "ftp://localhost:21", "http://"} {
		_, err := BackendURL(root)
		if err == nil {
			t.Fatalf("BackendURL(%q): expected error", root)
		}
		if apperrors.GetCode(err) != apperrors.CodeInvalidConfig {
			t.Fatalf("BackendURL(%q): expected invalid config, got %v", root, err)
		}
	}
}

func TestResolveLocalFallbackAddr(t *testing.T) {
	prev := LookupHost
	t.Cleanup(func() { LookupHost = prev })
	LookupHost = func(_ context.Context, host string) ([]string, error) {
		if host == "backend" {
			return nil, errors.New("no such host")
		}
		return []string{"10.0.0.1"}, nil
	}

	if got := ResolveLocalFallbackAddr(t.Context(), "backend:9988"); got != "127.0.0.1:9988" {
		t.Fatalf("fallback = %q", got)
	}
	if got := ResolveLocalFallbackAddr(t.Context(), "known:9988"); got != "known:9988" {
		t.Fatalf("resolved = %q", got)
	}
	if got := ResolveLocalFallbackAddr(t.Context(), "backend"); got != "backend" {
		t.Fatalf("no port = %q", got)
	}
	if got := ResolveLocalFallbackAddr(t.Context(), " "); got != "" {
		t.Fatalf("empty = %q", got)
	}
}

func TestResolveBackendURL(t *testing.T) {
	prev := LookupHost
	t.Cleanup(func() { LookupHost = prev })
	LookupHost = func(context.Context, string) ([]string, error) {
		return nil, errors.New("no such host")
	}

	got, err := ResolveBackendURL(t.Context(), "backend:9988", true)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "http://127.0.0.1:9988" {
		t.Fatalf("with fallback = %q", got)
	}

	got, err = ResolveBackendURL(t.Context(), "backend:9988", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "http://backend:9988" {
		t.Fatalf("without fallback = %q", got)
	}
}
