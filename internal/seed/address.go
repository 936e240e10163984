package seed

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"
)

// LookupHost resolves a hostname for local fallback checks. It is exposed for tests.
var LookupHost = net.DefaultResolver.LookupHost

// BackendURL turns a backend root such as "localhost:9988" into a base URL.
// Roots without a scheme are treated as plain HTTP.
func BackendURL(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", apperrors.New(apperrors.CodeInvalidConfig, "backend root is required")
	}
	if !strings.Contains(root, "://") {
		root = "http://" + root
	}
	u, err := url.Parse(root)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidConfig, "parse backend root", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", apperrors.New(apperrors.CodeInvalidConfig, fmt.Sprintf("unsupported backend scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return "", apperrors.New(apperrors.CodeInvalidConfig, fmt.Sprintf("backend root %q has no host", root))
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// ResolveLocalFallbackAddr returns the original address when host resolution succeeds.
// If host resolution fails, it falls back to localhost with the same port.
func ResolveLocalFallbackAddr(ctx context.Context, addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return addr
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || port == "" {
		return addr
	}
	if _, err := LookupHost(ctx, host); err == nil {
		return addr
	}
	return "127.0.0.1:" + port
}

// ResolveBackendURL normalizes root and, when fallback is set, swaps an
// unresolvable host for 127.0.0.1.
func ResolveBackendURL(ctx context.Context, root string, fallback bool) (string, error) {
	base, err := BackendURL(root)
	if err != nil {
		return "", err
	}
	if !fallback {
		return base, nil
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidConfig, "parse backend url", err)
	}
	u.Host = ResolveLocalFallbackAddr(ctx, u.Host)
	return u.String(), nil
}
