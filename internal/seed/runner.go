package seed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"
	"github.com/nicolaics/jim-carrier-seed/internal/platform/requestctx"
	"github.com/nicolaics/jim-carrier-seed/internal/platform/timeouts"
)

// Backend endpoints, relative to the backend root.
const (
	PathRegister = "/api/v1/user/register"
	PathLogin    = "/api/v1/user/login"
	PathLogout   = "/api/v1/user/logout"
	PathListing  = "/api/v1/listing"
	PathOrder    = "/api/v1/order"
	PathReview   = "/api/v1/review"
)

// Phase names one stage of a seed run.
type Phase string

// Phases in execution order.
const (
	PhaseRegister Phase = "register"
	PhaseLogin    Phase = "login"
	PhaseListings Phase = "listings"
	PhaseOrders   Phase = "orders"
	PhaseReviews  Phase = "reviews"
	PhaseLogout   Phase = "logout"
)

// DefaultBackendRoot is the local development backend.
const DefaultBackendRoot = "localhost:9988"

// Config holds seed runner configuration.
type Config struct {
	BackendRoot   string
	FixturesPath  string
	Timeout       time.Duration
	Strict        bool
	LocalFallback bool
	Verbose       bool
}

// DefaultConfig returns configuration with common defaults.
func DefaultConfig() Config {
	return Config{
		BackendRoot:   DefaultBackendRoot,
		Timeout:       timeouts.HTTPRequest,
		LocalFallback: true,
	}
}

// Runner applies one fixture set against a backend, phase by phase.
type Runner struct {
	cfg      Config
	client   backendClient
	fixtures Fixtures
	out      io.Writer
	errW     io.Writer
}

// NewRunner builds a runner with an HTTP client for cfg.BackendRoot.
func NewRunner(ctx context.Context, cfg Config, fixtures Fixtures, out, errOut io.Writer) (*Runner, error) {
	baseURL, err := ResolveBackendURL(ctx, cfg.BackendRoot, cfg.LocalFallback)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.HTTPRequest
	}
	client := NewClient(baseURL, &http.Client{Timeout: timeout})
	r := newRunnerWithClient(cfg, client, fixtures, out, errOut)
	r.logf("Backend: %s", baseURL)
	return r, nil
}

func newRunnerWithClient(cfg Config, client backendClient, fixtures Fixtures, out, errOut io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Runner{
		cfg:      cfg,
		client:   client,
		fixtures: fixtures,
		out:      out,
		errW:     errOut,
	}
}

// Run loads the configured fixtures and seeds the backend end-to-end.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	fixtures, err := ResolveFixtures(cfg.FixturesPath)
	if err != nil {
		return err
	}
	runner, err := NewRunner(ctx, cfg, fixtures, out, errOut)
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}

// ResolveFixtures returns the built-in fixtures when path is empty and the
// file's contents otherwise. The result is validated.
func ResolveFixtures(path string) (Fixtures, error) {
	fixtures := DefaultFixtures()
	if strings.TrimSpace(path) != "" {
		loaded, err := LoadFixtures(path)
		if err != nil {
			return Fixtures{}, err
		}
		fixtures = loaded
	}
	if err := ValidateFixtures(fixtures); err != nil {
		return Fixtures{}, err
	}
	return fixtures, nil
}

// Run executes every phase in order: register, login, listings, orders,
// reviews, logout. The first failure aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("runner client is required")
	}
	if err := ValidateFixtures(r.fixtures); err != nil {
		return err
	}
	if requestctx.RunIDFromContext(ctx) == "" {
		ctx = requestctx.WithRunID(ctx, uuid.NewString())
	}
	r.logf("Run: %s", requestctx.RunIDFromContext(ctx))

	if err := r.RegisterUsers(ctx); err != nil {
		return err
	}
	tokens, err := r.LoginUsers(ctx)
	if err != nil {
		return err
	}
	if err := r.CreateListings(ctx, tokens); err != nil {
		return err
	}
	if err := r.CreateOrders(ctx, tokens); err != nil {
		return err
	}
	if err := r.CreateReviews(ctx, tokens); err != nil {
		return err
	}
	if err := r.LogoutUsers(ctx, tokens); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "DONE")
	r.logf("Seeding complete")
	return nil
}

// RegisterUsers registers every user fixture.
func (r *Runner) RegisterUsers(ctx context.Context) error {
	for _, user := range r.fixtures.Users {
		if _, err := r.post(ctx, PhaseRegister, user.Email, PathRegister, "", user); err != nil {
			return err
		}
	}
	return nil
}

// LoginUsers logs every user in, in registration order, and returns their
// session tokens in that same order.
func (r *Runner) LoginUsers(ctx context.Context) ([]string, error) {
	tokens := make([]string, 0, len(r.fixtures.Users))
	for _, user := range r.fixtures.Users {
		resp, err := r.post(ctx, PhaseLogin, user.Email, PathLogin, "", user.loginPayload())
		if err != nil {
			return nil, err
		}
		token, ok := captureToken(resp.Value)
		if !ok {
			return nil, phaseError(PhaseLogin, user.Email, apperrors.WithMetadata(apperrors.CodeTokenMissing,
				fmt.Sprintf("login response has no token (response=%s)", truncate(resp.Body, 200)),
				map[string]string{"email": user.Email}))
		}
		tokens = append(tokens, token)
		if claims, ok := InspectToken(token); ok {
			r.logf("    token for %s: user=%d expires=%s", user.Email, claims.UserID, formatTime(claims.ExpiresAt))
		}
	}
	return tokens, nil
}

// CreateListings creates each listing with its owner's token.
func (r *Runner) CreateListings(ctx context.Context, tokens []string) error {
	for i, listing := range r.fixtures.Listings {
		step := "listing " + strconv.Itoa(i+1) + " " + listing.Destination
		token, err := tokenAt(tokens, userIndex(listing.User, i))
		if err != nil {
			return phaseError(PhaseListings, step, err)
		}
		if _, err := r.post(ctx, PhaseListings, step, PathListing, token, listing.payload()); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrders places each order with its giver's token.
func (r *Runner) CreateOrders(ctx context.Context, tokens []string) error {
	for i, order := range r.fixtures.Orders {
		step := fmt.Sprintf("order %d on listing %d", i+1, order.ListingID)
		token, err := tokenAt(tokens, userIndex(order.User, i))
		if err != nil {
			return phaseError(PhaseOrders, step, err)
		}
		if _, err := r.post(ctx, PhaseOrders, step, PathOrder, token, order.payload()); err != nil {
			return err
		}
	}
	return nil
}

// CreateReviews submits each review with its reviewer's token.
func (r *Runner) CreateReviews(ctx context.Context, tokens []string) error {
	for i, review := range r.fixtures.Reviews {
		step := fmt.Sprintf("review %d on order %d", i+1, review.OrderID)
		token, err := tokenAt(tokens, userIndex(review.User, i))
		if err != nil {
			return phaseError(PhaseReviews, step, err)
		}
		if _, err := r.post(ctx, PhaseReviews, step, PathReview, token, review.payload()); err != nil {
			return err
		}
	}
	return nil
}

// LogoutUsers logs out every token once.
func (r *Runner) LogoutUsers(ctx context.Context, tokens []string) error {
	for i, token := range tokens {
		step := "user " + strconv.Itoa(i)
		if i < len(r.fixtures.Users) {
			step = r.fixtures.Users[i].Email
		}
		if _, err := r.post(ctx, PhaseLogout, step, PathLogout, token, nil); err != nil {
			return err
		}
	}
	return nil
}

// post sends one request, echoes the raw response and applies strict mode.
func (r *Runner) post(ctx context.Context, phase Phase, step, path, token string, body any) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, phaseError(phase, step, apperrors.Wrap(apperrors.CodeTransport, "", err))
	}
	r.logf("  → %s %s", phase, step)

	resp, err := r.client.Post(ctx, path, token, body)
	if err != nil {
		return resp, phaseError(phase, step, err)
	}
	r.printResponse(resp)

	if r.cfg.Strict && !resp.OK() {
		return resp, phaseError(phase, step, apperrors.WithMetadata(apperrors.CodeUnexpectedStatus,
			fmt.Sprintf("POST %s returned status %d", path, resp.StatusCode),
			map[string]string{"path": path, "status": strconv.Itoa(resp.StatusCode)}))
	}
	return resp, nil
}

func (r *Runner) printResponse(resp Response) {
	fmt.Fprintln(r.out, string(bytes.TrimSpace(resp.Body)))
}

func (r *Runner) logf(format string, args ...any) {
	if r == nil || !r.cfg.Verbose {
		return
	}
	if r.errW == nil {
		return
	}
	_, _ = fmt.Fprintf(r.errW, format+"\n", args...)
}

func tokenAt(tokens []string, index int) (string, error) {
	if index < 0 || index >= len(tokens) {
		return "", apperrors.New(apperrors.CodeInvalidFixture,
			fmt.Sprintf("user index %d out of range (%d tokens)", index, len(tokens)))
	}
	return tokens[index], nil
}

func phaseError(phase Phase, step string, err error) error {
	return fmt.Errorf("%s %q: %w", phase, step, err)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format(time.RFC3339)
}
