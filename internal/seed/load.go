package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"
)

// LoadFixtures reads a fixture file. The format follows the extension:
// .yaml/.yml or .json. Unknown fields are rejected.
func LoadFixtures(path string) (Fixtures, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Fixtures{}, apperrors.New(apperrors.CodeInvalidFixture, "fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, apperrors.Wrap(apperrors.CodeInvalidFixture, "read fixture file", err)
	}

	var fixtures Fixtures
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fixtures); err != nil {
			return Fixtures{}, apperrors.Wrap(apperrors.CodeInvalidFixture, "decode yaml fixtures", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fixtures); err != nil {
			return Fixtures{}, apperrors.Wrap(apperrors.CodeInvalidFixture, "decode json fixtures", err)
		}
	default:
		return Fixtures{}, apperrors.New(apperrors.CodeInvalidFixture, fmt.Sprintf("unsupported fixture format %q", ext))
	}
	return fixtures, nil
}

// ValidateFixtures checks that every reference in f can be resolved before
// any request is sent.
func ValidateFixtures(f Fixtures) error {
	if len(f.Users) == 0 {
		return invalidFixture("at least one user is required")
	}
	seen := make(map[string]int, len(f.Users))
	for i, user := range f.Users {
		email := strings.ToLower(strings.TrimSpace(user.Email))
		if email == "" {
			return invalidFixture("user %d: email is required", i)
		}
		if user.Password == "" {
			return invalidFixture("user %d: password is required", i)
		}
		if prev, ok := seen[email]; ok {
			return invalidFixture("user %d: email %s already used by user %d", i, user.Email, prev)
		}
		seen[email] = i
	}

	for i, listing := range f.Listings {
		if err := checkUserIndex("listing", i, userIndex(listing.User, i), len(f.Users)); err != nil {
			return err
		}
		if err := checkCurrency("listing", i, listing.Currency); err != nil {
			return err
		}
	}
	for i, order := range f.Orders {
		if err := checkUserIndex("order", i, userIndex(order.User, i), len(f.Users)); err != nil {
			return err
		}
		if order.ListingID <= 0 {
			return invalidFixture("order %d: listingId must be positive, got %d", i, order.ListingID)
		}
		if err := checkCurrency("order", i, order.Currency); err != nil {
			return err
		}
	}
	for i, review := range f.Reviews {
		if err := checkUserIndex("review", i, userIndex(review.User, i), len(f.Users)); err != nil {
			return err
		}
		if review.OrderID <= 0 {
			return invalidFixture("review %d: orderId must be positive, got %d", i, review.OrderID)
		}
		if review.Rating < 1 || review.Rating > 5 {
			return invalidFixture("review %d: rating must be between 1 and 5, got %d", i, review.Rating)
		}
	}
	return nil
}

func checkUserIndex(kind string, position, index, users int) error {
	if index < 0 || index >= users {
		return invalidFixture("%s %d: user index %d out of range (%d users)", kind, position, index, users)
	}
	return nil
}

func checkCurrency(kind string, position int, code string) error {
	if _, err := currency.ParseISO(code); err != nil {
		return invalidFixture("%s %d: currency %q is not an ISO 4217 code", kind, position, code)
	}
	return nil
}

func invalidFixture(format string, args ...any) error {
	return apperrors.New(apperrors.CodeInvalidFixture, fmt.Sprintf(format, args...))
}
