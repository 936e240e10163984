package seed

import (
	"strings"
	"testing"
)

func TestPlan_DefaultFixtures(t *testing.T) {
	lines := Plan(DefaultFixtures())

	// 6 phase headers + 4 register + 4 login + 4 listings + 5 orders + 4 reviews + 4 logout
	if len(lines) != 31 {
		t.Fatalf("expected 31 plan lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "register:" {
		t.Fatalf("first line = %q", lines[0])
	}
	want := "  POST /api/v1/order #5 listing 4 26kg 312000 USD as charlie@gmail.com"
	if !contains(lines, want) {
		t.Fatalf("plan missing %q:\n%s", want, strings.Join(lines, "\n"))
	}
	want = "  POST /api/v1/review #1 order 1 rating 5 for Bob bob as adam1@gmail.com"
	if !contains(lines, want) {
		t.Fatalf("plan missing %q:\n%s", want, strings.Join(lines, "\n"))
	}
	if lines[len(lines)-1] != "  POST /api/v1/user/logout delta@gmail.com" {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}
}

func TestPlan_UnknownUserIndex(t *testing.T) {
	f := DefaultFixtures()
	f.Orders[0].User = userRef(9)
	lines := Plan(f)
	if !contains(lines, "  POST /api/v1/order #1 listing 1 5kg 60000 KRW as user 9") {
		t.Fatalf("expected placeholder label:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPlan_LargeAmountsUseDecimalNotation(t *testing.T) {
	f := DefaultFixtures()
	f.Listings[1].PricePerKg = 1150000
	f.Orders[0].Price = 1500000
	f.Orders[0].Weight = 2.5
	lines := Plan(f)
	for _, want := range []string{
		"  POST /api/v1/listing #2 Jakarta 1150000 IDR/kg as bob@gmail.com",
		"  POST /api/v1/order #1 listing 1 2.5kg 1500000 KRW as adam1@gmail.com",
	} {
		if !contains(lines, want) {
			t.Fatalf("plan missing %q:\n%s", want, strings.Join(lines, "\n"))
		}
	}
}

func contains(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
