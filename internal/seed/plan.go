package seed

import (
	"fmt"
	"strconv"
)

// Plan describes the requests a run of f would send, one line per request,
// grouped by phase.
func Plan(f Fixtures) []string {
	lines := make([]string, 0, 2*len(f.Users)+len(f.Listings)+len(f.Orders)+len(f.Reviews)+6)
	userLabel := func(index int) string {
		if index >= 0 && index < len(f.Users) {
			return f.Users[index].Email
		}
		return "user " + strconv.Itoa(index)
	}

	lines = append(lines, string(PhaseRegister)+":")
	for _, user := range f.Users {
		lines = append(lines, fmt.Sprintf("  POST %s %s <%s>", PathRegister, user.Name, user.Email))
	}
	lines = append(lines, string(PhaseLogin)+":")
	for _, user := range f.Users {
		lines = append(lines, fmt.Sprintf("  POST %s %s", PathLogin, user.Email))
	}
	lines = append(lines, string(PhaseListings)+":")
	for i, listing := range f.Listings {
		lines = append(lines, fmt.Sprintf("  POST %s #%d %s %s %s/kg as %s",
			PathListing, i+1, listing.Destination, formatAmount(listing.PricePerKg), listing.Currency, userLabel(userIndex(listing.User, i))))
	}
	lines = append(lines, string(PhaseOrders)+":")
	for i, order := range f.Orders {
		lines = append(lines, fmt.Sprintf("  POST %s #%d listing %d %skg %s %s as %s",
			PathOrder, i+1, order.ListingID, formatAmount(order.Weight), formatAmount(order.Price), order.Currency, userLabel(userIndex(order.User, i))))
	}
	lines = append(lines, string(PhaseReviews)+":")
	for i, review := range f.Reviews {
		lines = append(lines, fmt.Sprintf("  POST %s #%d order %d rating %d for %s as %s",
			PathReview, i+1, review.OrderID, review.Rating, review.RevieweeName, userLabel(userIndex(review.User, i))))
	}
	lines = append(lines, string(PhaseLogout)+":")
	for _, user := range f.Users {
		lines = append(lines, fmt.Sprintf("  POST %s %s", PathLogout, user.Email))
	}
	return lines
}

// formatAmount renders v in plain decimal notation at any magnitude.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
