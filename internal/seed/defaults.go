package seed

const (
	demoVerificationCode = "123456"
	demoPackageContent   = "Test"
	demoPackageImage     = "/9j/4AAQSkZJRgABAQABAAD/2wBD"
	demoBankName         = "abc"
	demoAccountNumber    = "1234"
	demoAccountHolder    = "pweo"
)

// DefaultFixtures returns the built-in demo data set. Each call returns a
// fresh copy.
//
// The order and review pairings are kept exactly as the demo data has always
// shipped, including the fifth order placed by the third user against listing 4.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Users: []UserFixture{
			{Name: "Adam adam", Email: "adam1@gmail.com", Password: "adampassword", PhoneNumber: "0819288176", VerificationCode: demoVerificationCode},
			{Name: "Bob bob", Email: "bob@gmail.com", Password: "bobpassword", PhoneNumber: "0819288326", VerificationCode: demoVerificationCode},
			{Name: "Charlie charlie", Email: "charlie@gmail.com", Password: "charliepassword", PhoneNumber: "0813318326", VerificationCode: demoVerificationCode},
			{Name: "Delta delta", Email: "delta@gmail.com", Password: "deltapassword", PhoneNumber: "081921296", VerificationCode: demoVerificationCode},
		},
		Listings: []ListingFixture{
			demoListing(0, "Alabama", 20, 12000, "KRW", "2024-10-09 +0900KST", "2024-10-05 +0900KST"),
			demoListing(1, "Jakarta", 50.0, 11500.0, "IDR", "2024-12-09 +0700KST", "2024-11-05 +0700UTC"),
			demoListing(2, "Malaysia", 22, 11000, "MYR", "2025-10-09 +0900KST", "2025-10-05 +0900KST"),
			demoListing(3, "Nepal", 15, 10000, "USD", "2025-01-10 +0900KST", "2025-01-05 +0900KST"),
		},
		Orders: []OrderFixture{
			demoOrder(0, 1, 5, 12000*5, "KRW", ""),
			demoOrder(1, 2, 2, 11000*2, "IDR", "test"),
			demoOrder(2, 3, 8, 11000*3, "KRW", ""),
			demoOrder(3, 4, 5, 12000*5, "USD", ""),
			demoOrder(2, 4, 26, 12000*26, "USD", ""),
		},
		Reviews: []ReviewFixture{
			{User: userRef(0), OrderID: 1, RevieweeName: "Bob bob", Content: "nice", Rating: 5},
			{User: userRef(1), OrderID: 2, RevieweeName: "Adam adam", Rating: 4},
			{User: userRef(2), OrderID: 3, RevieweeName: "Adam adam", Content: "kind", Rating: 4},
			{User: userRef(3), OrderID: 4, RevieweeName: "Adam adam", Content: "okay", Rating: 3},
		},
	}
}

func demoListing(user int, destination string, weight, pricePerKg float64, currency, departure, lastReceived string) ListingFixture {
	return ListingFixture{
		User:             userRef(user),
		Destination:      destination,
		WeightAvailable:  weight,
		PricePerKg:       pricePerKg,
		Currency:         currency,
		DepartureDate:    departure,
		LastReceivedDate: lastReceived,
		BankName:         demoBankName,
		AccountNumber:    demoAccountNumber,
		AccountHolder:    demoAccountHolder,
	}
}

func demoOrder(user, listingID int, weight, price float64, currency, noted string) OrderFixture {
	return OrderFixture{
		User:           userRef(user),
		ListingID:      listingID,
		Weight:         weight,
		Price:          price,
		Currency:       currency,
		PackageContent: demoPackageContent,
		PackageImage:   demoPackageImage,
		Noted:          noted,
	}
}
