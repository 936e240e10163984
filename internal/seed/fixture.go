package seed

// Fixtures is the full demo data set applied by one seed run.
type Fixtures struct {
	Users    []UserFixture    `json:"users" yaml:"users"`
	Listings []ListingFixture `json:"listings" yaml:"listings"`
	Orders   []OrderFixture   `json:"orders" yaml:"orders"`
	Reviews  []ReviewFixture  `json:"reviews" yaml:"reviews"`
}

// UserFixture is sent as-is to the register endpoint.
type UserFixture struct {
	Name             string `json:"name" yaml:"name"`
	Email            string `json:"email" yaml:"email"`
	Password         string `json:"password" yaml:"password"`
	PhoneNumber      string `json:"phoneNumber" yaml:"phoneNumber"`
	VerificationCode string `json:"verificationCode" yaml:"verificationCode"`
}

// ListingFixture defines one carrier listing.
type ListingFixture struct {
	// User is the index of the owning user. Nil means the listing's position.
	User             *int    `json:"user,omitempty" yaml:"user,omitempty"`
	Destination      string  `json:"destination" yaml:"destination"`
	WeightAvailable  float64 `json:"weightAvailable" yaml:"weightAvailable"`
	PricePerKg       float64 `json:"pricePerKg" yaml:"pricePerKg"`
	Currency         string  `json:"currency" yaml:"currency"`
	DepartureDate    string  `json:"departureDate" yaml:"departureDate"`
	LastReceivedDate string  `json:"lastReceivedDate" yaml:"lastReceivedDate"`
	BankName         string  `json:"bankName" yaml:"bankName"`
	AccountNumber    string  `json:"accountNumber" yaml:"accountNumber"`
	AccountHolder    string  `json:"accountHolder" yaml:"accountHolder"`
}

// OrderFixture defines one order against a listing ID. The ID is assumed to
// match listing creation order on the backend, starting at 1.
type OrderFixture struct {
	User           *int    `json:"user,omitempty" yaml:"user,omitempty"`
	ListingID      int     `json:"listingId" yaml:"listingId"`
	Weight         float64 `json:"weight" yaml:"weight"`
	Price          float64 `json:"price" yaml:"price"`
	Currency       string  `json:"currency" yaml:"currency"`
	PackageContent string  `json:"packageContent" yaml:"packageContent"`
	PackageImage   string  `json:"packageImage" yaml:"packageImage"`
	Noted          string  `json:"noted,omitempty" yaml:"noted,omitempty"`
}

// ReviewFixture defines one review of an order. The order ID is assumed to
// match order creation order on the backend, starting at 1.
type ReviewFixture struct {
	User         *int   `json:"user,omitempty" yaml:"user,omitempty"`
	OrderID      int    `json:"orderId" yaml:"orderId"`
	RevieweeName string `json:"revieweeName" yaml:"revieweeName"`
	Content      string `json:"content,omitempty" yaml:"content,omitempty"`
	Rating       int    `json:"rating" yaml:"rating"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type listingPayload struct {
	Destination      string  `json:"destination"`
	WeightAvailable  float64 `json:"weightAvailable"`
	PricePerKg       float64 `json:"pricePerKg"`
	Currency         string  `json:"currency"`
	DepartureDate    string  `json:"departureDate"`
	LastReceivedDate string  `json:"lastReceivedDate"`
	BankName         string  `json:"bankName"`
	AccountNumber    string  `json:"accountNumber"`
	AccountHolder    string  `json:"accountHolder"`
}

type orderPayload struct {
	ListingID      int     `json:"listingId"`
	Weight         float64 `json:"weight"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	PackageContent string  `json:"packageContent"`
	PackageImage   string  `json:"packageImage"`
	Noted          string  `json:"noted,omitempty"`
}

type reviewPayload struct {
	OrderID      int    `json:"orderId"`
	RevieweeName string `json:"revieweeName"`
	Content      string `json:"content,omitempty"`
	Rating       int    `json:"rating"`
}

func (u UserFixture) loginPayload() loginPayload {
	return loginPayload{Email: u.Email, Password: u.Password}
}

func (l ListingFixture) payload() listingPayload {
	return listingPayload{
		Destination:      l.Destination,
		WeightAvailable:  l.WeightAvailable,
		PricePerKg:       l.PricePerKg,
		Currency:         l.Currency,
		DepartureDate:    l.DepartureDate,
		LastReceivedDate: l.LastReceivedDate,
		BankName:         l.BankName,
		AccountNumber:    l.AccountNumber,
		AccountHolder:    l.AccountHolder,
	}
}

func (o OrderFixture) payload() orderPayload {
	return orderPayload{
		ListingID:      o.ListingID,
		Weight:         o.Weight,
		Price:          o.Price,
		Currency:       o.Currency,
		PackageContent: o.PackageContent,
		PackageImage:   o.PackageImage,
		Noted:          o.Noted,
	}
}

func (r ReviewFixture) payload() reviewPayload {
	return reviewPayload{
		OrderID:      r.OrderID,
		RevieweeName: r.RevieweeName,
		Content:      r.Content,
		Rating:       r.Rating,
	}
}

// userIndex resolves an optional user reference, defaulting to position.
func userIndex(ref *int, position int) int {
	if ref == nil {
		return position
	}
	return *ref
}

func userRef(index int) *int {
	return &index
}
