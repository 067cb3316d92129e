package models

// CustomerInfo is the billing/shipping contact a shopper fills in before
// checkout. First name and email are the only required fields.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// DefaultCustomerInfo is the empty form a session starts with and returns to
// after a successful order.
func DefaultCustomerInfo(country string) CustomerInfo {
	return CustomerInfo{Country: country}
}
