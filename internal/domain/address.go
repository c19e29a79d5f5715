package domain

// AddressResult is a geocoder hit formatted for display. Populated entirely
// from the upstream response; the two display lines follow the original
// presentation (place or street first, locality second).
type AddressResult struct {
	DisplayLine1 string     `json:"display_line1"`
	DisplayLine2 string     `json:"display_line2"`
	FullAddress  string     `json:"full_address"`
	Name         string     `json:"name,omitempty"`
	Street       string     `json:"street,omitempty"`
	HouseNumber  string     `json:"house_number,omitempty"`
	PostalCode   string     `json:"postal_code,omitempty"`
	City         string     `json:"city,omitempty"`
	District     string     `json:"district,omitempty"`
	State        string     `json:"state,omitempty"`
	Country      string     `json:"country,omitempty"`
	CountryCode  string     `json:"country_code,omitempty"`
	Location     Coordinate `json:"location"`
}
