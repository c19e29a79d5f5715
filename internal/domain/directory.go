package domain

// WifiSpot is a public WiFi access point.
type WifiSpot struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
	Source   string     `json:"source"`
}

// TaxiCompany is a local taxi dispatch company reachable by phone.
type TaxiCompany struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
