package service

import "cityguide/internal/domain"

// Public WiFi access points operated by Stadtwerke Konstanz.
var wifiSpots = []domain.WifiSpot{
	{ID: "fc-kn-ap007", Name: "Marktstätte", Location: domain.Coordinate{Lat: 47.660373, Lng: 9.175563}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap008", Name: "Stadtgarten Kiosk", Location: domain.Coordinate{Lat: 47.660608, Lng: 9.178723}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap018", Name: "Marktstätte Unterführung", Location: domain.Coordinate{Lat: 47.660374, Lng: 9.177201}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap009", Name: "LAGO Bodanstraße", Location: domain.Coordinate{Lat: 47.65773, Lng: 9.176288}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap017", Name: "Bahnhof Parkleitsystem", Location: domain.Coordinate{Lat: 47.659125, Lng: 9.177076}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap002", Name: "Rosgartenstraße", Location: domain.Coordinate{Lat: 47.658994, Lng: 9.174546}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap004", Name: "Rosgartenstraße", Location: domain.Coordinate{Lat: 47.658972, Lng: 9.174532}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "fc-kn-ap016", Name: "Fischmarkt Richtung Stadtgarten", Location: domain.Coordinate{Lat: 47.662024, Lng: 9.17788}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "RCK-APT300-15", Name: "Fähre Vorplatz Konstanz", Location: domain.Coordinate{Lat: 47.682241, Lng: 9.211273}, Source: "Stadtwerke Konstanz GmbH"},
	{ID: "RCK-APT300-16", Name: "Fähre Vorplatz Meersburg", Location: domain.Coordinate{Lat: 47.694582, Lng: 9.265086}, Source: "Stadtwerke Konstanz GmbH"},
}

// Local taxi dispatch companies reachable by phone.
var taxiCompanies = []domain.TaxiCompany{
	{Name: "Taxi-Funkzentrale Konstanz", Phone: "+49 7531 22222"},
	{Name: "Taxi Schwarz Konstanz", Phone: "+49 7531 33333"},
	{Name: "City Taxi Konstanz", Phone: "+49 7531 94 94 94"},
}
