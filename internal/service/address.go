package service

import (
	"context"
	"fmt"

	"cityguide/internal/client/photon"
	"cityguide/internal/domain"
)

// Geocoder resolves free-text queries to addresses.
type Geocoder interface {
	Search(ctx context.Context, params photon.SearchParams) ([]domain.AddressResult, error)
}

// AddressService provides address autocomplete backed by the geocoder.
type AddressService struct {
	geocoder Geocoder
}

// NewAddressService creates a new AddressService.
func NewAddressService(geocoder Geocoder) *AddressService {
	return &AddressService{geocoder: geocoder}
}

// Search returns region-ranked address results for a query. Queries
// below the geocoder's minimum length yield an empty result.
func (s *AddressService) Search(ctx context.Context, params photon.SearchParams) ([]domain.AddressResult, error) {
	results, err := s.geocoder.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocodingUnavailable, err)
	}
	return results, nil
}
