package location

import (
	"context"

	"go-vms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Resolver turns transient machine-readable selections into the
// human-readable names that get persisted on visit records.
type Resolver interface {
	ResolveCountry(ctx context.Context, code string) string
	ResolveState(ctx context.Context, countryCode, code string) string
}

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Resolver
	Countries(ctx context.Context) ([]CountryResponse, error)
	States(ctx context.Context, countryCode string) ([]StateResponse, error)
	Cities(ctx context.Context, countryCode, stateCode string) ([]CityResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Countries(ctx context.Context) ([]CountryResponse, error) {
	rows, err := s.repo.FindCountries(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]CountryResponse, len(rows))
	for i, c := range rows {
		res[i] = CountryResponse{Code: c.Code, Name: c.Name}
	}
	return res, nil
}

func (s *service) States(ctx context.Context, countryCode string) ([]StateResponse, error) {
	rows, err := s.repo.FindStates(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	res := make([]StateResponse, len(rows))
	for i, st := range rows {
		res[i] = StateResponse{Code: st.Code, Name: st.Name}
	}
	return res, nil
}

func (s *service) Cities(ctx context.Context, countryCode, stateCode string) ([]CityResponse, error) {
	rows, err := s.repo.FindCities(ctx, countryCode, stateCode)
	if err != nil {
		return nil, err
	}
	res := make([]CityResponse, len(rows))
	for i, c := range rows {
		res[i] = CityResponse{Name: c.Name}
	}
	return res, nil
}

// ResolveCountry returns the display name for a country code. Unknown or
// empty codes pass through unchanged so a free-typed name is kept as-is.
func (s *service) ResolveCountry(ctx context.Context, code string) string {
	if code == "" {
		return ""
	}
	name, err := s.repo.FindCountryName(ctx, code)
	if err != nil || name == "" {
		contextutil.GetLogger(ctx, zap.L()).Debug("country code did not resolve", zap.String("code", code))
		return code
	}
	return name
}

// ResolveState behaves like ResolveCountry for state codes within a country.
func (s *service) ResolveState(ctx context.Context, countryCode, code string) string {
	if code == "" {
		return ""
	}
	name, err := s.repo.FindStateName(ctx, countryCode, code)
	if err != nil || name == "" {
		contextutil.GetLogger(ctx, zap.L()).Debug("state code did not resolve",
			zap.String("country", countryCode), zap.String("code", code))
		return code
	}
	return name
}
