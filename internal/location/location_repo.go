package location

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	FindCountries(ctx context.Context) ([]Country, error)
	FindStates(ctx context.Context, countryCode string) ([]State, error)
	FindCities(ctx context.Context, countryCode, stateCode string) ([]City, error)
	FindCountryName(ctx context.Context, code string) (string, error)
	FindStateName(ctx context.Context, countryCode, code string) (string, error)
	CreateCountry(ctx context.Context, c *Country) error
	CreateState(ctx context.Context, s *State) error
	CreateCity(ctx context.Context, c *City) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCountries(ctx context.Context) ([]Country, error) {
	var rows []Country
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindStates(ctx context.Context, countryCode string) ([]State, error) {
	var rows []State
	err := r.db.WithContext(ctx).
		Where("country_code = ?", countryCode).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCities(ctx context.Context, countryCode, stateCode string) ([]City, error) {
	var rows []City
	err := r.db.WithContext(ctx).
		Where("country_code = ?", countryCode).
		Where("state_code = ?", stateCode).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCountryName(ctx context.Context, code string) (string, error) {
	var c Country
	err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error
	return c.Name, err
}

func (r *repository) FindStateName(ctx context.Context, countryCode, code string) (string, error) {
	var s State
	err := r.db.WithContext(ctx).
		Where("country_code = ?", countryCode).
		Where("code = ?", code).
		First(&s).Error
	return s.Name, err
}

// The create methods are insert-or-skip so the seeder can replay the full
// directory on every run.

func (r *repository) CreateCountry(ctx context.Context, c *Country) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(c).Error
}

func (r *repository) CreateState(ctx context.Context, s *State) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(s).Error
}

func (r *repository) CreateCity(ctx context.Context, c *City) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(c).Error
}
