// Package database owns schema migration and seed data for the seeder binary.
package database

import (
	"context"
	"errors"
	"strings"

	"go-vms/internal/auth"
	autherrors "go-vms/internal/auth/errors"
	"go-vms/internal/employee"
	employeeerrors "go-vms/internal/employee/errors"
	"go-vms/internal/location"
	"go-vms/internal/visitor"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every table the API touches.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&visitor.Visitor{},
		&employee.Employee{},
		&auth.User{},
		&location.Country{},
		&location.State{},
		&location.City{},
	)
}

// SeedAll loads the location directory, a starter employee directory and the
// gate credential. Re-running is safe: duplicate rows are skipped.
func SeedAll(ctx context.Context, db *gorm.DB) error {
	if err := seedLocations(ctx, db); err != nil {
		return err
	}
	if err := seedEmployees(ctx, db); err != nil {
		return err
	}
	return seedGateUser(ctx, db)
}

func seedLocations(ctx context.Context, db *gorm.DB) error {
	repo := location.NewRepository(db)

	countries := []location.Country{
		{Code: "IN", Name: "India"},
		{Code: "US", Name: "United States"},
		{Code: "GB", Name: "United Kingdom"},
		{Code: "SG", Name: "Singapore"},
	}
	for _, c := range countries {
		if err := repo.CreateCountry(ctx, &c); err != nil {
			return err
		}
	}

	states := []location.State{
		{CountryCode: "IN", Code: "MH", Name: "Maharashtra"},
		{CountryCode: "IN", Code: "KA", Name: "Karnataka"},
		{CountryCode: "IN", Code: "DL", Name: "Delhi"},
		{CountryCode: "US", Code: "CA", Name: "California"},
		{CountryCode: "US", Code: "NY", Name: "New York"},
	}
	for _, s := range states {
		if err := repo.CreateState(ctx, &s); err != nil {
			return err
		}
	}

	cities := []location.City{
		{CountryCode: "IN", StateCode: "MH", Name: "Mumbai"},
		{CountryCode: "IN", StateCode: "MH", Name: "Pune"},
		{CountryCode: "IN", StateCode: "KA", Name: "Bengaluru"},
		{CountryCode: "IN", StateCode: "DL", Name: "New Delhi"},
		{CountryCode: "US", StateCode: "CA", Name: "San Francisco"},
		{CountryCode: "US", StateCode: "NY", Name: "New York"},
	}
	for _, c := range cities {
		if err := repo.CreateCity(ctx, &c); err != nil {
			return err
		}
	}

	return nil
}

func seedEmployees(ctx context.Context, db *gorm.DB) error {
	repo := employee.NewRepository(db)

	starter := []employee.Employee{
		{EmpID: "EMP001", Name: "Jane Carter", Department: "Sales", Email: "jane.carter@example.com"},
		{EmpID: "EMP002", Name: "Rahul Mehta", Department: "Engineering", Email: "rahul.mehta@example.com"},
		{EmpID: "EMP003", Name: "Priya Nair", Department: "HR", Email: "priya.nair@example.com"},
	}
	for _, e := range starter {
		err := repo.Create(ctx, &e)
		if err == nil {
			continue
		}
		if errors.Is(employee.MapRepositoryError(err), employeeerrors.ErrEmployeeAlreadyExists) {
			zap.L().Info("employee already seeded", zap.String("emp_id", e.EmpID))
			continue
		}
		return err
	}
	return nil
}

func seedGateUser(ctx context.Context, db *gorm.DB) error {
	repo := auth.NewRepository(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte("reception"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &auth.User{Username: "reception", Password: string(hashed)}
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(mapUserError(err), autherrors.ErrUsernameAlreadyExists) {
			zap.L().Info("gate user already seeded", zap.String("username", user.Username))
			return nil
		}
		return err
	}
	return nil
}

func mapUserError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrUsernameAlreadyExists
	}
	return err
}

// HashLegacyPasswords upgrades plaintext credential rows to bcrypt in place.
// Rows that are already hashed are skipped.
func HashLegacyPasswords(ctx context.Context, db *gorm.DB) error {
	repo := auth.NewRepository(db)

	users, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if strings.HasPrefix(u.Password, "$2") {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := repo.UpdatePassword(ctx, u.ID, string(hashed)); err != nil {
			return err
		}
		zap.L().Info("upgraded legacy password", zap.String("username", u.Username))
	}
	return nil
}
