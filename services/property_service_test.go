package services

import (
	"errors"
	"testing"

	"campusnest-backend/repositories"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestCreateProperty_OwnerForcedFromCaller(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	property, err := svc.Create(7, CreatePropertyInput{
		Title:    "Green Meadows Hostel",
		Rent:     6500,
		Location: "HSR Layout",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if property.OwnerID != 7 {
		t.Errorf("expected owner 7, got %d", property.OwnerID)
	}

	stored, err := repo.GetByID(property.ID)
	if err != nil {
		t.Fatalf("failed to reload property: %v", err)
	}
	if stored.OwnerID != 7 {
		t.Errorf("expected persisted owner 7, got %d", stored.OwnerID)
	}
}

func TestCreateProperty_AvailabilityDefaultsTrue(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	property, err := svc.Create(7, CreatePropertyInput{Title: "PG", Rent: 5000})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !property.IsAvailable {
		t.Error("expected isAvailable to default to true")
	}

	unlisted, err := svc.Create(7, CreatePropertyInput{Title: "PG 2", Rent: 5000, IsAvailable: boolPtr(false)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if unlisted.IsAvailable {
		t.Error("expected explicit isAvailable=false to be kept")
	}
}

func TestCreateProperty_NegativeRent(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	_, err := svc.Create(7, CreatePropertyInput{Title: "PG", Rent: -100})
	if !errors.Is(err, ErrInvalidRent) {
		t.Errorf("expected ErrInvalidRent, got %v", err)
	}
}

func TestListByOwner_OnlyCallerListings(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	if _, err := svc.Create(7, CreatePropertyInput{Title: "Mine", Rent: 5000}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(8, CreatePropertyInput{Title: "Theirs", Rent: 5000}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.ListByOwner(7)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 property, got %d", len(mine))
	}
	if mine[0].Title != "Mine" {
		t.Errorf("expected own property, got %q", mine[0].Title)
	}
}

func TestUpdateProperty_NotOwner(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	property, err := svc.Create(7, CreatePropertyInput{Title: "PG", Rent: 5000})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(8, property.ID, UpdatePropertyInput{Title: strPtr("Hijacked")})
	if !errors.Is(err, ErrNotPropertyOwner) {
		t.Errorf("expected ErrNotPropertyOwner, got %v", err)
	}

	stored, _ := repo.GetByID(property.ID)
	if stored.Title != "PG" {
		t.Errorf("expected listing untouched, got title %q", stored.Title)
	}
}

func TestUpdateProperty_NotFound(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	_, err := svc.Update(7, 999, UpdatePropertyInput{Title: strPtr("Ghost")})
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestUpdateProperty_ToggleAvailability(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	property, err := svc.Create(7, CreatePropertyInput{Title: "PG", Rent: 5000})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(7, property.ID, UpdatePropertyInput{IsAvailable: boolPtr(false)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IsAvailable {
		t.Error("expected isAvailable=false after toggle")
	}
	if updated.OwnerID != 7 {
		t.Errorf("expected owner unchanged, got %d", updated.OwnerID)
	}
}

func TestUpdateProperty_NegativeRentRejected(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	property, err := svc.Create(7, CreatePropertyInput{Title: "PG", Rent: 5000})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(7, property.ID, UpdatePropertyInput{Rent: floatPtr(-1)})
	if !errors.Is(err, ErrInvalidRent) {
		t.Errorf("expected ErrInvalidRent, got %v", err)
	}
}

func TestSearchProperty_Filters(t *testing.T) {
	repo := newMockPropertyRepository()
	svc := NewPropertyService(repo)

	if _, err := svc.Create(7, CreatePropertyInput{Title: "A", Rent: 5000, Location: "Koramangala"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(7, CreatePropertyInput{Title: "B", Rent: 12000, Location: "Indiranagar"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(7, CreatePropertyInput{Title: "C", Rent: 4000, Location: "Koramangala", IsAvailable: boolPtr(false)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	results, err := svc.Search(repositories.PropertyFilter{
		Location:      "Koramangala",
		MaxRent:       floatPtr(8000),
		OnlyAvailable: true,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "A" {
		t.Errorf("expected property A, got %q", results[0].Title)
	}
}
