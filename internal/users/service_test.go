package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertAndGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	user := User{
		ID:       "google:sub-123",
		Email:    "student@example.edu",
		FullName: "Test Student",
	}
	if err := svc.UpsertFromAuth(ctx, user); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	got, err := svc.GetByID(ctx, "google:sub-123")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "student@example.edu" || got.FullName != "Test Student" {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Second upsert with new profile data replaces the record.
	user.FullName = "Renamed Student"
	if err := svc.UpsertFromAuth(ctx, user); err != nil {
		t.Fatalf("second UpsertFromAuth: %v", err)
	}
	got, err = svc.GetByID(ctx, "google:sub-123")
	if err != nil {
		t.Fatalf("GetByID after upsert: %v", err)
	}
	if got.FullName != "Renamed Student" {
		t.Fatalf("full name = %q, want Renamed Student", got.FullName)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.UpsertFromAuth(context.Background(), User{ID: "x"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestGetByIDUnknown(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNilServiceGuards(t *testing.T) {
	var svc *Service
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "x", Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error from nil service")
	}
	if _, err := svc.GetByID(context.Background(), "x"); err == nil {
		t.Fatalf("expected error from nil service")
	}
}
