package store

import (
	"context"
	"errors"

	"recipebook/internal/models"
)

// ErrNotFound is returned when no record matches the given identifier or
// business key. Malformed record identifiers map to ErrNotFound as well.
var ErrNotFound = errors.New("store: record not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint
// (member email or phone number).
var ErrDuplicate = errors.New("store: duplicate key")

// MemberStore is the persistence collaborator for member records.
type MemberStore interface {
	Insert(ctx context.Context, member models.Member) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindByStdID(ctx context.Context, stdID string) (*models.Member, error)
	FindByID(ctx context.Context, id string) (*models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
	UpdateProfile(ctx context.Context, id string, profile MemberProfile) error
	UpdatePassword(ctx context.Context, stdID string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// MemberProfile is the partial field set written by UpdateProfile. The
// password is deliberately absent; it only changes through UpdatePassword.
type MemberProfile struct {
	Name        string
	StdID       string
	Degree      string
	Country     string
	Email       string
	PhoneNumber string
	Address     string
}

// RecipeStore is the persistence collaborator for recipe records.
type RecipeStore interface {
	Insert(ctx context.Context, recipe models.Recipe) (string, error)
	List(ctx context.Context) ([]models.Recipe, error)
	ListByUploader(ctx context.Context, uploadedBy string) ([]models.Recipe, error)
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	SearchByTitle(ctx context.Context, fragment string) ([]models.Recipe, error)
	Update(ctx context.Context, id string, update RecipeUpdate) (*models.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// RecipeUpdate is the partial field set written by Update. File and
// UploadedBy are immutable after creation through this interface.
type RecipeUpdate struct {
	Title       string
	Description string
	Culture     string
}
