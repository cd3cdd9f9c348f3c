package profile

import "context"

type ProfileRepository interface {
	// GetOrCreate returns the stored profile for the candidate's user ID,
	// inserting the candidate when none exists. The operation must be
	// atomic on the unique user ID: a concurrent first resolution for the
	// same identity yields exactly one row, with the losing caller
	// observing the winner's row. Existing rows are returned unmodified.
	GetOrCreate(ctx context.Context, candidate *Profile) (*Profile, error)

	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	List(ctx context.Context) ([]*Profile, error)
}
