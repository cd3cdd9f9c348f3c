package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mesaayuda/internal/domain/profile"
	"mesaayuda/internal/infrastructure/persistence/mappers"
	"mesaayuda/internal/infrastructure/persistence/models"
	"mesaayuda/internal/shared/errors"
)

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserProfileMapper
}

func NewUserProfileRepository(db *gorm.DB) profile.ProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserProfileMapper(),
	}
}

// GetOrCreate inserts the candidate unless a row with its user ID
// already exists. The unique index on user_id arbitrates the
// concurrent first-resolution race: the losing insert hits a duplicate
// key error and re-reads the winner's row. Existing rows come back
// untouched whatever defaults the candidate carried.
func (r *UserProfileRepositoryImpl) GetOrCreate(ctx context.Context, candidate *profile.Profile) (*profile.Profile, error) {
	existing, err := r.getByUserID(ctx, candidate.UserID())
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	model, err := r.mapper.ToModel(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to map profile entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return r.getByUserID(ctx, candidate.UserID())
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := candidate.SetID(model.ID); err != nil {
		return nil, fmt.Errorf("failed to set profile ID: %w", err)
	}

	return candidate, nil
}

func (r *UserProfileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	return r.getByUserID(ctx, userID)
}

func (r *UserProfileRepositoryImpl) getByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	var model models.UserProfileModel

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to get profile by user ID: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map profile model to entity: %w", err)
	}

	return entity, nil
}

func (r *UserProfileRepositoryImpl) Update(ctx context.Context, p *profile.Profile) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map profile entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.UserProfileModel{}).
		Where("id = ?", model.ID).
		Select("Email", "Role", "Permissions", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *UserProfileRepositoryImpl) List(ctx context.Context) ([]*profile.Profile, error) {
	var rows []models.UserProfileModel

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*profile.Profile, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map profile model to entity: %w", err)
		}
		profiles = append(profiles, entity)
	}

	return profiles, nil
}
