package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for developer profiles
// and their experience and education entries.
type ProfileRepository interface {
	GetByOwner(ctx context.Context, ownerID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, profileID uint, exp *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, expID uint) error
	AddEducation(ctx context.Context, profileID uint, edu *models.Education) error
	RemoveEducation(ctx context.Context, profileID, eduID uint) error
	DeleteWithUser(ctx context.Context, ownerID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withDetails preloads the owning user and the sub-collections newest first;
// the id tiebreak keeps entries created in the same second in a stable order.
func (r *profileRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.created_at DESC, experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.created_at DESC, educations.id DESC")
		})
}

func (r *profileRepository) GetByOwner(ctx context.Context, ownerID uint) (*models.Profile, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "GetByOwner", "profiles")
	defer span.End()

	var profile models.Profile
	if err := r.withDetails(r.db.WithContext(ctx)).
		Where("user_id = ?", ownerID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", ownerID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile

	err := cache.Aside(ctx, cache.ProfilesListKey, &profiles, cache.ListTTL, func() (interface{}, error) {
		var out []models.Profile
		if err := r.withDetails(r.db.WithContext(ctx)).
			Order("profiles.created_at DESC, profiles.id DESC").
			Find(&out).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Save creates the profile when it has no ID yet, otherwise updates it in place.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfiles(ctx)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, profileID uint, exp *models.Experience) error {
	exp.ProfileID = profileID
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfiles(ctx)
	return nil
}

func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, expID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Experience", expID)
	}
	cache.InvalidateProfiles(ctx)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, profileID uint, edu *models.Education) error {
	edu.ProfileID = profileID
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfiles(ctx)
	return nil
}

func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, eduID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Education", eduID)
	}
	cache.InvalidateProfiles(ctx)
	return nil
}

// DeleteWithUser removes the owner's profile (if any) together with the user
// account in a single transaction. A missing profile is not an error, the
// account itself is still removed.
func (r *profileRepository) DeleteWithUser(ctx context.Context, ownerID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", ownerID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, ownerID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfiles(ctx)
	cache.InvalidateUser(ctx, ownerID)
	return nil
}
