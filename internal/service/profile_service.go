package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"

	"gorm.io/datatypes"
)

// ProfileService manages developer profiles and their experience and
// education sub-collections. Every mutation is scoped to the caller's own
// profile; there is no way to edit someone else's.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

type UpsertProfileInput struct {
	UserID         uint
	Status         string
	Skills         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Instagram      string
	Linkedin       string
}

type AddExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type AddEducationInput struct {
	UserID      uint
	School      string
	Degree      string
	Field       string
	From        string
	To          string
	Current     bool
	Description string
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetMine returns the caller's profile with experience and education loaded.
func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByOwner(ctx, userID)
}

// GetByUser returns another user's profile for public viewing.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByOwner(ctx, userID)
}

// List returns all profiles, newest first.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or merges the supplied scalar fields
// into the existing one. An empty input field means "not supplied" and leaves
// the stored value alone; there is no way to blank a field through this
// operation. Experience and education entries are untouched; they have their
// own operations.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	if in.Status == "" {
		return nil, models.NewValidationError("Status is required")
	}
	if in.Skills == "" {
		return nil, models.NewValidationError("Skills is required")
	}

	profile, err := s.profileRepo.GetByOwner(ctx, in.UserID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); !ok || appErr.Code != models.CodeNotFound {
			return nil, err
		}
		profile = &models.Profile{UserID: in.UserID}
	}

	profile.Status = in.Status
	profile.Skills = datatypes.JSONSlice[string](validation.SplitSkills(in.Skills))
	setIfPresent(&profile.Company, in.Company)
	setIfPresent(&profile.Website, in.Website)
	setIfPresent(&profile.Location, in.Location)
	setIfPresent(&profile.Bio, in.Bio)
	setIfPresent(&profile.GithubUsername, in.GithubUsername)
	setIfPresent(&profile.Social.Youtube, in.Youtube)
	setIfPresent(&profile.Social.Twitter, in.Twitter)
	setIfPresent(&profile.Social.Facebook, in.Facebook)
	setIfPresent(&profile.Social.Instagram, in.Instagram)
	setIfPresent(&profile.Social.Linkedin, in.Linkedin)

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, in.UserID)
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// AddExperience appends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, in AddExperienceInput) (*models.Profile, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Company == "" {
		return nil, models.NewValidationError("Company is required")
	}
	if in.From == "" {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.profileRepo.GetByOwner(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, in.UserID)
}

// RemoveExperience deletes one entry by ID from the caller's own profile.
// An ID belonging to someone else's profile reads as not found.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, userID)
}

// AddEducation appends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, in AddEducationInput) (*models.Profile, error) {
	if in.School == "" {
		return nil, models.NewValidationError("School is required")
	}
	if in.Degree == "" {
		return nil, models.NewValidationError("Degree is required")
	}
	if in.Field == "" {
		return nil, models.NewValidationError("Field of study is required")
	}
	if in.From == "" {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.profileRepo.GetByOwner(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		School:      in.School,
		Degree:      in.Degree,
		Field:       in.Field,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, in.UserID)
}

// RemoveEducation deletes one entry by ID from the caller's own profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByOwner(ctx, userID)
}

// DeleteAccount removes the caller's profile and user record together.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.profileRepo.DeleteWithUser(ctx, userID)
}
