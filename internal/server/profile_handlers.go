package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"fieldofstudy"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// GetProfiles handles GET /api/profiles
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profiles/user/:userId
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMine(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profiles
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req struct {
		Status         string `json:"status"`
		Skills         string `json:"skills"`
		Company        string `json:"company"`
		Website        string `json:"website"`
		Location       string `json:"location"`
		Bio            string `json:"bio"`
		GithubUsername string `json:"github_username"`
		Youtube        string `json:"youtube"`
		Twitter        string `json:"twitter"`
		Facebook       string `json:"facebook"`
		Instagram      string `json:"instagram"`
		Linkedin       string `json:"linkedin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.Context(), service.UpsertProfileInput{
		UserID:         currentUserID(c),
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles PUT /api/profiles/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.Context(), service.AddExperienceInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// RemoveExperience handles DELETE /api/profiles/experience/:expId
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	expID, err := s.parseID(c, "expId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveExperience(c.Context(), currentUserID(c), expID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profiles/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.Context(), service.AddEducationInput{
		UserID:      currentUserID(c),
		School:      req.School,
		Degree:      req.Degree,
		Field:       req.Field,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// RemoveEducation handles DELETE /api/profiles/education/:eduId
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	eduID, err := s.parseID(c, "eduId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveEducation(c.Context(), currentUserID(c), eduID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profiles
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}
