package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/posts/comment/:id
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.commentService.AddComment(c.Context(), service.AddCommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post.Comments)
}

// RemoveComment handles DELETE /api/posts/comment/:id/:commentId
func (s *Server) RemoveComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	post, err := s.commentService.RemoveComment(c.Context(), service.RemoveCommentInput{
		UserID:    currentUserID(c),
		PostID:    postID,
		CommentID: commentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post.Comments)
}
