package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

const maxCommentLen = 10000

// CommentService handles comments on posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

type RemoveCommentInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment attaches a comment to the post with the author's name and
// avatar snapshotted at comment time.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: in.PostID,
		UserID: user.ID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// RemoveComment deletes one comment by ID. The comment's author and the
// post's owner may both remove it; anyone else is rejected. A comment ID
// that does not belong to the given post reads as not found.
func (s *CommentService) RemoveComment(ctx context.Context, in RemoveCommentInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != post.ID {
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}
	if comment.UserID != in.UserID && post.UserID != in.UserID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}
