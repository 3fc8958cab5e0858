package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

const maxPostLen = 10000

// PostService handles posts and the like state machine.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost stores a new post, capturing the author's name and avatar as a
// snapshot so later account changes do not rewrite old posts.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 10000 characters)")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post with its likes and comments.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records the caller's like. Liking a post twice is rejected, the
// repository's atomic insert is what detects the duplicate.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// UnlikePost removes the caller's like; a post that was never liked is
// rejected rather than treated as a no-op.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
