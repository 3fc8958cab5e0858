package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withDetails preloads likes and comments, comments newest first.
func (r *postRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		})
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostsListKey)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "GetByID", "posts")
	defer span.End()

	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() (interface{}, error) {
		var p models.Post
		if err := r.withDetails(r.db.WithContext(ctx)).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Post", id)
			}
			observability.RecordErrorInContext(ctx, err)
			return nil, models.NewInternalError(err)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "List", "posts")
	defer span.End()

	var posts []models.Post

	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.ListTTL, func() (interface{}, error) {
		var out []models.Post
		if err := r.withDetails(r.db.WithContext(ctx)).
			Order("posts.created_at DESC, posts.id DESC").
			Find(&out).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// Like inserts the like atomically. INSERT ... ON CONFLICT DO NOTHING avoids
// a read-then-write race; zero affected rows means the like already existed.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewAlreadyLikedError()
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// Unlike removes the like; zero affected rows means there was nothing to remove.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotLikedError()
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
