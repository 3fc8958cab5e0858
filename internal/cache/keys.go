package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	PostKeyPrefix   = "post:%d"
	PostsListKey    = "posts:all"
	ProfilesListKey = "profiles:all"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	ListTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateProfiles drops the cached profile list. Single profiles are read
// from the database directly, so the list is the only cached view.
func InvalidateProfiles(ctx context.Context) {
	Invalidate(ctx, ProfilesListKey)
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostsListKey)
}
