package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newFeedUsecase(db *gorm.DB) FeedUsecase {
	return NewFeedUsecase(db, testLogger(), repository.NewPostRepository(), testAuditService())
}

func TestCreatePostAndList(t *testing.T) {
	db := setupTestDB(t)
	uc := newFeedUsecase(db)

	author := createTestUser(t, db, "author@example.com", entity.RoleIDUser)

	post, err := uc.CreatePost(context.Background(), author.ID, &dto.CreatePostRequest{
		Content: "Morning walk done, feeling great",
	})
	assert.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, 0, post.LikeCount)

	list, err := uc.ListPosts(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestListPostsReverseChronological(t *testing.T) {
	db := setupTestDB(t)
	uc := newFeedUsecase(db)

	author := createTestUser(t, db, "author@example.com", entity.RoleIDUser)

	var posts []*dto.PostResponse
	for i := 0; i < 3; i++ {
		post, err := uc.CreatePost(context.Background(), author.ID, &dto.CreatePostRequest{
			Content: fmt.Sprintf("post %d", i),
		})
		assert.NoError(t, err)
		posts = append(posts, post)
		// Distinct created_at values regardless of clock resolution.
		assert.NoError(t, db.Model(&entity.Post{}).
			Where("id = ?", post.ID).
			Update("created_at", time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)).Error)
	}

	list, err := uc.ListPosts(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, posts[2].ID, list.Posts[0].ID)
	assert.Equal(t, posts[0].ID, list.Posts[2].ID)
}

func TestLikePostIdempotent(t *testing.T) {
	db := setupTestDB(t)
	uc := newFeedUsecase(db)

	author := createTestUser(t, db, "author@example.com", entity.RoleIDUser)
	liker := createTestUser(t, db, "liker@example.com", entity.RoleIDUser)

	post, err := uc.CreatePost(context.Background(), author.ID, &dto.CreatePostRequest{Content: "like me"})
	assert.NoError(t, err)

	liked, err := uc.LikePost(context.Background(), post.ID, liker.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	// Second like from the same user is a no-op.
	liked, err = uc.LikePost(context.Background(), post.ID, liker.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	var count int64
	db.Model(&entity.PostLike{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLikePostDistinctUsers(t *testing.T) {
	db := setupTestDB(t)
	uc := newFeedUsecase(db)

	author := createTestUser(t, db, "author@example.com", entity.RoleIDUser)
	first := createTestUser(t, db, "first@example.com", entity.RoleIDUser)
	second := createTestUser(t, db, "second@example.com", entity.RoleIDUser)

	post, err := uc.CreatePost(context.Background(), author.ID, &dto.CreatePostRequest{Content: "popular"})
	assert.NoError(t, err)

	_, err = uc.LikePost(context.Background(), post.ID, first.ID)
	assert.NoError(t, err)
	liked, err := uc.LikePost(context.Background(), post.ID, second.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, liked.LikeCount)
}
