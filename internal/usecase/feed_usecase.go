package usecase

import (
	"context"
	"errors"

	"symptocare-backend/internal/converter"
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/domain/repository"
	"symptocare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type FeedUsecase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, limit, offset int) (*dto.PostListResponse, error)
	LikePost(ctx context.Context, postID, userID uuid.UUID) (*dto.PostResponse, error)
}

type feedUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	postRepo     repository.PostRepository
	auditService service.AuditService
}

func NewFeedUsecase(db *gorm.DB, log *logrus.Logger, postRepo repository.PostRepository, auditService service.AuditService) FeedUsecase {
	return &feedUsecase{db: db, log: log, postRepo: postRepo, auditService: auditService}
}

func (u *feedUsecase) CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	db := u.db.WithContext(ctx)

	post := &entity.Post{
		AuthorID: authorID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := u.postRepo.Create(db, post); err != nil {
		u.log.Warnf("Failed to create post: %+v", err)
		return nil, err
	}

	u.auditService.Log(db, &authorID, entity.AuditActionPostCreate, entity.JSON{
		"post_id": post.ID.String(),
	})

	created, err := u.postRepo.FindByID(db, post.ID)
	if err != nil || created == nil {
		return converter.PostToResponse(post), nil
	}
	return converter.PostToResponse(created), nil
}

func (u *feedUsecase) ListPosts(ctx context.Context, limit, offset int) (*dto.PostListResponse, error) {
	posts, total, err := u.postRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list posts: %+v", err)
		return nil, err
	}

	return &dto.PostListResponse{
		Posts: converter.PostsToResponses(posts),
		Total: int(total),
	}, nil
}

// LikePost is idempotent: a repeated like from the same user leaves the
// post's like count unchanged.
func (u *feedUsecase) LikePost(ctx context.Context, postID, userID uuid.UUID) (*dto.PostResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	post, err := u.postRepo.FindByID(tx, postID)
	if err != nil {
		u.log.Warnf("Failed to find post: %+v", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	liked, err := u.postRepo.HasLiked(tx, postID, userID)
	if err != nil {
		u.log.Warnf("Failed to check like: %+v", err)
		return nil, err
	}

	if !liked {
		like := &entity.PostLike{PostID: postID, UserID: userID}
		if err := u.postRepo.CreateLike(tx, like); err != nil {
			u.log.Warnf("Failed to create like: %+v", err)
			return nil, err
		}

		post.LikeCount++
		if err := u.postRepo.Update(tx, post); err != nil {
			u.log.Warnf("Failed to update like count: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PostToResponse(post), nil
}
