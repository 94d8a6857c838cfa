package handler

import (
	"encoding/json"
	"net/http"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/delivery/http/middleware"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"
	"symptocare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FeedHandler struct {
	feedUsecase usecase.FeedUsecase
	validator   *validator.CustomValidator
}

func NewFeedHandler(feedUsecase usecase.FeedUsecase, validator *validator.CustomValidator) *FeedHandler {
	return &FeedHandler{
		feedUsecase: feedUsecase,
		validator:   validator,
	}
}

// CreatePost handles wellness feed post creation
// @Summary Create a feed post
// @Description Share a post with text content and/or an image URL
// @Tags Feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /feed [post]
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.feedUsecase.CreatePost(r.Context(), authorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create post")
		return
	}

	response.Success(w, http.StatusCreated, "Post created successfully", post)
}

// ListPosts handles the paginated feed
// @Summary List feed posts
// @Description List feed posts, most recent first
// @Tags Feed
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /feed [get]
func (h *FeedHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationParams(r)

	posts, err := h.feedUsecase.ListPosts(r.Context(), limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list posts")
		return
	}

	response.Success(w, http.StatusOK, "Posts retrieved successfully", posts)
}

// LikePost handles post likes
// @Summary Like a feed post
// @Description Like a post; repeated likes are idempotent
// @Tags Feed
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /feed/{id}/like [post]
func (h *FeedHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.feedUsecase.LikePost(r.Context(), postID, userID)
	if err != nil {
		switch err {
		case usecase.ErrPostNotFound:
			response.NotFound(w, "Post not found")
		default:
			response.InternalServerError(w, "Failed to like post")
		}
		return
	}

	response.Success(w, http.StatusOK, "Post liked successfully", post)
}
