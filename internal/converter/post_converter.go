package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// PostToResponse converts a Post entity to a PostResponse DTO
func PostToResponse(post *entity.Post) *dto.PostResponse {
	if post == nil {
		return nil
	}

	resp := &dto.PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		LikeCount: post.LikeCount,
		CreatedAt: post.CreatedAt,
	}

	if post.Author.Profile != nil {
		resp.AuthorName = post.Author.Profile.FullName
	}

	return resp
}

// PostsToResponses converts a slice of Post entities to PostResponse DTOs
func PostsToResponses(posts []entity.Post) []dto.PostResponse {
	responses := make([]dto.PostResponse, len(posts))
	for i := range posts {
		responses[i] = *PostToResponse(&posts[i])
	}
	return responses
}
