package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{interactionUseCase: interactionUseCase, logger: logger}
}

// LikePost godoc
// @Summary      Like a post
// @Description  A second like of the same post returns 409, not a toggle
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *InteractionHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.interactionUseCase.LikePost(userID, postID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post liked", "liked": true})
}

// UnlikePost godoc
// @Summary      Unlike a post
// @Description  Fails with 404 if the caller has not liked the post
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [delete]
func (h *InteractionHandler) UnlikePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.interactionUseCase.UnlikePost(userID, postID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post unliked", "liked": false})
}

// GetLikeCount godoc
// @Summary      Get like count for a post
// @Description  Served from the redis counter when primed, DB otherwise
// @Tags         interactions
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/likes [get]
func (h *InteractionHandler) GetLikeCount(c *gin.Context) {
	postID := c.Param("id")

	count, err := h.interactionUseCase.GetLikeCount(postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "likes_count": count})
}

// GetLikedPosts godoc
// @Summary      Get posts liked by the caller
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size (max 100)"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/liked [get]
func (h *InteractionHandler) GetLikedPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := parsePagination(c, 20, 100)

	posts, err := h.interactionUseCase.GetLikedPosts(userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts), "offset": offset})
}
