package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RelationshipHandler struct {
	relationshipUseCase usecase.RelationshipUseCase
	logger              *logger.Logger
}

func NewRelationshipHandler(relationshipUseCase usecase.RelationshipUseCase, logger *logger.Logger) *RelationshipHandler {
	return &RelationshipHandler{relationshipUseCase: relationshipUseCase, logger: logger}
}

// Follow godoc
// @Summary      Follow a user
// @Description  Idempotent: following an already-followed user succeeds
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID to follow"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/follow [post]
func (h *RelationshipHandler) Follow(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("id")

	if err := h.relationshipUseCase.Follow(actorID, targetID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following", "user_id": targetID})
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Description  Idempotent: unfollowing a non-followed user succeeds
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID to unfollow"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/follow [delete]
func (h *RelationshipHandler) Unfollow(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("id")

	if err := h.relationshipUseCase.Unfollow(actorID, targetID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed", "user_id": targetID})
}

// ListFollowing godoc
// @Summary      List users the caller follows
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /users/me/following [get]
func (h *RelationshipHandler) ListFollowing(c *gin.Context) {
	userID := c.GetString("user_id")

	ids, err := h.relationshipUseCase.ListFollowing(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": ids, "count": len(ids)})
}

// ListFollowers godoc
// @Summary      List users following the caller
// @Tags         relationships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /users/me/followers [get]
func (h *RelationshipHandler) ListFollowers(c *gin.Context) {
	userID := c.GetString("user_id")

	ids, err := h.relationshipUseCase.ListFollowers(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": ids, "count": len(ids)})
}
