package http

import (
	"net/http"

	"ripple/internal/usecase"
	"ripple/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase, logger: logger}
}

// GetFeed godoc
// @Summary      Get the caller's feed
// @Description  Posts by followed users, newest first
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size (max 100)"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := parsePagination(c, 20, 100)

	items, err := h.feedUseCase.GetFeed(userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": items, "count": len(items), "offset": offset})
}
