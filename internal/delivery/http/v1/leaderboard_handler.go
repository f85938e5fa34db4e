package v1

import (
	"fmt"
	"net/http"

	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardUC domain.LeaderboardUsecase
	maxLimit      int
}

// LeaderboardQuery holds the optional page size; zero means the configured default.
type LeaderboardQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func NewLeaderboardHandler(r *gin.RouterGroup, leaderboardUC domain.LeaderboardUsecase, maxLimit int, limiters ...gin.HandlerFunc) {
	handler := &LeaderboardHandler{leaderboardUC: leaderboardUC, maxLimit: maxLimit}

	leaderboard := r.Group("/leaderboard", limiters...)
	{
		leaderboard.GET("", handler.Combined)
		leaderboard.GET("/:mode", handler.Rank)
	}
}

// Rank godoc
// @Summary      Get the leaderboard
// @Description  combined blends achievement and recommendation percentiles (0.6 / 0.4); achievements and recommendations rank by raw totals
// @Tags         leaderboard
// @Produce      json
// @Param        mode   path      string  true   "Ranking mode"  Enums(combined, achievements, recommendations)
// @Param        limit  query     int     false  "Number of entries (1-200, default 50)"
// @Success      200    {object}  response.Response{data=[]domain.LeaderboardEntry}
// @Failure      400    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /leaderboard/{mode} [get]
func (h *LeaderboardHandler) Rank(c *gin.Context) {
	h.respond(c, domain.LeaderboardMode(c.Param("mode")))
}

// Combined godoc
// @Summary      Get the combined leaderboard
// @Tags         leaderboard
// @Produce      json
// @Param        limit  query     int  false  "Number of entries (1-200, default 50)"
// @Success      200    {object}  response.Response{data=[]domain.LeaderboardEntry}
// @Failure      400    {object}  response.Response
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Combined(c *gin.Context) {
	h.respond(c, domain.LeaderboardCombined)
}

func (h *LeaderboardHandler) respond(c *gin.Context, mode domain.LeaderboardMode) {
	var query LeaderboardQuery
	_, limitGiven := c.GetQuery("limit")
	if err := c.ShouldBindQuery(&query); err != nil || (limitGiven && query.Limit < 1) {
		c.Error(apperror.BadRequest("Invalid limit: must be a positive integer"))
		return
	}
	if h.maxLimit > 0 && query.Limit > h.maxLimit {
		c.Error(apperror.BadRequest(fmt.Sprintf("Invalid limit: must be at most %d", h.maxLimit)))
		return
	}

	entries, err := h.leaderboardUC.Rank(c.Request.Context(), mode, query.Limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Leaderboard", entries)
}
