package v1

import (
	"net/http"

	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreUC domain.ScoreUsecase
}

func NewScoreHandler(public *gin.RouterGroup, protected *gin.RouterGroup, scoreUC domain.ScoreUsecase) {
	handler := &ScoreHandler{scoreUC: scoreUC}

	public.GET("/education/:id/score", handler.EducationScore)
	public.GET("/work/:id/score", handler.WorkScore)

	users := public.Group("/users")
	{
		users.GET("/:id/achievement", handler.Achievement)
		users.GET("/:id/recommendation-score", handler.RecommendationScore)
	}

	me := protected.Group("/users/me")
	{
		me.GET("/achievement", handler.MyAchievement)
		me.GET("/recommendation-score", handler.MyRecommendationScore)
	}
}

// EducationScore godoc
// @Summary      Score one education entry
// @Description  Scores the entry regardless of its verification status
// @Tags         scores
// @Produce      json
// @Param        id   path      int  true  "Education ID"
// @Success      200  {object}  response.Response{data=domain.EducationEntryScore}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id}/score [get]
func (h *ScoreHandler) EducationScore(c *gin.Context) {
	id, err := pathID(c, "id", "education ID")
	if err != nil {
		c.Error(err)
		return
	}

	score, err := h.scoreUC.ScoreEducationEntry(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education score", score)
}

// WorkScore godoc
// @Summary      Score one work experience
// @Description  Ongoing positions are scored up to today
// @Tags         scores
// @Produce      json
// @Param        id   path      int  true  "Work experience ID"
// @Success      200  {object}  response.Response{data=domain.WorkEntryScore}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /work/{id}/score [get]
func (h *ScoreHandler) WorkScore(c *gin.Context) {
	id, err := pathID(c, "id", "work experience ID")
	if err != nil {
		c.Error(err)
		return
	}

	score, err := h.scoreUC.ScoreWorkEntry(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work experience score", score)
}

// Achievement godoc
// @Summary      Get a user's achievement score
// @Description  Sum of verified education, verified work and company streak bonuses
// @Tags         scores
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.AchievementScore}
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/achievement [get]
func (h *ScoreHandler) Achievement(c *gin.Context) {
	id, err := pathID(c, "id", "user ID")
	if err != nil {
		c.Error(err)
		return
	}
	h.respondAchievement(c, id)
}

// RecommendationScore godoc
// @Summary      Get a user's recommendation score
// @Description  Approved recommendations weighted by each recommender's achievement score
// @Tags         scores
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.RecommendationTotal}
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/recommendation-score [get]
func (h *ScoreHandler) RecommendationScore(c *gin.Context) {
	id, err := pathID(c, "id", "user ID")
	if err != nil {
		c.Error(err)
		return
	}
	h.respondRecommendation(c, id)
}

// MyAchievement godoc
// @Summary      Get my achievement score
// @Tags         scores
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AchievementScore}
// @Failure      401  {object}  response.Response
// @Router       /users/me/achievement [get]
// @Security     BearerAuth
func (h *ScoreHandler) MyAchievement(c *gin.Context) {
	id, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	h.respondAchievement(c, id)
}

// MyRecommendationScore godoc
// @Summary      Get my recommendation score
// @Tags         scores
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RecommendationTotal}
// @Failure      401  {object}  response.Response
// @Router       /users/me/recommendation-score [get]
// @Security     BearerAuth
func (h *ScoreHandler) MyRecommendationScore(c *gin.Context) {
	id, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	h.respondRecommendation(c, id)
}

func (h *ScoreHandler) respondAchievement(c *gin.Context, userID int64) {
	score, err := h.scoreUC.ComputeAchievement(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Achievement score", score)
}

func (h *ScoreHandler) respondRecommendation(c *gin.Context, userID int64) {
	total, err := h.scoreUC.ComputeRecommendationTotal(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendation score", total)
}
