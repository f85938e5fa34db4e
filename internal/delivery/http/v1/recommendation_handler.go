package v1

import (
	"net/http"

	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

func NewRecommendationHandler(protected *gin.RouterGroup, uc domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recommendationUC: uc}

	protected.POST("/recommendations/:id/decision", handler.Decide)
}

// Decide godoc
// @Summary      Approve or reject a recommendation request
// @Description  Only the named recommender may decide, and only while the request is pending. Notes are kept on approval.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Recommendation ID"
// @Param        request  body      domain.RecommendationDecision  true  "Decision"
// @Success      200      {object}  response.Response{data=domain.Recommendation}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /recommendations/{id}/decision [post]
// @Security     BearerAuth
func (h *RecommendationHandler) Decide(c *gin.Context) {
	id, err := pathID(c, "id", "recommendation ID")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.RecommendationDecision
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	rec, err := h.recommendationUC.Decide(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendation decided", rec)
}
