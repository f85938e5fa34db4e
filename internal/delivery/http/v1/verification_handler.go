package v1

import (
	"net/http"

	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationUC domain.VerificationUsecase
}

// NewVerificationHandler registers the admin review queue. r must already be
// guarded by the admin key middleware.
func NewVerificationHandler(r *gin.RouterGroup, uc domain.VerificationUsecase) {
	handler := &VerificationHandler{verificationUC: uc}

	verifications := r.Group("/verifications")
	{
		verifications.GET("/pending", handler.ListPending)
		verifications.POST("/education/:id", handler.DecideEducation)
		verifications.POST("/work/:id", handler.DecideWork)
	}
}

// ListPending godoc
// @Summary      List pending verifications
// @Description  Education and work entries waiting for an admin decision
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PendingVerifications}
// @Failure      401  {object}  response.Response
// @Router       /admin/verifications/pending [get]
// @Security     AdminKey
func (h *VerificationHandler) ListPending(c *gin.Context) {
	pending, err := h.verificationUC.ListPending(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pending verifications", pending)
}

// DecideEducation godoc
// @Summary      Approve or reject an education entry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Education ID"
// @Param        request  body      domain.DecisionRequest  true  "Decision"
// @Success      200      {object}  response.Response{data=domain.EducationEntry}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /admin/verifications/education/{id} [post]
// @Security     AdminKey
func (h *VerificationHandler) DecideEducation(c *gin.Context) {
	id, err := pathID(c, "id", "education ID")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	entry, err := h.verificationUC.DecideEducation(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education verification updated", entry)
}

// DecideWork godoc
// @Summary      Approve or reject a work experience
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Work experience ID"
// @Param        request  body      domain.DecisionRequest  true  "Decision"
// @Success      200      {object}  response.Response{data=domain.WorkExperience}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /admin/verifications/work/{id} [post]
// @Security     AdminKey
func (h *VerificationHandler) DecideWork(c *gin.Context) {
	id, err := pathID(c, "id", "work experience ID")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	work, err := h.verificationUC.DecideWork(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work verification updated", work)
}
