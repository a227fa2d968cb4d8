package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avaliaccess/aa-server/internal/dto"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/middleware"
	ucReview "github.com/avaliaccess/aa-server/internal/usecase/review"
)

type ReviewHandler struct {
	createUC   *ucReview.CreateReview
	updateUC   *ucReview.UpdateReview
	deleteUC   *ucReview.DeleteReview
	listUC     *ucReview.ListReviews
	featuresUC *ucReview.GetAccessibilityFeatures
}

func NewReviewHandler(
	createUC *ucReview.CreateReview,
	updateUC *ucReview.UpdateReview,
	deleteUC *ucReview.DeleteReview,
	listUC *ucReview.ListReviews,
	featuresUC *ucReview.GetAccessibilityFeatures,
) *ReviewHandler {
	return &ReviewHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		featuresUC: featuresUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Campos booleanos e a nota usam ponteiros para que o binding consiga
// distinguir "ausente" de zero/false.
type ReviewRequest struct {
	Rating  *int   `json:"rating" binding:"required,min=0,max=5"`
	Comment string `json:"comment" binding:"max=1000"`

	HasRamp                *bool `json:"has_ramp" binding:"required"`
	HasAccessibleRestroom  *bool `json:"has_accessible_restroom" binding:"required"`
	HasAccessibleParking   *bool `json:"has_accessible_parking" binding:"required"`
	HasElevator            *bool `json:"has_elevator" binding:"required"`
	HasAccessibleEntrance  *bool `json:"has_accessible_entrance" binding:"required"`
	HasTactileFloor        *bool `json:"has_tactile_floor" binding:"required"`
	HasSignLanguageService *bool `json:"has_sign_language_service" binding:"required"`
	HasAccessibleSeating   *bool `json:"has_accessible_seating" binding:"required"`
}

func (r ReviewRequest) toInput() ucReview.RatingInput {
	return ucReview.RatingInput{
		Rating:  *r.Rating,
		Comment: r.Comment,

		HasRamp:                *r.HasRamp,
		HasAccessibleRestroom:  *r.HasAccessibleRestroom,
		HasAccessibleParking:   *r.HasAccessibleParking,
		HasElevator:            *r.HasElevator,
		HasAccessibleEntrance:  *r.HasAccessibleEntrance,
		HasTactileFloor:        *r.HasTactileFloor,
		HasSignLanguageService: *r.HasSignLanguageService,
		HasAccessibleSeating:   *r.HasAccessibleSeating,
	}
}

// ======================================================
// MUTAÇÕES
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	establishmentID, err := strconv.ParseUint(c.Param("establishmentId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), uint(establishmentID), email, req.toInput())
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_review", "Erro ao criar avaliação.")
		return
	}

	c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	review, err := h.updateUC.Execute(c.Request.Context(), uint(reviewID), email, req.toInput())
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_review", "Erro ao atualizar avaliação.")
		return
	}

	c.JSON(http.StatusOK, dto.NewReviewResponse(review))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(reviewID), email); err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_review", "Erro ao deletar avaliação.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LEITURA
// ======================================================

func (h *ReviewHandler) ListByEstablishment(c *gin.Context) {
	establishmentID, err := strconv.ParseUint(c.Param("establishmentId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	reviews, err := h.listUC.Execute(c.Request.Context(), uint(establishmentID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}

	c.JSON(http.StatusOK, dto.NewReviewResponseList(reviews))
}

func (h *ReviewHandler) GetAccessibilityFeatures(c *gin.Context) {
	establishmentID, err := strconv.ParseUint(c.Param("establishmentId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	features, err := h.featuresUC.Execute(c.Request.Context(), uint(establishmentID))
	if err != nil {
		httperr.Internal(c, "failed_to_get_features", "Erro ao calcular acessibilidade.")
		return
	}

	c.JSON(http.StatusOK, features)
}
