package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainEst "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/dto"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/httpresp"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/middleware"
	ucEst "github.com/avaliaccess/aa-server/internal/usecase/establishment"
)

type EstablishmentHandler struct {
	createUC *ucEst.CreateEstablishment
	updateUC *ucEst.UpdateEstablishment
	deleteUC *ucEst.DeleteEstablishment
	getUC    *ucEst.GetEstablishments
	searchUC *ucEst.SearchEstablishments

	storage storage.Storage
}

func NewEstablishmentHandler(
	createUC *ucEst.CreateEstablishment,
	updateUC *ucEst.UpdateEstablishment,
	deleteUC *ucEst.DeleteEstablishment,
	getUC *ucEst.GetEstablishments,
	searchUC *ucEst.SearchEstablishments,
	store storage.Storage,
) *EstablishmentHandler {
	return &EstablishmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		searchUC: searchUC,
		storage:  store,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EstablishmentRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Address string `json:"address" binding:"required,max=300"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"required,len=2"`
	Type    string `json:"type" binding:"required,max=100"`
}

func (r EstablishmentRequest) toInput() ucEst.EstablishmentInput {
	return ucEst.EstablishmentInput{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Type:    r.Type,
	}
}

// bindEstablishmentForm lê a parte "establishment" (JSON) e a foto
// opcional do multipart.
func bindEstablishmentForm(c *gin.Context) (*EstablishmentRequest, *ucEst.PhotoUpload, bool) {
	raw := c.PostForm("establishment")
	if raw == "" {
		httperr.BadRequest(c, "invalid_request", "Parte 'establishment' obrigatória.")
		return nil, nil, false
	}

	var req EstablishmentRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return nil, nil, false
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Dados inválidos na requisição.")
		return nil, nil, false
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return &req, nil, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "storage_error", "Erro ao ler a foto enviada.")
		return nil, nil, false
	}
	// fechado pelo gin ao fim da requisição junto com o form
	return &req, &ucEst.PhotoUpload{Reader: file, OriginalName: fileHeader.Filename}, true
}

// ======================================================
// CRUD
// ======================================================

func (h *EstablishmentHandler) Create(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	req, photo, ok := bindEstablishmentForm(c)
	if !ok {
		return
	}

	est, err := h.createUC.Execute(c.Request.Context(), email, req.toInput(), photo)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_establishment", "Erro ao criar estabelecimento.")
		return
	}

	c.JSON(http.StatusCreated, dto.NewEstablishmentResponse(est))
}

func (h *EstablishmentHandler) Update(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	req, photo, ok := bindEstablishmentForm(c)
	if !ok {
		return
	}

	est, err := h.updateUC.Execute(c.Request.Context(), uint(id), email, req.toInput(), photo)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_establishment", "Erro ao atualizar estabelecimento.")
		return
	}

	c.JSON(http.StatusOK, dto.NewEstablishmentResponse(est))
}

func (h *EstablishmentHandler) Delete(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), email); err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_establishment", "Erro ao deletar estabelecimento.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LEITURA
// ======================================================

func (h *EstablishmentHandler) List(c *gin.Context) {
	ests, err := h.getUC.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_establishments", "Erro ao listar estabelecimentos.")
		return
	}
	c.JSON(http.StatusOK, dto.NewEstablishmentResponseList(ests))
}

func (h *EstablishmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	est, err := h.getUC.ByID(c.Request.Context(), uint(id))
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_establishment", "Erro ao buscar estabelecimento.")
		return
	}

	c.JSON(http.StatusOK, dto.NewEstablishmentResponse(est))
}

func (h *EstablishmentHandler) ListByCity(c *gin.Context) {
	ests, err := h.getUC.ByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_establishments", "Erro ao listar estabelecimentos.")
		return
	}
	c.JSON(http.StatusOK, dto.NewEstablishmentResponseList(ests))
}

func (h *EstablishmentHandler) ListByType(c *gin.Context) {
	ests, err := h.getUC.ByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_establishments", "Erro ao listar estabelecimentos.")
		return
	}
	c.JSON(http.StatusOK, dto.NewEstablishmentResponseList(ests))
}

// ======================================================
// BUSCA
// ======================================================

func (h *EstablishmentHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "12"))

	params := domainEst.SearchParams{
		Name:  c.Query("name"),
		City:  c.Query("city"),
		State: c.Query("state"),
		Type:  c.Query("type"),

		Page: page,
		Size: size,

		SortBy:        c.DefaultQuery("sortBy", "createdAt"),
		SortDirection: c.DefaultQuery("sortDirection", "desc"),
	}

	ests, total, err := h.searchUC.Execute(c.Request.Context(), params)
	if err != nil {
		httperr.Internal(c, "failed_to_search_establishments", "Erro na busca de estabelecimentos.")
		return
	}

	httpresp.Page(c, dto.NewEstablishmentResponseList(ests), page, size, total)
}

// ======================================================
// FOTO
// ======================================================

func (h *EstablishmentHandler) GetPhoto(c *gin.Context) {
	name := c.Param("fileName")

	path, err := h.storage.Path(name)
	if err != nil {
		httperr.NotFound(c, "file_not_found", "Arquivo não encontrado.")
		return
	}

	c.File(path)
}
