package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/logger"
	"github.com/avaliaccess/aa-server/internal/middleware"
	"github.com/avaliaccess/aa-server/internal/models"
)

const userPhotoURLPrefix = "/uploads/"

type UserHandler struct {
	db      *gorm.DB
	storage storage.Storage
	log     *logger.Logger
}

func NewUserHandler(db *gorm.DB, store storage.Storage, log *logger.Logger) *UserHandler {
	return &UserHandler{db: db, storage: store, log: log}
}

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"omitempty,min=6,max=100"`
}

func (h *UserHandler) getCurrentUser(c *gin.Context) (*models.User, bool) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return nil, false
	}
	return &user, true
}

func profileResponse(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"photo_url": user.PhotoURL,
		"roles":     user.Roles,
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, ok := h.getCurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profileResponse(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.getCurrentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	user.Name = req.Name

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

func (h *UserHandler) UploadPhoto(c *gin.Context) {
	user, ok := h.getCurrentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de foto obrigatório.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "storage_error", "Erro ao ler o arquivo enviado.")
		return
	}
	defer file.Close()

	// Foto antiga sai em best-effort
	if old := strings.TrimPrefix(user.PhotoURL, userPhotoURLPrefix); old != "" && old != user.PhotoURL {
		if err := h.storage.Delete(old); err != nil && err != storage.ErrNotFound {
			h.log.Warn("failed to delete old profile photo",
				"user_id", user.ID, "file", old, "error", err)
		}
	}

	name, err := h.storage.Store(file, fileHeader.Filename)
	if err != nil {
		httperr.Internal(c, "storage_error", "Erro ao gravar a foto.")
		return
	}

	user.PhotoURL = userPhotoURLPrefix + name
	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

// ServePhoto atende /uploads/:fileName (fotos de perfil).
func (h *UserHandler) ServePhoto(c *gin.Context) {
	name := c.Param("fileName")

	path, err := h.storage.Path(name)
	if err != nil {
		httperr.NotFound(c, "file_not_found", "Arquivo não encontrado.")
		return
	}

	c.File(path)
}
