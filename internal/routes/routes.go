package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avaliaccess/aa-server/internal/audit"
	"github.com/avaliaccess/aa-server/internal/config"
	"github.com/avaliaccess/aa-server/internal/handlers"
	"github.com/avaliaccess/aa-server/internal/infra/repository"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/logger"
	"github.com/avaliaccess/aa-server/internal/middleware"
	ucEstablishment "github.com/avaliaccess/aa-server/internal/usecase/establishment"
	ucReview "github.com/avaliaccess/aa-server/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *logger.Logger,
	store storage.Storage,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reviewRepo := repository.NewReviewGormRepository(db)
	establishmentRepo := repository.NewEstablishmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — REVIEWS
	// ======================================================
	createReviewUC := ucReview.NewCreateReview(reviewRepo, auditDispatcher)
	updateReviewUC := ucReview.NewUpdateReview(reviewRepo, auditDispatcher)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo, auditDispatcher)
	listReviewsUC := ucReview.NewListReviews(reviewRepo)
	featuresUC := ucReview.NewGetAccessibilityFeatures(reviewRepo)

	// ======================================================
	// 🧠 USE CASES — ESTABLISHMENTS
	// ======================================================
	createEstablishmentUC := ucEstablishment.NewCreateEstablishment(
		establishmentRepo,
		store,
		auditDispatcher,
	)
	updateEstablishmentUC := ucEstablishment.NewUpdateEstablishment(
		establishmentRepo,
		store,
		auditDispatcher,
		log,
	)
	deleteEstablishmentUC := ucEstablishment.NewDeleteEstablishment(
		establishmentRepo,
		store,
		auditDispatcher,
		log,
	)
	getEstablishmentsUC := ucEstablishment.NewGetEstablishments(establishmentRepo)
	searchEstablishmentsUC := ucEstablishment.NewSearchEstablishments(establishmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, store, log)

	establishmentHandler := handlers.NewEstablishmentHandler(
		createEstablishmentUC,
		updateEstablishmentUC,
		deleteEstablishmentUC,
		getEstablishmentsUC,
		searchEstablishmentsUC,
		store,
	)

	reviewHandler := handlers.NewReviewHandler(
		createReviewUC,
		updateReviewUC,
		deleteReviewUC,
		listReviewsUC,
		featuresUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌍 ARQUIVOS (fotos de perfil)
	// ======================================================
	r.GET("/uploads/:fileName", userHandler.ServePhoto)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 LEITURA PÚBLICA
		// ------------------------------
		establishments := api.Group("/establishments")
		{
			establishments.GET("", establishmentHandler.List)
			establishments.GET("/search", establishmentHandler.Search)
			establishments.GET("/city/:city", establishmentHandler.ListByCity)
			establishments.GET("/type/:type", establishmentHandler.ListByType)
			establishments.GET("/photo/:fileName", establishmentHandler.GetPhoto)
			establishments.GET("/:id", establishmentHandler.GetByID)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/establishment/:establishmentId", reviewHandler.ListByEstablishment)
			reviews.GET("/establishment/:establishmentId/accessibility", reviewHandler.GetAccessibilityFeatures)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users/me", userHandler.Me)
			secured.PUT("/users/profile", userHandler.UpdateProfile)
			secured.PUT("/users/profile/photo", userHandler.UploadPhoto)

			secured.POST("/establishments", establishmentHandler.Create)
			secured.PUT("/establishments/:id", establishmentHandler.Update)
			secured.DELETE("/establishments/:id", establishmentHandler.Delete)

			secured.POST("/reviews/establishment/:establishmentId", reviewHandler.Create)
			secured.PUT("/reviews/:reviewId", reviewHandler.Update)
			secured.DELETE("/reviews/:reviewId", reviewHandler.Delete)

			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
