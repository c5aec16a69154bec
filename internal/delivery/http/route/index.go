package route

import (
	"database/sql"

	"tradepost/internal/config"
	httpHandler "tradepost/internal/delivery/http/handler"
	"tradepost/internal/delivery/http/middleware"
	mongorepo "tradepost/internal/repository/mongodb"
	repo "tradepost/internal/repository/postgresql"
	service "tradepost/internal/service/postgresql"
	"tradepost/internal/userclient"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "tradepost/docs"
)

func SetupRoute(app *gin.Engine, db *sql.DB, mongoClient *mongo.Client, cfg *config.Config) {
	// --- REPOSITORIES ---
	exchangeRepo := repo.NewExchangeRepository(db)
	listingRepo := repo.NewListingRepository(db)
	stateRepo := repo.NewStateRepository(db)
	commentRepo := repo.NewCommentRepository(db)
	logRepo := mongorepo.NewLogRepository(mongoClient, cfg.MongoDatabase)

	users := userclient.New(cfg.UserServiceBaseURL, cfg.UserServiceAPIPath)

	// --- SERVICES ---
	exchangeService := service.NewExchangeService(exchangeRepo, listingRepo, stateRepo, logRepo, users, cfg.States)
	listingService := service.NewListingService(listingRepo, users, cfg.States)
	commentService := service.NewCommentService(commentRepo, listingRepo, users)

	// --- HANDLERS ---
	exchangeHandler := httpHandler.NewExchangeHandler(exchangeService)
	listingHandler := httpHandler.NewListingHandler(listingService)
	commentHandler := httpHandler.NewCommentHandler(commentService)
	stateHandler := httpHandler.NewStateHandler(stateRepo)

	api := app.Group("/api")

	// --- SWAGGER/OPENAPI DOCUMENTATION ROUTE ---
	app.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(0),
	))

	// --- Exchange negotiation workflow ---
	exchanges := api.Group("/exchanges", middleware.AuthRequired())
	exchanges.POST("", exchangeHandler.CreateExchange)
	exchanges.POST("/:id/accept", exchangeHandler.AcceptExchange)
	exchanges.POST("/:id/reject", exchangeHandler.RejectExchange)
	exchanges.POST("/:id/confirm", exchangeHandler.ConfirmExchange)
	exchanges.POST("/:id/revert", exchangeHandler.RevertExchange)
	exchanges.GET("/received", exchangeHandler.GetReceivedExchanges)
	exchanges.GET("/sent", exchangeHandler.GetSentExchanges)

	// --- Listings (public reads, authenticated writes) ---
	listings := api.Group("/listings")
	listings.GET("", listingHandler.GetAllListings)
	listings.GET("/:id", listingHandler.GetListingByID)
	listings.GET("/author/:id", listingHandler.GetListingsByAuthor)
	listings.POST("", middleware.AuthRequired(), listingHandler.CreateListing)
	listings.PUT("/:id", middleware.AuthRequired(), listingHandler.UpdateListing)
	listings.DELETE("/:id", middleware.AuthRequired(), listingHandler.DeleteListing)

	// --- Availability state catalog (read only) ---
	states := api.Group("/states")
	states.GET("", stateHandler.GetAllStates)
	states.GET("/:id", stateHandler.GetStateByID)

	// --- Comments ---
	comments := api.Group("/comments")
	comments.GET("/listing/:id", commentHandler.GetCommentsByListing)
	comments.GET("/author/:id", commentHandler.GetCommentsByAuthor)
	comments.POST("", middleware.AuthRequired(), commentHandler.CreateComment)
	comments.PUT("/:id", middleware.AuthRequired(), commentHandler.UpdateComment)
	comments.DELETE("/:id", middleware.AuthRequired(), commentHandler.DeleteComment)
}
