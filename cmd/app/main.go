package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tassili/cmd/fx/account_fx"
	"tassili/cmd/fx/assistant_fx"
	"tassili/cmd/fx/booking_fx"
	"tassili/cmd/fx/controllers_fx"
	"tassili/cmd/fx/db_fx"
	"tassili/cmd/fx/favorite_fx"
	"tassili/cmd/fx/mail_fx"
	"tassili/cmd/fx/memcache_fx"
	"tassili/cmd/fx/storage_fx"
	"tassili/cmd/fx/trip_fx"
	"tassili/internal/api/controllers"
	"tassili/internal/infra"
	"tassili/internal/repositories"
	"tassili/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		booking_fx.Module,
		favorite_fx.Module,
		assistant_fx.Module,
		controllers_fx.Module,

		fx.Invoke(SeedCatalog),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func SeedCatalog(tripRepo repositories.TripRepository) {
	infra.SeedCatalog(tripRepo)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	favoriteController *controllers.FavoriteController,
	assistantController *controllers.AssistantController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(corsConfig()))

	RegisterRoutes(r, accountController, tripController, bookingController, favoriteController, assistantController)

	return r
}

func corsConfig() cors.Config {
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if urls := os.Getenv("FRONTEND_URL"); urls != "" {
		for _, u := range strings.Split(urls, ",") {
			if u = strings.TrimSpace(u); u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	favoriteController *controllers.FavoriteController,
	assistantController *controllers.AssistantController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.POST("/forgot-password", accountController.ForgotPassword)
	accountGroup.POST("/verify-otp", accountController.VerifyOtpToken)
	accountGroup.POST("/reset-password", accountController.ResetPasswordWithOtp)

	profileGroup := r.Group("/accounts/me", middleware.JWTAuthMiddleware())
	profileGroup.GET("/profile", accountController.GetProfile)
	profileGroup.PUT("/profile", accountController.UpdateProfile)
	profileGroup.POST("/photo", accountController.UploadPhoto)

	tripGroup := r.Group("/trips")
	tripGroup.GET("", tripController.ListTrips)
	tripGroup.GET("/agency-packages", tripController.ListAgencyPackages)
	tripGroup.GET("/:tripId", tripController.GetTripById)

	assistantGroup := r.Group("/assistant")
	assistantGroup.POST("/messages", assistantController.SendMessage)
	assistantGroup.GET("/suggestions", assistantController.QuickSuggestions)

	bookingGroup := r.Group("/bookings", middleware.JWTAuthMiddleware())
	bookingGroup.POST("/drafts", bookingController.StartDraft)
	bookingGroup.GET("/drafts/:draftId", bookingController.GetDraft)
	bookingGroup.POST("/drafts/:draftId/travelers", bookingController.AddTraveler)
	bookingGroup.PUT("/drafts/:draftId/travelers/:travelerId", bookingController.UpdateTraveler)
	bookingGroup.DELETE("/drafts/:draftId/travelers/:travelerId", bookingController.RemoveTraveler)
	bookingGroup.PUT("/drafts/:draftId/details", bookingController.UpdateDetails)
	bookingGroup.POST("/drafts/:draftId/next", bookingController.NextStep)
	bookingGroup.POST("/drafts/:draftId/back", bookingController.BackStep)
	bookingGroup.POST("/drafts/:draftId/confirm", bookingController.Confirm)
	bookingGroup.GET("", bookingController.ListBookings)
	bookingGroup.GET("/:bookingId", bookingController.GetBooking)
	bookingGroup.POST("/:bookingId/cancel", bookingController.CancelBooking)
	bookingGroup.GET("/:bookingId/voucher", bookingController.DownloadVoucher)

	favoriteGroup := r.Group("/favorites", middleware.JWTAuthMiddleware())
	favoriteGroup.POST("/toggle", favoriteController.ToggleFavorite)
	favoriteGroup.GET("", favoriteController.ListFavorites)
	favoriteGroup.GET("/summary", favoriteController.FavoritesSummary)
}
