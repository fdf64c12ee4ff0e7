package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ramazanbat/venue-booking/handlers"
	"github.com/ramazanbat/venue-booking/middleware"
	"github.com/ramazanbat/venue-booking/models"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes wires all HTTP endpoints onto the router.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	venueHandler *handlers.VenueHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
	paymentMethodHandler *handlers.PaymentMethodHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	// Registration and login.
	router.Post("/users/register", authHandler.Register)
	router.Post("/users/storenewuserdata", authHandler.StoreNewUserData)
	router.Post("/users/sendotp", authHandler.SendOTP)
	router.Post("/users/verifyotp", authHandler.VerifyOTP)
	router.Post("/auth/login", authHandler.Login)

	// Venue catalog is readable without a token.
	router.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.List)
		r.Get("/{id}", venueHandler.GetByID)
		r.Get("/{id}/courts", venueHandler.ListCourts)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(models.RoleOwner, models.RoleAdmin))

			r.Post("/", venueHandler.Create)
			r.Post("/{id}/courts", venueHandler.CreateCourt)
			r.Post("/{id}/photos", venueHandler.UploadPhoto)
		})
	})

	// Live booking events per venue.
	router.Get("/ws/venues/{venueID}", webSocketHandler.ServeVenueEvents)

	router.Route("/users/{id}", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)
		r.Get("/bookings", bookingHandler.ListUserBookings)

		r.Route("/payment-methods", func(r chi.Router) {
			r.Post("/", paymentMethodHandler.Add)
			r.Get("/", paymentMethodHandler.List)
			r.Delete("/{methodID}", paymentMethodHandler.Delete)
			r.Put("/{methodID}/default", paymentMethodHandler.SetDefault)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Patch("/active", userHandler.SetActive)
		})
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/", bookingHandler.Create)
		r.Get("/{id}/payments", paymentHandler.ListByBooking)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
			r.Patch("/{id}/status", bookingHandler.UpdateStatus)
		})
	})

	router.Route("/payments", func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", paymentHandler.Record)
	})

	router.Route("/dashboard", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
		r.Get("/stats", dashboardHandler.GetStats)
	})
}
