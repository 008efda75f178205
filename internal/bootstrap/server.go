package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/travelgo/api"
	"github.com/Domenick1991/travelgo/config"
	"github.com/Domenick1991/travelgo/internal/service/bookings"
	"github.com/Domenick1991/travelgo/internal/service/destinations"
	"github.com/Domenick1991/travelgo/internal/service/users"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Users        users.UserUseCase
	Bookings     bookings.BookingUseCase
	Destinations destinations.DestinationUseCase
	Tokens       api.TokenVerifier
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.Default()

	authHandler := api.NewAuthHandler(svc.Users)
	bookingHandler := api.NewBookingHandler(svc.Bookings)
	destinationHandler := api.NewDestinationHandler(svc.Destinations)

	// Public: credentials exchange and reference data.
	authHandler.Register(router.Group("/api/auth"))
	destinationHandler.Register(router.Group("/api/destinations"))

	// Everything touching a user's own data sits behind the bearer gate.
	gate := api.AuthRequired(svc.Tokens)

	protectedAuth := router.Group("/api/auth")
	protectedAuth.Use(gate)
	authHandler.RegisterProtected(protectedAuth)

	protectedBookings := router.Group("/api/bookings")
	protectedBookings.Use(gate)
	bookingHandler.Register(protectedBookings)

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/travelgo.swagger.json"),
		)))
	}

	return router
}
