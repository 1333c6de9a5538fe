package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyways/skybook/api"
	"github.com/skyways/skybook/config"
	"github.com/skyways/skybook/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, sessions *api.SessionRegistry) error {
	router := gin.Default()

	flightHandler := api.NewFlightHandler(flightSvc)
	flightHandler.Register(router.Group("/flights"))

	bookingHandler := api.NewBookingHandler(sessions, flightSvc, time.Duration(cfg.Payment.TimeoutSeconds)*time.Second)
	bookingHandler.Register(router.Group("/bookings"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
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
