package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/EO-DataHub/eodhp-directory-services/api/handlers"
	"github.com/EO-DataHub/eodhp-directory-services/api/services"
	"github.com/EO-DataHub/eodhp-directory-services/internal/directory"
	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/EO-DataHub/eodhp-directory-services/internal/listing"
	"github.com/EO-DataHub/eodhp-directory-services/internal/metrics"
	"github.com/EO-DataHub/eodhp-directory-services/internal/profile"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initialize event publisher when the event bus is configured
		var notifier events.Notifier
		if appCfg.Pulsar.Enabled() && appCfg.Pulsar.TopicProducer != "" {
			publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize event publisher")
			}
			defer publisher.Close()
			notifier = publisher
		}

		reconciler, err := newReconciler(notifier)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed user directory")
		}
		go func() {
			if err := reconciler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("Reconciler stopped")
			}
		}()

		// Feed events from the bus into the same reconciler
		if appCfg.Pulsar.Enabled() && appCfg.Pulsar.TopicConsumer != "" {
			consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize event consumer")
			}
			defer consumer.Close()

			go func() {
				if err := events.Consume(ctx, consumer, reconciler.Handle, &log.Logger); err != nil && !errors.Is(err, context.Canceled) {
					log.Error().Err(err).Msg("Event consumer stopped")
				}
			}()
		}

		service := &services.Service{
			Config:     appCfg,
			Reconciler: reconciler,
			Loader:     listing.NewLoader(listing.NewClient(appCfg.Remote.URL, appCfg.Remote.Timeout), &log.Logger),
			Profile:    profile.NewForm(appCfg.Profile.Initial(), appCfg.Profile.DefaultPhoto),
		}

		// Create routes
		r := mux.NewRouter()
		handlers.RegisterRoutes(r, service)
		r.Handle(appCfg.Metrics.Path, metrics.Handler()).Methods(http.MethodGet)

		addr := fmt.Sprintf("%s:%d", host, port)
		srv := &http.Server{
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatal().Err(err).Msg("could not start server")
		}

		log.Info().Msg(fmt.Sprintf("Server started at %s", addr))

		if err := runServer(ctx, srv, ln, 5*time.Second); err != nil {
			log.Error().Err(err).Msg("server stopped with error")
		}
		service.Loader.Deactivate()
		log.Info().Msg("Server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// newReconciler seeds a directory and wraps it in a reconciler.
func newReconciler(notifier events.Notifier) (*directory.Reconciler, error) {
	dir, err := directory.New(directory.SeedUsers())
	if err != nil {
		return nil, err
	}
	return directory.NewReconciler(dir, notifier, &log.Logger), nil
}

// runServer serves on ln until ctx is done, then shuts srv down and returns
// once in-flight requests have drained or the grace period ends.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		drained <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-drained
}
