package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the Pulsar consumer and apply user events to a seeded directory",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		if !appCfg.Pulsar.Enabled() || appCfg.Pulsar.TopicConsumer == "" {
			log.Fatal().Msg("pulsar.url and pulsar.topicConsumer must be configured")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initialize event consumer
		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		reconciler, err := newReconciler(nil)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed user directory")
		}
		go func() {
			_ = reconciler.Run(ctx)
		}()

		log.Info().Str("topic", appCfg.Pulsar.TopicConsumer).Msg("Waiting for messages...")

		// Consume messages
		if err := events.Consume(ctx, consumer, reconciler.Handle, &log.Logger); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("Event consumer stopped")
		}

		log.Info().Int("users", reconciler.Directory().Len()).Msg("Consumer stopped")
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
