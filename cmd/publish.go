package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/EO-DataHub/eodhp-directory-services/internal/directory"
	"github.com/EO-DataHub/eodhp-directory-services/internal/events"
	"github.com/EO-DataHub/eodhp-directory-services/internal/validate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	publishAction string
	publishFile   string
	publishSeed   bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish created or updated user records onto the event topic",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		if publishAction != events.ActionCreated && publishAction != events.ActionUpdated {
			log.Fatal().Str("action", publishAction).Msg("action must be created or updated")
		}

		var records []json.RawMessage
		switch {
		case publishSeed:
			for _, u := range directory.SeedUsers() {
				body, err := json.Marshal(u)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to encode seed user")
				}
				records = append(records, body)
			}
		case publishFile != "":
			body, err := os.ReadFile(publishFile)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read user record")
			}
			if _, err := validate.UserRecord(body); err != nil {
				log.Fatal().Err(err).Msg("User record is malformed")
			}
			records = append(records, body)
		default:
			log.Fatal().Msg("one of --file or --seed is required")
		}

		// Initialize event publisher
		publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event publisher")
		}
		defer publisher.Close()

		for _, record := range records {
			event := events.NewEventPayload(publishAction, record)
			if err := publisher.Publish(context.Background(), event); err != nil {
				log.Error().Err(err).Str("event_id", event.ID.String()).Msg("Failed to publish user event")
				continue
			}
			log.Info().Str("event_id", event.ID.String()).Msg("Published user event")
		}
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&publishAction, "action", events.ActionCreated, "event action: created or updated")
	publishCmd.Flags().StringVar(&publishFile, "file", "", "JSON file holding one user record")
	publishCmd.Flags().BoolVar(&publishSeed, "seed", false, "publish every seed user")
}
