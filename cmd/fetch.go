package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/EO-DataHub/eodhp-directory-services/internal/listing"
	"github.com/EO-DataHub/eodhp-directory-services/models"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the remote user listing once and print it",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		ctx, cancel := context.WithTimeout(context.Background(), appCfg.Remote.Timeout)
		defer cancel()

		loader := listing.NewLoader(listing.NewClient(appCfg.Remote.URL, appCfg.Remote.Timeout), &log.Logger)
		state := loader.Load(ctx)
		if state.Status == listing.StatusFailed {
			fmt.Fprintln(os.Stderr, state.Message)
			os.Exit(1)
		}

		if err := writeRemoteUsers(os.Stdout, state.Users); err != nil {
			log.Fatal().Err(err).Msg("failed to render table")
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

// writeRemoteUsers renders users as a table with a header row.
func writeRemoteUsers(w io.Writer, users []models.RemoteUserRecord) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Email", "Company")
	for _, u := range users {
		if err := table.Append([]string{strconv.FormatInt(u.ID, 10), u.Name, u.Email, u.Company.Name}); err != nil {
			return fmt.Errorf("failed to append row for user %d: %w", u.ID, err)
		}
	}
	return table.Render()
}
