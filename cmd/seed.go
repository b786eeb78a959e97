package cmd

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/EO-DataHub/eodhp-directory-services/internal/directory"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var seedTable bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the seed user directory",
	Run: func(cmd *cobra.Command, args []string) {
		setLogging(logLevel)

		users := directory.SeedUsers()

		if !seedTable {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(users); err != nil {
				log.Fatal().Err(err).Msg("Failed to encode seed users")
			}
			return
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Email", "Company", "Country")
		for _, u := range users {
			row := []string{strconv.FormatInt(u.ID, 10), u.Name, u.Email, u.Company.Name, u.Country}
			if err := table.Append(row); err != nil {
				log.Error().Err(err).Int64("user_id", u.ID).Msg("failed to append row")
			}
		}
		if err := table.Render(); err != nil {
			log.Fatal().Err(err).Msg("failed to render table")
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedTable, "table", false, "print a table instead of JSON")
}
