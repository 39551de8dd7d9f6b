package cmd

import (
	"fmt"
	"os"

	"flightdeals-cli/store"
	"flightdeals-cli/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

var datasetFlag string

var rootCmd = &cobra.Command{
	Use:   "flightdeals",
	Short: "Browse flight search results from the terminal",
	Long:  "Sort, filter and page through a flight-search result set without leaving the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(tui.New(datasetPath()), tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flightdeals %s", version)
		if commit != "none" && commit != "" {
			fmt.Printf(" (%s)", commit)
		}
		fmt.Println()
	},
}

// datasetPath picks the dataset override: the flag wins, then the
// environment. Empty means the embedded dataset.
func datasetPath() string {
	if datasetFlag != "" {
		return datasetFlag
	}
	return store.DatasetPath()
}

func Execute() {
	// A .env next to the binary may carry FLIGHTDEALS_DATASET; absence
	// is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "path to a search-response JSON file")
	rootCmd.AddCommand(listCmd, versionCmd)
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
