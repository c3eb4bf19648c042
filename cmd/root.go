package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/nobatclinic/nobat_backend/cmd/http"
	systemcmd "github.com/nobatclinic/nobat_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nobat",
	Short: "Nobat appointment booking backend for a single medical clinic.",
	Long: `Nobat is the booking backend for a single medical clinic.
It manages the slot schedule, appointment lifecycle, reschedule requests
and patient notifications behind one HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
