package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pillaihoc/phoccy/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize phoccy configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure phoccy and generates a .phoccy.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
