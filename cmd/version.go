package cmd

import (
	"fmt"

	"github.com/alexiusacademia/isrcb/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of isrcb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("isrcb v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Beam Design Tool")
		fmt.Printf("Based on %s\n", version.Code)
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
