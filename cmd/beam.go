package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Single beam design and analysis",
	Long: `Design and analyze one reinforced concrete beam section to IS 456:2000.

Subcommands:
  design   - Calculate required reinforcement for a given moment
  analyze  - Calculate moment capacity for a given reinforcement
  shear    - Design stirrups for a given shear
  detail   - Select bars and anchorage lengths for given steel areas

All calculations follow the IS 456 limit state method.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
