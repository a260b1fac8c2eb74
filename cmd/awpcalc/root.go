package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "awpcalc",
	Short: "Air and water piping handbook calculators",
	Long: `awpcalc evaluates the handbook calculators without the web UI.

Subcommands:
  duct     - duct friction (ductulator)
  pipe     - water pipe friction at one flow
  convert  - unit, fraction and gauge conversions
  search   - reference tables and the filter catalogue
  fan      - fan laws`,
	SilenceUsage: true,
}

// opt returns a pointer to v when the flag was given, so absent flags
// reach the calculators as "not entered".
func opt(flags *pflag.FlagSet, name string, v float64) *float64 {
	if !flags.Changed(name) {
		return nil
	}
	return &v
}
