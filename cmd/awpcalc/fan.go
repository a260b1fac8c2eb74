package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"Handbook/internal/calc"
	"Handbook/internal/calc/fanlaws"

	"github.com/spf13/cobra"
)

var fanCmd = &cobra.Command{
	Use:   "fan <law> [symbol=value ...]",
	Short: "Fan laws: " + strings.Join(fanlaws.Laws.Names(), ", "),
	Example: `  awpcalc fan q2 q1=2 n1=1000 n2=1200 d1=0.5 d2=0.5
  awpcalc fan vp v=10`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make(map[string]float64, len(args)-1)
		for _, arg := range args[1:] {
			k, v, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected symbol=value, got %q", arg)
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: not a number: %q", k, v)
			}
			values[strings.ToLower(k)] = f
		}
		payload, err := json.Marshal(values)
		if err != nil {
			return err
		}
		res, err := fanlaws.Laws.Eval(args[0], payload)
		if err != nil {
			return err
		}
		if v, ok := res.(calc.Value); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %.4g %s\n", v.Symbol, v.Value, v.Unit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fanCmd)
}
