package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"Handbook/internal/calc/conversions"

	"github.com/spf13/cobra"
)

var convertOpts struct {
	from, to string
}

var convertCmd = &cobra.Command{
	Use:   "convert <quantity> <value>",
	Short: "Convert temperature, velocity, flow, pressure, power, length or gauge",
	Example: `  awpcalc convert temperature 20 --from C --to F
  awpcalc convert length "3 1/8" --from in --to mm
  awpcalc convert gauge 20#`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := conversions.Request{From: convertOpts.from, To: convertOpts.to}
		switch args[0] {
		case "length":
			req.Text = args[1]
		case "gauge":
			req.From = args[1]
		default:
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", args[1])
			}
			req.Value = &v
		}
		payload, err := json.Marshal(req)
		if err != nil {
			return err
		}
		res, err := conversions.Quantities.Eval(args[0], payload)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch r := res.(type) {
		case conversions.Length:
			fmt.Fprintf(out, "%g %s (%s)\n", r.Value, r.Unit, r.Sixteenth)
		case conversions.Gauge:
			fmt.Fprintf(out, "%s = %g mm\n", r.Gauge, r.MM)
		case conversions.Result:
			fmt.Fprintf(out, "%g %s\n", r.Value, r.Unit)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOpts.from, "from", "", "source unit")
	convertCmd.Flags().StringVar(&convertOpts.to, "to", "", "target unit")
	rootCmd.AddCommand(convertCmd)
}
