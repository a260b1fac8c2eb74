package main

import (
	"fmt"

	"Handbook/internal/calc/pipe"

	"github.com/spf13/cobra"
)

var pipeOpts struct {
	flow        float64
	temperature float64
	material    string
	roughness   float64
	sizes       []string
}

var pipeCmd = &cobra.Command{
	Use:     "pipe",
	Short:   "Water velocity and friction per pipe size at one flow",
	Example: `  awpcalc pipe --flow 0.5 --sizes DN20,DN25 --temperature 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		p, err := pipe.Point(pipe.ChartInput{
			Sizes:        pipeOpts.sizes,
			TemperatureC: opt(f, "temperature", pipeOpts.temperature),
			Material:     pipe.Material(pipeOpts.material),
			RoughnessMM:  opt(f, "roughness", pipeOpts.roughness),
			FlowLs:       opt(f, "flow", pipeOpts.flow),
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s %8s %8s %10s %12s\n", "Size", "ID mm", "v m/s", "Pa/m", "kPa/100 m")
		for _, r := range p.Rows {
			fmt.Fprintf(out, "%-6s %8.1f %8.3f %10.1f %12.2f\n", r.Size, r.InternalMM, r.VelocityMS, r.GradientPaM, r.KPaPer100M)
		}
		return nil
	},
}

func init() {
	f := pipeCmd.Flags()
	f.Float64Var(&pipeOpts.flow, "flow", 0, "water flow (L/s)")
	f.Float64Var(&pipeOpts.temperature, "temperature", pipe.DefaultTemperatureC, "water temperature (°C)")
	f.StringVar(&pipeOpts.material, "material", "", "pipe material (default std-wt-steel)")
	f.Float64Var(&pipeOpts.roughness, "roughness", 0, "wall roughness (mm), overrides --material")
	f.StringSliceVar(&pipeOpts.sizes, "sizes", nil, "nominal sizes, e.g. DN20,DN25 (default all)")
	rootCmd.AddCommand(pipeCmd)
}
