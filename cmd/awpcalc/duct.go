package main

import (
	"fmt"

	"Handbook/internal/calc/ductulator"

	"github.com/spf13/cobra"
)

var duct struct {
	shape              string
	d, w, h            float64
	flow, length       float64
	roughness          string
	customRoughness    float64
	density, viscosity float64
}

var ductCmd = &cobra.Command{
	Use:   "duct",
	Short: "Duct velocity, friction rate and pressure loss",
	Example: `  awpcalc duct --shape circular --diameter 350 --flow 600 --length 10
  awpcalc duct --shape rectangular --width 600 --height 300 --flow 800 --length 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		req := ductulator.Request{
			Shape:             ductulator.Shape(duct.shape),
			DiameterMM:        opt(f, "diameter", duct.d),
			WidthMM:           opt(f, "width", duct.w),
			HeightMM:          opt(f, "height", duct.h),
			FlowLs:            opt(f, "flow", duct.flow),
			LengthM:           opt(f, "length", duct.length),
			Roughness:         ductulator.RoughnessPreset(duct.roughness),
			CustomRoughnessMM: opt(f, "custom-roughness", duct.customRoughness),
			Density:           opt(f, "density", duct.density),
			Viscosity:         opt(f, "viscosity", duct.viscosity),
		}
		res, err := ductulator.Evaluate(req)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Area                 %.5f m²\n", res.AreaM2)
		fmt.Fprintf(out, "Equivalent diameter  %.4f m\n", res.EquivalentDiameterM)
		fmt.Fprintf(out, "Velocity             %.3f m/s\n", res.VelocityMS)
		fmt.Fprintf(out, "Reynolds number      %.0f (%s)\n", res.ReynoldsNumber, res.Regime)
		fmt.Fprintf(out, "Friction factor      %.5f\n", res.FrictionFactor)
		fmt.Fprintf(out, "Friction rate        %.3f Pa/m\n", res.PressureGradientPaM)
		fmt.Fprintf(out, "Total loss           %.2f Pa\n", res.TotalPressureLossPa)
		fmt.Fprintf(out, "Velocity pressure    %.2f Pa\n", res.VelocityPressurePa)
		if res.Notes != "" {
			fmt.Fprintln(out, res.Notes)
		}
		return nil
	},
}

func init() {
	f := ductCmd.Flags()
	f.StringVar(&duct.shape, "shape", "circular", "circular or rectangular")
	f.Float64Var(&duct.d, "diameter", 0, "diameter (mm)")
	f.Float64Var(&duct.w, "width", 0, "width (mm)")
	f.Float64Var(&duct.h, "height", 0, "height (mm)")
	f.Float64Var(&duct.flow, "flow", 0, "airflow (L/s)")
	f.Float64Var(&duct.length, "length", 0, "straight length (m)")
	f.StringVar(&duct.roughness, "roughness", "", "roughness preset (default galvanised)")
	f.Float64Var(&duct.customRoughness, "custom-roughness", 0, "roughness (mm) with --roughness custom")
	f.Float64Var(&duct.density, "density", 0, "air density (kg/m³)")
	f.Float64Var(&duct.viscosity, "viscosity", 0, "dynamic viscosity (Pa·s)")
	rootCmd.AddCommand(ductCmd)
}
