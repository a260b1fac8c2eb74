package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"Handbook/internal/filters"
	"Handbook/internal/tables"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the reference tables and the filter catalogue",
}

var tableCmd = &cobra.Command{
	Use:     "table <name> [query]",
	Short:   "Search a reference table; with no name, list the tables",
	Example: `  awpcalc search table cooling-loads office general`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, t := range tables.List() {
				fmt.Fprintf(out, "%-28s %s\n", t.Name, t.Title)
			}
			return nil
		}
		res, err := tables.Search(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))
		for _, row := range res.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		tw.Flush()
		fmt.Fprintln(out, res.Summary)
		return nil
	},
}

var filterOpts struct {
	source, path string
	code         string
	classes      []string
	basis        string
	h, w, d, tol float64
}

var filtersCmd = &cobra.Command{
	Use:     "filters",
	Short:   "Find catalogue filters nearest a size",
	Example: `  awpcalc search filters --h 592 --w 592 --d 47 --tol 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := filters.Load(cmd.Context(), filters.Source(filterOpts.source), filterOpts.path)
		if err != nil {
			return err
		}
		f := cmd.Flags()
		res, err := catalog.Search(filters.Query{
			Code:    filterOpts.code,
			Classes: filterOpts.classes,
			Basis:   filters.Basis(filterOpts.basis),
			H:       opt(f, "h", filterOpts.h),
			W:       opt(f, "w", filterOpts.w),
			D:       opt(f, "d", filterOpts.d),
			Tol:     opt(f, "tol", filterOpts.tol),
		})
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Code\tActual\tNominal\tL/s\tPa\tClass\tΔ")
		for _, r := range res.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\t%s\t%s\n",
				r.Code, r.ActualSize, r.NominalSize, r.AirflowLs, r.InitialResPa, r.Classification, r.Delta)
		}
		tw.Flush()
		fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
		return nil
	},
}

func init() {
	f := filtersCmd.Flags()
	f.StringVar(&filterOpts.source, "source", string(filters.SourceEmbedded), "embedded, csv, xlsx or postgres")
	f.StringVar(&filterOpts.path, "path", "", "file path or connection string for --source")
	f.StringVar(&filterOpts.code, "code", "", "product code substring")
	f.StringSliceVar(&filterOpts.classes, "class", nil, "classification (repeatable)")
	f.StringVar(&filterOpts.basis, "basis", string(filters.Actual), "actual or nominal")
	f.Float64Var(&filterOpts.h, "h", 0, "height (mm)")
	f.Float64Var(&filterOpts.w, "w", 0, "width (mm)")
	f.Float64Var(&filterOpts.d, "d", 0, "depth (mm)")
	f.Float64Var(&filterOpts.tol, "tol", 0, "size tolerance (mm)")

	searchCmd.AddCommand(tableCmd, filtersCmd)
	rootCmd.AddCommand(searchCmd)
}
