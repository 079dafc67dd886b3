package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/soypat/paramak/build"
	"github.com/soypat/paramak/reactor"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Print the radial and vertical builds of the reactor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := load(cmd)
		if err != nil {
			return err
		}
		return printBuilds(cmd.OutOrStdout(), e.reactor)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func printBuilds(w io.Writer, r reactor.Reactor) error {
	radial, vertical, err := r.Builds()
	if err != nil {
		return err
	}
	if err := radial.Validate(); err != nil {
		return fmt.Errorf("radial build: %w", err)
	}
	if err := vertical.Validate(); err != nil {
		return fmt.Errorf("vertical build: %w", err)
	}
	fmt.Fprintln(w, styleTitle.Render("Radial build"))
	fmt.Fprintln(w, buildTable(radial))
	fmt.Fprintln(w, styleTitle.Render("Vertical build"))
	fmt.Fprintln(w, buildTable(vertical))
	return nil
}

func buildTable(b *build.Build) string {
	ivs := b.Intervals()
	t := newTable(func(row int) bool { return ivs[row].Gap }, "component", "start", "end", "thickness", "kind")
	for _, iv := range ivs {
		kind := "layer"
		switch {
		case iv.Band:
			kind = "band"
		case iv.Gap:
			kind = "gap"
		}
		t.Row(iv.Name, num(iv.Start), num(iv.End), num(iv.Width()), kind)
	}
	return t.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
