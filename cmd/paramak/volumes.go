package main

import (
	"fmt"
	"sort"

	"github.com/soypat/paramak/assembly"
	"github.com/soypat/paramak/reactor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "Assemble the reactor on the sdfx kernel and print part volumes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := load(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync()
		k := e.cfg.Kernel.NewKernel()
		res, err := reactor.Assemble(k, e.reactor, e.logger)
		if err != nil {
			return err
		}
		vols, err := assembly.Volumes(k, res.Parts)
		if err != nil {
			return err
		}
		e.logger.Info("assembled", zap.String("run", res.RunID), zap.Int("parts", len(res.Parts)))

		names := make([]string, 0, len(vols))
		total := 0.0
		for name, v := range vols {
			names = append(names, name)
			total += v
		}
		sort.Slice(names, func(i, j int) bool { return vols[names[i]] > vols[names[j]] })
		t := newTable(nil, "part", "volume", "share")
		for _, name := range names {
			t.Row(name, num(vols[name]), fmt.Sprintf("%.1f%%", 100*vols[name]/total))
		}
		t.Row("total", num(total), "")
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, styleTitle.Render("Part volumes"))
		fmt.Fprintln(w, t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(volumesCmd)
}
