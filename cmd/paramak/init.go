package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/paramak/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a config file holding the defaults",
	Long:  "Write a config file holding the defaults. The format follows the file extension, toml or yaml. The default file is paramak.toml.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "paramak.toml"
		if len(args) == 1 {
			path = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")
		flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
		if force {
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		}
		f, err := os.OpenFile(path, flag, 0o644)
		if err != nil {
			return err
		}
		format := strings.TrimPrefix(filepath.Ext(path), ".")
		if err := config.Encode(f, config.Default(), format); err != nil {
			f.Close()
			os.Remove(path)
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
