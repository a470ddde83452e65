package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ddsforge",
	Short: "ddsforge - batch-compress DDS textures with texconv-compatible headers",
	Long: "ddsforge drives a GPU compression backend over a batch of textures and " +
		"repairs the DDS headers it writes so the output is bit-compatible with " +
		"the texconv reference encoder.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
