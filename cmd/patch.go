package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ddsforge/internal/dds"
)

var patchFormat string

var patchCmd = &cobra.Command{
	Use:   "patch <file>...",
	Short: "Repair backend-written DDS headers in place",
	Long: "patch applies the texconv-compatibility header fixes (linear-size flag " +
		"and value, depth, reserved region, DX10 alpha mode) to already-written " +
		"DDS files. Dimensions and format are read from each file's own header " +
		"unless --format overrides the format.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var firstErr error
		for _, path := range args {
			if err := patchFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			fmt.Fprintf(os.Stdout, "patched %s\n", path)
		}
		return firstErr
	},
}

func patchFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	hdr, err := dds.ParseHeader(f)
	f.Close()
	if err != nil {
		return err
	}

	name := patchFormat
	if name == "" {
		name = hdr.FormatName
	}

	return dds.Patch(path, int(hdr.Width), int(hdr.Height), dds.ParseFormat(name))
}

func init() {
	patchCmd.Flags().StringVar(&patchFormat, "format", "", "override block format for linear-size arithmetic (bc1..bc7)")

	rootCmd.AddCommand(patchCmd)
}
