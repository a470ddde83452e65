package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ddsforge/internal/dds"
	"ddsforge/internal/tui"
	"ddsforge/pkg/imgutil"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Report DDS header contents without modifying files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var firstErr error
		for i, path := range args {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			if err := inspectFile(path); err != nil {
				fmt.Fprintf(os.Stdout, "%s\n  %s %s\n",
					inspectFileStyle.Render(path),
					inspectBulletStyle.Render("-"),
					inspectFailStyle.Render(err.Error()),
				)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return firstErr
	},
}

func inspectFile(path string) error {
	kind, err := imgutil.SniffFile(path)
	if err != nil {
		return err
	}
	if kind != imgutil.KindDDS {
		return fmt.Errorf("not a DDS container (%s)", kind)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr, err := dds.ParseHeader(f)
	if err != nil {
		return err
	}

	srgb := "linear"
	if hdr.HasDX10 && dds.IsSRGBCode(hdr.DXGIFormat) {
		srgb = "srgb"
	}
	variant := "legacy"
	if hdr.HasDX10 {
		variant = fmt.Sprintf("dx10 (dxgi %d)", hdr.DXGIFormat)
	}

	fmt.Fprintf(os.Stdout, "%s\n", inspectFileStyle.Render(path))
	printField("size", fmt.Sprintf("%dx%d", hdr.Width, hdr.Height))
	printField("format", hdr.FormatName)
	printField("header", variant)
	printField("color space", srgb)
	printField("mips", fmt.Sprintf("%d (full chain would be %d)",
		hdr.MipCount, dds.MipCount(int(hdr.Width), int(hdr.Height))))
	return nil
}

func printField(label, value string) {
	fmt.Fprintf(os.Stdout, "  %s %s %s\n",
		inspectBulletStyle.Render("-"),
		inspectLabelStyle.Render(label+":"),
		inspectValueStyle.Render(value),
	)
}

var (
	inspectFileStyle   = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	inspectLabelStyle  = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
	inspectValueStyle  = lipgloss.NewStyle().Foreground(tui.ColorInk)
	inspectBulletStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
	inspectFailStyle   = lipgloss.NewStyle().Foreground(tui.ColorFail)
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}
