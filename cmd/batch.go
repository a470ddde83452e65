package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ddsforge/internal/batch"
	"ddsforge/internal/nvtt"
	"ddsforge/internal/tui"
)

var (
	batchTool string
	batchGPU  int
	batchNoUI bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Compress every texture listed in a batch manifest",
	Long: "batch reads a pipe-delimited manifest (input|output|maxExtent|format|srgbHint, " +
		"one job per line, '#' comments) and processes each job over one shared " +
		"compression context. Machine-readable progress lines go to stderr.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs, err := batch.LoadManifest(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR:Failed to open batch file: %s\n", args[0])
			return fmt.Errorf("open batch manifest: %w", err)
		}
		if len(jobs) == 0 {
			fmt.Fprintln(os.Stderr, "ERROR:No valid jobs found in batch file")
			return fmt.Errorf("no valid jobs in batch manifest")
		}

		backend := nvtt.Tool{Path: batchTool, GPU: batchGPU}
		rep := batch.NewReporter(os.Stderr, len(jobs))

		var updates chan batch.ProgressUpdate
		uiDone := make(chan struct{})
		if batchNoUI {
			close(uiDone)
		} else {
			updates = make(chan batch.ProgressUpdate, 64)
			program := tea.NewProgram(tui.NewModel(updates))
			go func() {
				_, _ = program.Run()
				close(uiDone)
			}()
		}

		stats, runErr := batch.Run(jobs, backend, rep, updates)

		if updates != nil {
			close(updates)
		}
		<-uiDone
		if runErr != nil {
			return runErr
		}

		rows := []tui.SummaryRow{
			{Label: "Textures compressed", Value: fmt.Sprintf("%d", stats.Succeeded)},
			{Label: "Failures", Value: fmt.Sprintf("%d", stats.Failed)},
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

		if stats.Failed > 0 {
			return fmt.Errorf("%d of %d jobs failed", stats.Failed, len(jobs))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchTool, "tool", "", "compression tool executable (default looked up on PATH)")
	batchCmd.Flags().IntVar(&batchGPU, "gpu", 0, "GPU adapter index, -1 to disable acceleration")
	batchCmd.Flags().BoolVar(&batchNoUI, "no-ui", false, "disable the progress UI, keep stderr protocol only")

	rootCmd.AddCommand(batchCmd)
}
