package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tagtools/id3json/internal/convert"
	"github.com/tagtools/id3json/internal/sidecar"
	"github.com/tagtools/id3json/internal/tag"
	"github.com/tagtools/id3json/internal/tui"
)

var (
	batchAggregate   bool
	batchRecurse     bool
	batchJobs        int
	batchInteractive bool
	batchVerbose     bool
)

// batchCmd extracts sidecars for whole directory trees.
var batchCmd = &cobra.Command{
	Use:   "batch-extract <paths...>",
	Short: "Extract sidecars for every MP3 file under the given paths",
	Long: `Batch-extract walks the given files and directories and extracts a JSON
sidecar (and any album art, as .jpeg) for every MP3 file found. Files whose
tags cannot be read are reported and skipped; a failure writing output
aborts the run.

With --aggregate-output no per-file sidecars are written. Instead one JSON
object keyed by file path is printed to stdout at the end. Album art is
still written next to each file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convert.TraverseOptions{
			Recurse:   batchRecurse,
			Aggregate: batchAggregate,
			Jobs:      batchJobs,
		}

		if batchInteractive {
			return runBatchInteractive(cmd.Context(), args, opts)
		}

		onProgress := func(e convert.ProgressEvent) {
			if e.Level == convert.LevelVerbose && !batchVerbose {
				return
			}
			renderEvent(os.Stderr, e)
		}

		trav := convert.NewTraverser(tag.ID3Codec{}, opts, onProgress)
		agg, err := trav.Run(cmd.Context(), args)
		if err != nil {
			return err
		}
		if err := emitAggregate(agg); err != nil {
			return err
		}

		processed, failed, _ := trav.Stats()
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("%d file(s) extracted, %d failed", processed, failed)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(&batchAggregate, "aggregate-output", false, "print one aggregated JSON document instead of per-file sidecars")
	batchCmd.Flags().BoolVar(&batchRecurse, "recurse", true, "descend into directories")
	batchCmd.Flags().IntVar(&batchJobs, "jobs", 1, "number of files processed concurrently")
	batchCmd.Flags().BoolVarP(&batchInteractive, "interactive", "i", false, "show an interactive progress view")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "report skipped files and written outputs")
}

func renderEvent(w io.Writer, e convert.ProgressEvent) {
	switch e.Level {
	case convert.LevelError:
		fmt.Fprintln(w, errorStyle.Render(e.Message))
	case convert.LevelWarning:
		fmt.Fprintln(w, warningStyle.Render(e.Message))
	case convert.LevelSuccess:
		fmt.Fprintln(w, successStyle.Render(e.Message))
	default:
		fmt.Fprintln(w, dimStyle.Render(e.Message))
	}
}

func emitAggregate(agg *sidecar.Document) error {
	if agg == nil {
		return nil
	}
	data, err := agg.Encode()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// runBatchInteractive runs the traversal in a goroutine and renders its
// progress in a Bubble Tea program until the event channel closes.
func runBatchInteractive(parent context.Context, paths []string, opts convert.TraverseOptions) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	events := make(chan convert.ProgressEvent, 64)
	trav := convert.NewTraverser(tag.ID3Codec{}, opts, func(e convert.ProgressEvent) {
		// Once the view has quit nobody drains the channel; dropping
		// events on cancellation keeps the workers from blocking.
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})

	var (
		agg    *sidecar.Document
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		agg, runErr = trav.Run(ctx, paths)
		close(events)
	}()

	if _, err := tea.NewProgram(tui.NewModel(events, cancel)).Run(); err != nil {
		cancel()
		<-done
		return err
	}
	<-done

	if runErr != nil {
		return runErr
	}
	return emitAggregate(agg)
}
