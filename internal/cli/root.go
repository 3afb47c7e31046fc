package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "id3json",
	Short: "Convert between ID3 tags and JSON sidecar files",
	Long: `id3json converts the ID3 tags embedded in MP3 files into plain JSON
sidecar files that can be edited or scripted with ordinary text tools, and
applies such sidecars back onto audio files. Album art embedded in a tag is
extracted alongside the sidecar and can be embedded back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Every failure path prints to stderr and
// exits non-zero.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, warningStyle.Render("cancelled"))
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// requireFile validates up front that an argument names an existing file.
func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file %s not found", path)
	}
	return nil
}

// optionalPaths unpacks the optional [sidecar] [art] positional arguments.
func optionalPaths(args []string) (sidecarPath, artPath string) {
	if len(args) > 1 {
		sidecarPath = args[1]
	}
	if len(args) > 2 {
		artPath = args[2]
	}
	return sidecarPath, artPath
}
