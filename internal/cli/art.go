package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagtools/id3json/internal/art"
)

var artResize int

var artCmd = &cobra.Command{
	Use:   "art",
	Short: "Inspect or embed album art directly",
}

// artEmbedCmd embeds an image file as the front cover of an audio file
// without touching its text tags. Works for MP3 and FLAC containers.
var artEmbedCmd = &cobra.Command{
	Use:   "embed <audio> <image>",
	Short: "Embed an image as an audio file's front cover",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioPath, imagePath := args[0], args[1]
		if err := requireFile(audioPath); err != nil {
			return err
		}

		cover, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("cannot read image %s: %v", imagePath, err)
		}
		if artResize > 0 {
			if cover, err = art.Resize(cover, artResize); err != nil {
				return fmt.Errorf("resize image: %w", err)
			}
		}

		handler, err := art.HandlerFor(audioPath)
		if err != nil {
			return err
		}
		if err := handler.EmbedCover(audioPath, cover); err != nil {
			return fmt.Errorf("embed cover into %s: %w", audioPath, err)
		}

		fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf("embedded %s into %s", imagePath, audioPath)))
		return nil
	},
}

// artExistsCmd reports whether an audio file carries cover art, via the
// exit code.
var artExistsCmd = &cobra.Command{
	Use:   "exists <audio>",
	Short: "Exit 0 when the audio file carries cover art, 1 otherwise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioPath := args[0]
		if err := requireFile(audioPath); err != nil {
			return err
		}

		handler, err := art.HandlerFor(audioPath)
		if err != nil {
			return err
		}
		if !handler.HasCover(audioPath) {
			return fmt.Errorf("%s has no cover art", audioPath)
		}

		fmt.Println("cover art present")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artCmd)
	artCmd.AddCommand(artEmbedCmd)
	artCmd.AddCommand(artExistsCmd)

	artEmbedCmd.Flags().IntVar(&artResize, "resize", 0, "downscale the image to fit this many pixels before embedding (0 = keep as-is)")
}
