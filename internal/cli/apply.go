package cli

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/id3json/internal/convert"
	"github.com/tagtools/id3json/internal/tag"
)

var (
	applyResizeArt  int
	applyConvertArt bool
)

// applyCmd applies a JSON sidecar's tags onto an audio file.
var applyCmd = &cobra.Command{
	Use:   "apply <audio> [sidecar] [art]",
	Short: "Apply a JSON sidecar's tags to an MP3 file",
	Long: `Apply builds a fresh ID3v2.4 tag from the sidecar's string entries and
writes it onto the audio file, replacing the tags the file carried before.
Non-string sidecar values are ignored.

When an art path is given it must exist; its bytes are embedded as the
front cover. Without an art path the new tag carries no picture.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioPath := args[0]
		if err := requireFile(audioPath); err != nil {
			return err
		}
		sidecarPath, artPath := optionalPaths(args)

		conv := convert.NewConverter(tag.ID3Codec{})
		conv.ResizeArt = applyResizeArt
		conv.ConvertArt = applyConvertArt
		return conv.Apply(audioPath, sidecarPath, artPath)
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().IntVar(&applyResizeArt, "resize-art", 0, "downscale embedded art to fit this many pixels (0 = keep as-is)")
	applyCmd.Flags().BoolVar(&applyConvertArt, "convert-art", false, "re-encode embedded art as JPEG")
}
