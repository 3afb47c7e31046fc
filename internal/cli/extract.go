package cli

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/id3json/internal/convert"
	"github.com/tagtools/id3json/internal/tag"
)

// extractCmd writes one file's ID3 tags out as a JSON sidecar.
var extractCmd = &cobra.Command{
	Use:   "extract <audio> [sidecar] [art]",
	Short: "Write an MP3 file's ID3 tags out as a JSON sidecar",
	Long: `Extract reads the ID3 tags of an MP3 file and writes them to a JSON
sidecar file, recreating it even if it already exists. If the tag carries an
embedded picture, its raw bytes are written to the art path as well.

The sidecar path defaults to the audio path with the extension replaced by
.json, the art path likewise with .jpg.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioPath := args[0]
		if err := requireFile(audioPath); err != nil {
			return err
		}
		sidecarPath, artPath := optionalPaths(args)

		conv := convert.NewConverter(tag.ID3Codec{})
		return conv.Extract(audioPath, sidecarPath, artPath)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
