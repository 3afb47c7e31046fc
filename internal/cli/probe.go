package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagtools/id3json/internal/probe"
)

// probeCmd prints a format-agnostic metadata summary.
var probeCmd = &cobra.Command{
	Use:   "probe <audio>",
	Short: "Print an audio file's metadata summary",
	Long: `Probe reads whatever common metadata an audio file carries and prints a
short summary. Unlike extract it is read-only and not limited to MP3: FLAC,
M4A and OGG containers work too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := requireFile(path); err != nil {
			return err
		}

		s, err := probe.Read(path)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s, %s)\n", path, s.Format, s.FileType)
		printField("title", s.Title)
		printField("artist", s.Artist)
		printField("album", s.Album)
		printField("album artist", s.AlbumArtist)
		printField("genre", s.Genre)
		if s.Year != 0 {
			printField("year", fmt.Sprintf("%d", s.Year))
		}
		if s.Track != 0 {
			track := fmt.Sprintf("%d", s.Track)
			if s.TrackTotal != 0 {
				track = fmt.Sprintf("%d/%d", s.Track, s.TrackTotal)
			}
			printField("track", track)
		}
		if s.Picture != nil {
			fmt.Fprintln(os.Stdout, dimStyle.Render(
				fmt.Sprintf("  picture: %s, %s, %d bytes", s.Picture.Type, s.Picture.MIME, s.Picture.Size)))
		}
		return nil
	},
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s: %s\n", name, value)
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
