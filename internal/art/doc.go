// Package art handles album-art extraction and embedding.
//
// FirstPicture and EmbedFrontCover operate on in-memory tag sets and back
// the sidecar extract/apply pipeline. CoverHandler implementations write
// cover art straight into audio containers (MP3 and FLAC) for the art
// subcommand. Resize and ConvertToJPEG prepare images before embedding.
package art
