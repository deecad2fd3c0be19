package cmd

import (
	"fmt"
	"os"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dong"
)

func newPackCmd() *cobra.Command {
	var imagePath, audioPath, imageType, audioType, outName string
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Bundle an image and an audio file into a container",
		Long: `Bundle an image and an audio file into a container.

Media types are taken from the file extension, falling back to content
sniffing, unless --image-type or --audio-type is given. Without --out the
container is named <ksuid>.dong in the configured output directory. Ending
the name in .zst, .lz4 or .br compresses the saved file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			image, closeImage, err := openAsset(imagePath, imageType)
			if err != nil {
				return fmt.Errorf("image: %w", err)
			}
			defer closeImage()
			audio, closeAudio, err := openAsset(audioPath, audioType)
			if err != nil {
				return fmt.Errorf("audio: %w", err)
			}
			defer closeAudio()

			data, err := dong.Marshal(image, audio, cfg.WriteOptions()...)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outName == "" {
				outName = ksuid.New().String() + ".dong"
			}
			p, err := cfg.Sink().Save(outName, data)
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Packed %s (%s) and %s (%s) into %s\n",
				imagePath, image.MediaType, audioPath, audio.MediaType, p)
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "image file")
	cmd.Flags().StringVar(&audioPath, "audio", "", "audio file")
	cmd.Flags().StringVar(&imageType, "image-type", "", "override the detected image media type")
	cmd.Flags().StringVar(&audioType, "audio-type", "", "override the detected audio media type")
	cmd.Flags().StringVarP(&outName, "out", "o", "", "output file name")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}

// openAsset opens path as a file-backed asset. The returned func closes it.
func openAsset(path, mediaType string) (dong.Asset, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return dong.Asset{}, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return dong.Asset{}, nil, err
	}
	if mediaType == "" {
		mediaType, err = detectMediaType(path, f)
		if err != nil {
			f.Close()
			return dong.Asset{}, nil, err
		}
	}
	src := dong.NewReaderAtSource(f, st.Size())
	return dong.NewAsset(mediaType, src), func() { f.Close() }, nil
}
