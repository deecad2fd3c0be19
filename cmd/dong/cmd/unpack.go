package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dong"
	"github.com/logicossoftware/go-dong/internal/filecodec"
)

func newUnpackCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Extract the image and audio payloads of a container",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			in, err := readContainerFlag(cmd)
			if err != nil {
				return err
			}
			c, err := readContainer(in, cfg.MaxFileSize(), cfg.ReadOptions()...)
			if err != nil {
				return err
			}
			if c.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is truncated, payloads are incomplete\n", in)
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}
			sink := filecodec.DirSink{Dir: outDir}
			for _, m := range []struct {
				name  string
				media dong.Media
			}{
				{"image", c.Image},
				{"audio", c.Audio},
			} {
				p, err := sink.Save(m.name+extensionFor(m.media.MIMEType), m.media.Data)
				if err != nil {
					return fmt.Errorf("write %s: %w", m.name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().String("in", "", "input container")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	return cmd
}

func readContainer(path string, limit int64, opts ...dong.ReadOption) (*dong.Container, error) {
	data, err := filecodec.ReadFile(path, limit)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	c, err := dong.Unmarshal(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return c, nil
}
