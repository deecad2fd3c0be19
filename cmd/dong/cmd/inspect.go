package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dong"
)

type summary struct {
	File      string       `json:"file"`
	Size      int64        `json:"size"`
	Truncated bool         `json:"truncated"`
	Image     mediaSummary `json:"image"`
	Audio     mediaSummary `json:"audio"`
}

type mediaSummary struct {
	MIMEType string `json:"mime"`
	Size     int    `json:"size"`
	Data     string `json:"data,omitempty"`
}

func newInspectCmd() *cobra.Command {
	var b64 bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a JSON summary of a container",
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
			s := summary{
				File:      in,
				Size:      c.Size(),
				Truncated: c.Truncated,
				Image:     summarize(c.Image, b64),
				Audio:     summarize(c.Audio, b64),
			}
			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().String("in", "", "input container")
	cmd.Flags().BoolVar(&b64, "b64", false, "include base64 payloads")
	return cmd
}

func summarize(m dong.Media, b64 bool) mediaSummary {
	s := mediaSummary{MIMEType: m.MIMEType, Size: len(m.Data)}
	if b64 {
		s.Data = m.Base64()
	}
	return s
}
