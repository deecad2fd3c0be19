package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dong"
)

var errInvalid = errors.New("container is not valid")

// ValidationResult is the JSON output of the validate command.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	ImageMIME string `json:"image_mime,omitempty"`
	ImageSize int    `json:"image_size"`
	AudioMIME string `json:"audio_mime,omitempty"`
	AudioSize int    `json:"audio_size"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a container decodes completely",
		Long: `Check that a container decodes completely. Truncated payloads are
reported as errors regardless of the strict_bounds setting.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			in, err := readContainerFlag(cmd)
			if err != nil {
				return err
			}
			opts := append(cfg.ReadOptions(), dong.WithStrictBounds(true))
			var res ValidationResult
			c, err := readContainer(in, cfg.MaxFileSize(), opts...)
			if err != nil {
				res.Error = err.Error()
			} else {
				res = ValidationResult{
					Valid:     true,
					ImageMIME: c.Image.MIMEType,
					ImageSize: len(c.Image.Data),
					AudioMIME: c.Audio.MIMEType,
					AudioSize: len(c.Audio.Data),
				}
			}
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			if !res.Valid {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().String("in", "", "input container")
	return cmd
}
