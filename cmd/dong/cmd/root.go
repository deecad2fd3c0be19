package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dong/internal/config"
)

type configKey struct{}

// NewRootCmd builds the dong command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dong",
		Short: "DONG - one image and one audio file in a single container",
		Long: `dong packs an image and an audio file into a single .dong container
and reads them back out again.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				loaded, err := config.LoadConfig(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}
	root.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	root.AddCommand(newPackCmd(), newUnpackCmd(), newInspectCmd(), newValidateCmd())
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func readContainerFlag(cmd *cobra.Command) (string, error) {
	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		return "", fmt.Errorf("--in is required")
	}
	return in, nil
}
