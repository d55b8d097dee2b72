package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gnana997/compdoc/pkg/config"
)

// initFileName is written by "compdoc init".
const initFileName = "compdoc.yaml"

// projectFile is the on-disk layout of a compdoc project file.
type projectFile struct {
	NamingConvention []string `yaml:"naming_convention"`
	Ignore           []string `yaml:"ignore"`
	LogLevel         string   `yaml:"log_level"`
	LogFile          string   `yaml:"log_file,omitempty"`
}

func newProjectFile(cfg *config.Config) projectFile {
	return projectFile{
		NamingConvention: cfg.NamingConvention,
		Ignore:           cfg.Ignore,
		LogLevel:         cfg.LogLevel,
		LogFile:          cfg.LogFile,
	}
}

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter compdoc.yaml into the project root",
		Example: `  # Initialize in the current directory
  compdoc init

  # Initialize another project, enabling both conventions
  compdoc init -r ./web --naming-convention pascal,kebab

  # Overwrite an existing file
  compdoc init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(a.root, initFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists. Use --force to overwrite", path)
			}

			// An existing file is being replaced, so it is not read.
			cfg, err := config.LoadWithoutFile(a.root, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(newProjectFile(cfg))
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			data = append([]byte("# compdoc project settings\n"), data...)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing compdoc.yaml")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if a.cfg.FileUsed != "" {
				fmt.Fprintf(out, "# from %s\n", a.cfg.FileUsed)
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(newProjectFile(a.cfg)); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
