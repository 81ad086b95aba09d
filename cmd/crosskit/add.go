package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosskit-dev/crosskit/internal/config"
	"github.com/crosskit-dev/crosskit/internal/errors"
	"github.com/crosskit-dev/crosskit/internal/installer"
	"github.com/crosskit-dev/crosskit/internal/logger"
	"github.com/crosskit-dev/crosskit/internal/prompt"
	"github.com/crosskit-dev/crosskit/internal/registry"
	"github.com/crosskit-dev/crosskit/internal/rewrite"
)

func addCmd() *cobra.Command {
	var (
		overwrite bool
		cwd       string
		destPath  string
	)

	cmd := &cobra.Command{
		Use:   "add [components...]",
		Short: "Add components to your project",
		Long: `Add components to your project.

Components are copied to your project as source code that you own,
together with their transitive dependencies. Run without arguments to
pick components interactively.

Examples:
  crosskit add dialog
  crosskit add button alert-dialog
  crosskit add dialog --overwrite
  crosskit add dialog --cwd ./apps/mobile`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prompt.NewTerminal(os.Stdin, os.Stdout)
			return runAdd(args, overwrite, cwd, destPath, p)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files without prompting")
	cmd.Flags().StringVar(&cwd, "cwd", ".", "Working directory of the target project")
	cmd.Flags().StringVar(&destPath, "path", "", "Override component output path")

	return cmd
}

func runAdd(args []string, overwrite bool, cwd, destPath string, p prompt.Prompter) error {
	workDir, err := filepath.Abs(cwd)
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	if info, err := os.Stat(workDir); err != nil || !info.IsDir() {
		return errors.New("E101").
			WithDetail("Directory " + workDir + " does not exist").
			WithSuggestion("Pass an existing project directory via --cwd")
	}

	catalog, err := registry.Load()
	if err != nil {
		return err
	}

	cfg, err := config.Load(workDir)
	if config.IsNotFound(err) {
		logger.Info("No %s found. Let's set one up.", config.ConfigFileName)
		fmt.Println()
		cfg, err = config.Create(workDir, p)
	}
	if err != nil {
		return err
	}

	paths, err := cfg.Resolve(workDir)
	if err != nil {
		return err
	}
	if destPath != "" {
		// Destination override is accepted but not applied yet.
		logger.Warn("--path is informational; components install to %s", paths.Components)
	}

	names := args
	if len(names) == 0 {
		names, err = p.Select("Which components would you like to add?", catalog.UINames())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			logger.Info("No components selected.")
			return nil
		}
	}

	resolved, err := catalog.Resolve(names)
	if err != nil {
		return err
	}

	logger.Info("Installing %d component(s)...", len(resolved))
	for _, comp := range resolved {
		if len(comp.Dependencies) > 0 {
			logger.Debug("%s -> [%s]", comp.Name, strings.Join(comp.Dependencies, ", "))
		}
	}
	fmt.Println()

	rules := rewrite.DefaultRules(cfg.Aliases.Components, cfg.Aliases.Lib)
	extra, err := rewrite.LoadRules(filepath.Join(workDir, filepath.FromSlash(rewrite.RulesFileName)))
	if err != nil {
		return err
	}
	rules = append(rules, extra...)

	ins := &installer.Installer{
		Paths:     paths,
		Platform:  cfg.Platforms,
		Source:    registry.Source(),
		Rules:     rules,
		Prompter:  p,
		Overwrite: overwrite,
	}

	summary, err := ins.Install(resolved)
	if err != nil {
		return err
	}

	fmt.Println()
	logger.Success("Done: %d file(s) written, %d skipped", summary.Written, summary.Skipped)

	if pkgs := installer.Packages(resolved, cfg.Platforms); len(pkgs) > 0 {
		manager := installer.DetectPackageManager(workDir)
		fmt.Println()
		logger.Info("These components need the following packages:")
		logger.Info("  %s add %s", manager, strings.Join(pkgs, " "))
		logger.Info("(crosskit does not install packages for you yet)")
	}

	return nil
}
