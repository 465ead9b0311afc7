package main

import (
	"fmt"
	"os"

	"statuskit/internal/app"
	"statuskit/internal/registry"
	"statuskit/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	logger := app.NewLogger(os.Stderr)

	root := &cobra.Command{
		Use:     "statuskit",
		Short:   "Live status line for interactive agent sessions",
		Long:    "statuskit drives a live terminal status line: task timer, model and token usage, git and environment tags.\n\nRun without arguments to start the interactive session view.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, logger)
		},
	}
	root.Flags().String("config", "", "path to config file (default: platform config dir)")
	root.Flags().String("cwd", "", "working directory to display (default: current)")

	root.AddCommand(serversCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, logger *app.Logger) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; statuskit needs an interactive session")
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = app.DefaultConfigPath()
	}
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}

	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		if cwd, err = os.Getwd(); err != nil {
			return err
		}
	}

	home, _ := os.UserHomeDir()
	scheduler := tui.NewFrameScheduler()
	model := tui.NewModel(cfg, logger, cwd, scheduler)

	if reg, err := registry.Load(home); err == nil {
		model.SetRegistry(reg)
	} else {
		logger.Warn("loading server registry", map[string]any{"error": err.Error()})
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	scheduler.Bind(p.Send)

	watcher, err := registry.Watch(home, func(reg *registry.Registry) {
		p.Send(tui.RegistryChanged(reg))
	})
	if err != nil {
		logger.Warn("watching server registry", map[string]any{"error": err.Error()})
	} else {
		defer watcher.Close()
	}

	_, err = p.Run()
	return err
}

func serversCommand() *cobra.Command {
	servers := &cobra.Command{
		Use:   "servers",
		Short: "Manage enabled server integrations",
	}

	servers.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List enabled servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			for _, name := range reg.Enabled() {
				fmt.Println(name)
			}
			return nil
		},
	})

	servers.AddCommand(&cobra.Command{
		Use:   "enable <name>",
		Short: "Enable a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setEnabled(args[0], true)
		},
	})

	servers.AddCommand(&cobra.Command{
		Use:   "disable <name>",
		Short: "Disable a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setEnabled(args[0], false)
		},
	})

	return servers
}

func loadRegistry() (*registry.Registry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return registry.Load(home)
}

func setEnabled(name string, enable bool) error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	reg, err := registry.Load(home)
	if err != nil {
		return err
	}
	if !reg.SetEnabled(name, enable) {
		return nil // already in the requested state
	}
	return reg.Save(home)
}
