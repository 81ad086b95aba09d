package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosskit-dev/crosskit/internal/registry"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available components",
		Long:  `List all components available in the crosskit registry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	catalog, err := registry.Load()
	if err != nil {
		return err
	}

	fmt.Println("  Available components:")
	fmt.Println()

	for _, name := range catalog.UINames() {
		comp, _ := catalog.Get(name)

		deps := ""
		if len(comp.Dependencies) > 0 {
			deps = fmt.Sprintf(" (requires: %s)", strings.Join(comp.Dependencies, ", "))
		}

		fmt.Printf("    %s%s\n", name, deps)
	}

	fmt.Println()
	fmt.Printf("  Registry version: %s\n", catalog.Version())
	fmt.Println()

	return nil
}
