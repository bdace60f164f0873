package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valentine-arcade/internal/registry"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List scenes in play order",
	Long:  `Shows every registered scene in the order a session plays them.`,
	Args:  cobra.NoArgs,
	Run:   runScenes,
}

func runScenes(_ *cobra.Command, _ []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes registered.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		if n := len(s.ID.String()); n > maxIDLen {
			maxIDLen = n
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range scenes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'valentine play --scene <id>' to start at a scene.")
}
