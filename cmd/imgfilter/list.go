package main

import (
	"fmt"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List kernel presets and convolution strategies",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Kernel presets:")
		for _, name := range presetNames {
			fmt.Printf("  %s\n", name)
		}

		fmt.Println("\nRegistered strategies (selection order):")
		for _, name := range conv2d.Strategies() {
			marker := " "
			if name == conv2d.ActiveStrategy() {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, name)
		}
		fmt.Println("\nFixed strategies: scalar, scalar-fused, vec4, vec4-cached, vec16")
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
