package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pinfer version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("pinfer %s\n", version)
		return nil
	},
}
