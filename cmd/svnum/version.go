package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "print version",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		fmt.Printf("svnum %s\n", version)
	},
}
