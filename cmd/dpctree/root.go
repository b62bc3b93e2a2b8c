package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dpctree",
	Short: "Compile a command script into a concrete syntax tree",
	Long: `dpctree compiles an indentation-structured command script into a
concrete syntax tree, matching every command against the grammar catalogue
in commands.json and reporting a diagnostic for each argument that does
not parse.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
