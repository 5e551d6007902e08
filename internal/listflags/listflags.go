// Package listflags registers the flags shared by commands that print todos.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared --all flag to list commands.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().BoolP("all", "a", false, "Include completed todos")
		return
	}

	cmd.Flags().BoolVarP(target, "all", "a", false, "Include completed todos")
}

// AddOutputFlags adds the --json and --yaml flags.
func AddOutputFlags(cmd *cobra.Command, jsonTarget, yamlTarget *bool) {
	cmd.Flags().BoolVar(jsonTarget, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(yamlTarget, "yaml", false, "Output as YAML")
}
