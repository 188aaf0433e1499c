// Package cli provides the command-line interface for docket.
package cli

import (
	"github.com/spf13/cobra"
)

// AddCompletionCommand adds the completion command with subcommands to the
// root command. This replaces Cobra's default completion command with one
// whose help text matches the rest of the CLI.
func AddCompletionCommand(rootCmd *cobra.Command) {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for docket.

To load completions in the current session:
  source <(docket completion bash)
  source <(docket completion zsh)
  docket completion fish | source`,
	}

	completionCmd.AddCommand(newBashCompletionCmd())
	completionCmd.AddCommand(newZshCompletionCmd())
	completionCmd.AddCommand(newFishCompletionCmd())
	completionCmd.AddCommand(newPowershellCompletionCmd())

	rootCmd.AddCommand(completionCmd)
}

func newBashCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "bash",
		Short:                 "Generate bash completion script",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}

func newZshCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate zsh completion script",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	}
}

func newFishCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "fish",
		Short:                 "Generate fish completion script",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}

func newPowershellCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate powershell completion script",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	}
}
