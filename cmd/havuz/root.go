package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the havuz auth toolbox.
func NewRootCmd(log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "havuz",
		Short:         "Credential and session-token toolbox",
		Long:          "Operational companion for the auth core: hash and verify passwords, check strength, generate passwords, and issue or inspect session tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewHashCmd())
	cmd.AddCommand(NewVerifyCmd())
	cmd.AddCommand(NewStrengthCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewIssueCmd(log))
	cmd.AddCommand(NewValidateCmd(log))
	cmd.AddCommand(NewInspectCmd())

	return cmd
}
