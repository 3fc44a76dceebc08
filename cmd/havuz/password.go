package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/infrastructure/security"
)

func newCredentials(iterations int) *security.Credentials {
	params := security.DefaultParams()
	if iterations > 0 {
		params.Iterations = iterations
	}
	return security.NewCredentials(params)
}

// NewHashCmd hashes a plaintext password into a stored credential.
func NewHashCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "hash <password>",
		Short: "Hash a password into its storage form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := newCredentials(iterations).Hash(args[0])
			if err != nil {
				return err
			}
			cmd.Println(stored)
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 0, "PBKDF2 iteration count (default 10000)")
	return cmd
}

// NewVerifyCmd verifies a plaintext password against a stored credential.
func NewVerifyCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "verify <password> <stored>",
		Short: "Verify a password against a stored credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !newCredentials(iterations).Verify(args[0], args[1]) {
				return fmt.Errorf("password does not match")
			}
			cmd.Println("match")
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 0, "PBKDF2 iteration count (default 10000)")
	return cmd
}

// NewStrengthCmd evaluates the password strength policy.
func NewStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Check a password against the strength policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := newCredentials(0).ValidateStrength(args[0])
			if result.Valid {
				cmd.Println("ok")
				return nil
			}
			for _, v := range result.Violations {
				cmd.Printf("%s: %s\n", v.Code, v.Message)
			}
			return fmt.Errorf("password rejected by policy")
		},
	}
}

// NewGenerateCmd generates a random password.
func NewGenerateCmd() *cobra.Command {
	var length int
	var symbols bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := newCredentials(0).GenerateRandom(length, symbols)
			if err != nil {
				return err
			}
			cmd.Println(pw)
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 12, "password length (minimum 6)")
	cmd.Flags().BoolVar(&symbols, "symbols", true, "include symbol characters")
	return cmd
}
