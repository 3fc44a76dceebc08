package main

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/config"
	infraauth "github.com/elifsedaa/uygulama-havuzu-backend/internal/infrastructure/auth"
)

func newTokenService(log zerolog.Logger) *infraauth.TokenService {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	tokens, err := infraauth.NewTokenService(infraauth.Config{
		Secret:      cfg.JWT.Secret,
		Issuer:      cfg.JWT.Issuer,
		Audience:    cfg.JWT.Audience,
		SessionTTL:  cfg.JWT.SessionTTL,
		RememberTTL: cfg.JWT.RememberTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create token service")
	}
	return tokens
}

// NewIssueCmd issues a signed session token.
func NewIssueCmd(log zerolog.Logger) *cobra.Command {
	var (
		userID   int64
		username string
		email    string
		role     string
		remember bool
	)
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := newTokenService(log).Issue(userID, username, email, role, remember)
			if err != nil {
				return err
			}
			cmd.Println(token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "id", 0, "subject user id")
	cmd.Flags().StringVar(&username, "username", "", "username claim")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&role, "role", "user", "role claim")
	cmd.Flags().BoolVar(&remember, "remember", false, "use the long remember-me lifetime")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// NewValidateCmd cryptographically validates a token.
func NewValidateCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <token>",
		Short: "Validate a token's signature, issuer, audience and expiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := newTokenService(log).Validate(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("valid, subject %d\n", userID)
			return nil
		},
	}
}

// NewInspectCmd dumps a token's claims without verifying the signature.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <token>",
		Short: "Dump token claims without signature verification",
		Long:  "Inspect decodes the payload without verifying the signature. Never use its output for authorization decisions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unsigned introspection never touches the signing key; a
			// placeholder secret satisfies the constructor.
			tokens, err := infraauth.NewTokenService(infraauth.Config{Secret: "inspect-only"})
			if err != nil {
				return err
			}
			claims, ok := tokens.Claims(args[0])
			if !ok {
				cmd.Println("malformed token")
				return nil
			}
			names := make([]string, 0, len(claims))
			for name := range claims {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				cmd.Printf("%s: %s\n", name, claims[name])
			}
			if exp, ok := tokens.ExpiryOf(args[0]); ok {
				cmd.Printf("expires: %s (expired: %v)\n", exp.UTC().Format("2006-01-02T15:04:05Z07:00"), tokens.IsExpired(args[0]))
			}
			return nil
		},
	}
}
