package main

import (
	"context"
	"fmt"
	"time"

	"bloghub/internal/auth"
	"bloghub/internal/config"
	"bloghub/pkg/domain"
	"bloghub/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed bearer
// token for a given subject (user ID) and TTL using the configured secret.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetInt64("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			tokens := auth.NewTokenManager(cfg.JWT.Secret, TTL)
			signed, err := tokens.Issue(domain.UserID(subject))
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("subject", 0, "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
