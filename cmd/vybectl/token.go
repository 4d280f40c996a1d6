package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/niteshnanu12/vybe/internal/config"
	"github.com/niteshnanu12/vybe/internal/core/services"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed access token for a user (development only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUser == "" {
			return errors.New("--user is required")
		}
		cfg := config.Load()
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is required")
		}

		ttl := cfg.TokenTTL
		if tokenTTL > 0 {
			ttl = tokenTTL
		}
		token, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, ttl).GenerateToken(tokenUser)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "User ID to embed as subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime; defaults to TOKEN_TTL")

	rootCmd.AddCommand(tokenCmd)
}
