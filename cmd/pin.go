package main

import (
	"context"
	"fmt"

	"tabata_timer/internal/logger"
	"tabata_timer/internal/repository"
	"tabata_timer/internal/repository/db"
	"tabata_timer/internal/service"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage the controller PIN",
}

var pinSetCmd = &cobra.Command{
	Use:   "set <pin>",
	Short: "Require a PIN for session control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAuth(func(ctx context.Context, auth *service.AuthService) error {
			if err := auth.SetPin(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("PIN set; restart the server to apply it")
			return nil
		})
	},
}

var pinClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored PIN",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAuth(func(ctx context.Context, auth *service.AuthService) error {
			if err := auth.ClearPin(ctx); err != nil {
				return err
			}
			if auth.Enabled() {
				fmt.Println("Stored PIN removed; auth.pin_hash from the config still applies")
				return nil
			}
			fmt.Println("PIN removed; restart the server to apply it")
			return nil
		})
	},
}

var pinHashCmd = &cobra.Command{
	Use:   "hash <pin>",
	Short: "Print a bcrypt hash for auth.pin_hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := service.HashPin(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

func init() {
	pinCmd.AddCommand(pinSetCmd, pinClearCmd, pinHashCmd)
}

func withAuth(fn func(ctx context.Context, auth *service.AuthService) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()
	repos := repository.NewRepository(sqlDB)
	auth := service.NewAuthService(ctx, repos.KV, service.AuthConfig{
		PinHash:    cfg.Auth.PinHash,
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	}, logger.Nop())
	return fn(ctx, auth)
}
