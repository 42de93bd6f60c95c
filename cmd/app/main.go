// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rentguard/blacklist/cmd/app/commands"
	"github.com/rentguard/blacklist/internal/app"
	"github.com/rentguard/blacklist/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "blacklist",
		Usage:   "Privacy-preserving shared rental blacklist service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-organization",
				Usage: "Register a new participating organization",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Organization name",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer func() {
						if err := container.Shutdown(ctx); err != nil {
							logger.Error("failed to shutdown container", slog.Any("error", err))
						}
					}()

					orgUseCase, err := container.OrganizationUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize organization use case: %w", err)
					}

					return commands.RunCreateOrganization(
						ctx,
						orgUseCase,
						logger,
						cmd.String("name"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "create-admin",
				Usage: "Register a new administrator",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "external-id",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "External messenger account id of the administrator",
					},
					&cli.StringFlag{
						Name:    "role",
						Aliases: []string{"r"},
						Value:   "manager",
						Usage:   "Role: manager, admin or super_admin",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer func() {
						if err := container.Shutdown(ctx); err != nil {
							logger.Error("failed to shutdown container", slog.Any("error", err))
						}
					}()

					adminUseCase, err := container.AdminUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize admin use case: %w", err)
					}

					return commands.RunCreateAdmin(
						ctx,
						adminUseCase,
						logger,
						int64(cmd.Int("external-id")),
						cmd.String("role"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "delete-identity",
				Usage: "Permanently erase an identity with all of its entries and history",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Required: true,
						Usage:    "Identity UUID to erase",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer func() {
						if err := container.Shutdown(ctx); err != nil {
							logger.Error("failed to shutdown container", slog.Any("error", err))
						}
					}()

					blacklistUseCase, err := container.BlacklistUseCase(ctx)
					if err != nil {
						return fmt.Errorf("failed to initialize blacklist use case: %w", err)
					}

					return commands.RunDeleteIdentity(
						ctx,
						blacklistUseCase,
						logger,
						cmd.String("id"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "generate-pepper",
				Usage: "Generate a random pepper for digest hashing",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGeneratePepper(commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
