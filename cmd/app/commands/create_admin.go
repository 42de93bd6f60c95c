package commands

import (
	"context"
	"fmt"
	"log/slog"

	adminUsecase "github.com/rentguard/blacklist/internal/admin/usecase"
)

// RunCreateAdmin registers a new administrator account.
func RunCreateAdmin(
	ctx context.Context,
	adminUseCase adminUsecase.UseCase,
	logger *slog.Logger,
	externalID int64,
	role string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new admin",
		slog.Int64("external_id", externalID),
		slog.String("role", role),
	)

	admin, err := adminUseCase.CreateAdmin(ctx, adminUsecase.CreateAdminInput{
		ExternalID: externalID,
		Role:       role,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if format == "json" {
		outputJSON(map[string]any{
			"id":          admin.ID.String(),
			"external_id": admin.ExternalID,
			"role":        string(admin.Role),
			"created_at":  admin.Created,
		}, io.Writer)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Admin created\n")
		_, _ = fmt.Fprintf(io.Writer, "  ID:          %s\n", admin.ID)
		_, _ = fmt.Fprintf(io.Writer, "  External ID: %d\n", admin.ExternalID)
		_, _ = fmt.Fprintf(io.Writer, "  Role:        %s\n", admin.Role)
	}

	logger.Info("admin created successfully",
		slog.String("admin_id", admin.ID.String()),
		slog.Int64("external_id", admin.ExternalID),
	)

	return nil
}
