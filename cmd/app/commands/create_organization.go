package commands

import (
	"context"
	"fmt"
	"log/slog"

	orgUsecase "github.com/rentguard/blacklist/internal/organization/usecase"
)

// RunCreateOrganization registers a new organization and prints its id. The
// hash salt generated for the organization is never printed.
func RunCreateOrganization(
	ctx context.Context,
	orgUseCase orgUsecase.UseCase,
	logger *slog.Logger,
	name string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new organization", slog.String("name", name))

	org, err := orgUseCase.CreateOrganization(ctx, orgUsecase.CreateOrganizationInput{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if format == "json" {
		outputJSON(map[string]any{
			"id":         org.ID,
			"name":       org.Name,
			"created_at": org.Created,
		}, io.Writer)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Organization created\n")
		_, _ = fmt.Fprintf(io.Writer, "  ID:   %d\n", org.ID)
		_, _ = fmt.Fprintf(io.Writer, "  Name: %s\n", org.Name)
	}

	logger.Info("organization created successfully",
		slog.Int64("organization_id", org.ID),
		slog.String("name", org.Name),
	)

	return nil
}
