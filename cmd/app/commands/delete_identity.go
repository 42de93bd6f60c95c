package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	blacklistUsecase "github.com/rentguard/blacklist/internal/blacklist/usecase"
)

// RunDeleteIdentity permanently erases an identity together with all of its
// entries and history. Serves data subject erasure requests; there is no
// HTTP endpoint for this on purpose.
func RunDeleteIdentity(
	ctx context.Context,
	blacklistUseCase blacklistUsecase.UseCase,
	logger *slog.Logger,
	identityID string,
	io IOTuple,
) error {
	id, err := uuid.Parse(identityID)
	if err != nil {
		return fmt.Errorf("invalid identity id %q: %w", identityID, err)
	}

	logger.Info("deleting identity", slog.String("identity_id", id.String()))

	if err := blacklistUseCase.DeleteIdentity(ctx, id); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Identity %s deleted with all of its entries and history\n", id)

	return nil
}
