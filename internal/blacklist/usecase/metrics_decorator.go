package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/metrics"
)

const metricsDomain = "blacklist"

// MetricsDecorator wraps a UseCase and records operation counts and
// durations for every call.
type MetricsDecorator struct {
	inner   UseCase
	metrics metrics.BusinessMetrics
}

// NewMetricsDecorator creates a new MetricsDecorator
func NewMetricsDecorator(inner UseCase, businessMetrics metrics.BusinessMetrics) UseCase {
	return &MetricsDecorator{
		inner:   inner,
		metrics: businessMetrics,
	}
}

func (d *MetricsDecorator) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	d.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Add records metrics around UseCase.Add
func (d *MetricsDecorator) Add(ctx context.Context, input AddInput) (*domain.AddResult, error) {
	start := time.Now()
	result, err := d.inner.Add(ctx, input)
	d.record(ctx, "add", start, err)
	return result, err
}

// Search records metrics around UseCase.Search
func (d *MetricsDecorator) Search(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.SearchRow, error) {
	start := time.Now()
	rows, err := d.inner.Search(ctx, criteria)
	d.record(ctx, "search", start, err)
	return rows, err
}

// SearchForOrganizations records metrics around UseCase.SearchForOrganizations
func (d *MetricsDecorator) SearchForOrganizations(ctx context.Context, organizationIDs []int64, criteria domain.SearchCriteria) ([]*domain.SearchRow, error) {
	start := time.Now()
	rows, err := d.inner.SearchForOrganizations(ctx, organizationIDs, criteria)
	d.record(ctx, "search_for_organizations", start, err)
	return rows, err
}

// Deactivate records metrics around UseCase.Deactivate
func (d *MetricsDecorator) Deactivate(ctx context.Context, entryID, adminID uuid.UUID, comment string) error {
	start := time.Now()
	err := d.inner.Deactivate(ctx, entryID, adminID, comment)
	d.record(ctx, "deactivate", start, err)
	return err
}

// Reactivate records metrics around UseCase.Reactivate
func (d *MetricsDecorator) Reactivate(ctx context.Context, entryID, adminID uuid.UUID, comment string) error {
	start := time.Now()
	err := d.inner.Reactivate(ctx, entryID, adminID, comment)
	d.record(ctx, "reactivate", start, err)
	return err
}

// UpdateReason records metrics around UseCase.UpdateReason
func (d *MetricsDecorator) UpdateReason(ctx context.Context, entryID, adminID uuid.UUID, newReason, comment string) error {
	start := time.Now()
	err := d.inner.UpdateReason(ctx, entryID, adminID, newReason, comment)
	d.record(ctx, "update_reason", start, err)
	return err
}

// History records metrics around UseCase.History
func (d *MetricsDecorator) History(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error) {
	start := time.Now()
	events, err := d.inner.History(ctx, entryID)
	d.record(ctx, "history", start, err)
	return events, err
}

// DeleteIdentity records metrics around UseCase.DeleteIdentity
func (d *MetricsDecorator) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	start := time.Now()
	err := d.inner.DeleteIdentity(ctx, identityID)
	d.record(ctx, "delete_identity", start, err)
	return err
}
