package service

import (
	"context"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
)

// reportCatalogue is the static roadmap shown on the reports page. Entries
// move to ReportStatusAvailable as they are built.
var reportCatalogue = []domain.ReportDescriptor{
	{
		Name:        "Asset Summary",
		Description: "Fleet-wide counts by type, status, vendor and location.",
		Status:      domain.ReportStatusComingSoon,
	},
	{
		Name:        "Hardware Lifecycle",
		Description: "Assets approaching end of warranty or scheduled retirement.",
		Status:      domain.ReportStatusComingSoon,
	},
	{
		Name:        "Application Dependencies",
		Description: "Which applications run where, and what breaks if a host goes down.",
		Status:      domain.ReportStatusComingSoon,
	},
	{
		Name:        "Audit Trail",
		Description: "Full change history export with filtering by resource and actor.",
		Status:      domain.ReportStatusComingSoon,
	},
}

type ReportService struct {
	Store store.Store
}

// Catalogue returns the advertised reports. The slice is a copy; callers may
// not mutate the roadmap.
func (s *ReportService) Catalogue() []domain.ReportDescriptor {
	out := make([]domain.ReportDescriptor, len(reportCatalogue))
	copy(out, reportCatalogue)
	return out
}

// StatusCounts returns asset counts per status for the dashboard tiles.
func (s *ReportService) StatusCounts(ctx context.Context) (map[string]int, error) {
	return s.Store.Assets().CountAssetsByStatus(ctx)
}

// RecentChanges returns the newest audit entries, capped at limit.
func (s *ReportService) RecentChanges(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return s.Store.Audit().ListRecentChanges(ctx, limit)
}
