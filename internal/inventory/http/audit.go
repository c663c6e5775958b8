package http

import (
	"net/http"

	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/invsdk"
)

type AuditHandler struct {
	ReportService *service.ReportService
}

// ListEntries godoc
//
//	@Summary	List recent changes
//	@Tags		Audit
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum entries (default 50)"
//	@Success	200		{object}	invsdk.AuditListResponse
//	@Router		/api/v1/audit [get].
func (h *AuditHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ReportService.RecentChanges(r.Context(), queryInt(r.URL.Query().Get("limit")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := invsdk.AuditListResponse{
		Entries: make([]invsdk.AuditEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, auditResponse(e))
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// ListReports godoc
//
//	@Summary	List the report catalogue
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{object}	invsdk.ReportListResponse
//	@Router		/api/v1/reports [get].
func (h *AuditHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports := h.ReportService.Catalogue()

	resp := invsdk.ReportListResponse{
		Reports: make([]invsdk.ReportDescriptorResponse, 0, len(reports)),
	}
	for _, d := range reports {
		resp.Reports = append(resp.Reports, invsdk.ReportDescriptorResponse{
			Name:        d.Name,
			Description: d.Description,
			Status:      d.Status,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
