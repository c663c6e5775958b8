package domain

// Report statuses.
const (
	ReportStatusComingSoon = "coming_soon"
	ReportStatusAvailable  = "available"
)

// ReportDescriptor describes a report the UI advertises. The catalogue is a
// static roadmap; none of the reports are generated yet.
type ReportDescriptor struct {
	Name        string
	Description string
	Status      string
}
