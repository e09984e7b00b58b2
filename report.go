package classlint

import "github.com/classlint/classlint/issue"

// ReportInfo this is report information
type ReportInfo struct {
	Errors  map[string][]Error `json:"Scan errors"`
	Issues  []*issue.Issue
	Stats   *Metrics
	Version string
}

// NewReportInfo instantiate a ReportInfo
func NewReportInfo(issues []*issue.Issue, metrics *Metrics, errors map[string][]Error) *ReportInfo {
	return &ReportInfo{
		Errors: errors,
		Issues: issues,
		Stats:  metrics,
	}
}

// WithVersion defines the version of classlint used for the scan
func (r *ReportInfo) WithVersion(version string) *ReportInfo {
	r.Version = version
	return r
}
