package logic

import (
	"github.com/scout9/scout9-web/internal/models"
)

type OutcomeKind int

const (
	// OutcomeOK carries live data.
	OutcomeOK OutcomeKind = iota
	// OutcomeFallback carries demo data plus a non-blocking notice.
	OutcomeFallback
	// OutcomeFatal carries no data; the page shows Message with a retry.
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeFallback:
		return "fallback"
	case OutcomeFatal:
		return "fatal"
	}
	return "unknown"
}

const (
	NoticeReportFallback  = "Using demo data - backend connection failed"
	NoticeCompareFallback = "Using demo data - Backend connection failed"
	NoticeRecentFailed    = "Could not load recent reports"
	MessageGenerateFailed = "Failed to generate report"
)

// Outcome is the result of a report operation as the presentation layer
// sees it. Exactly one of Report and HeadToHead is set unless Kind is
// OutcomeFatal.
type Outcome struct {
	Kind       OutcomeKind
	Report     *models.ScoutingReport
	HeadToHead *models.HeadToHead
	Notice     string
	Message    string
	// Err is the underlying failure, kept for logging and status mapping.
	Err error
}

func (o Outcome) OK() bool       { return o.Kind == OutcomeOK }
func (o Outcome) Fallback() bool { return o.Kind == OutcomeFallback }
func (o Outcome) Fatal() bool    { return o.Kind == OutcomeFatal }
