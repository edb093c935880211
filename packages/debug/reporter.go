package debug

import (
	"time"

	"github.com/google/uuid"
)

// Report is one diagnostic record for a failed request. Status is zero
// and Body empty when the transport itself failed before producing a
// response.
type Report struct {
	ID      string
	Time    time.Time
	Method  string
	URL     string
	Status  int
	Body    string
	Message string
}

// NewReport stamps a report with a correlation ID and timestamp.
func NewReport(method, url string, status int, body, message string) Report {
	return Report{
		ID:      uuid.New().String(),
		Time:    time.Now(),
		Method:  method,
		URL:     url,
		Status:  status,
		Body:    body,
		Message: message,
	}
}

// Reporter receives diagnostic reports. Implementations must not block
// for long; the client reports synchronously before propagating errors.
type Reporter interface {
	Report(Report)
}

// Discard is a Reporter that drops every report.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Report) {}
