package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	rep := NewReport("GET", "https://example.com", 404, "nope", "request failed with status 404")

	assert.NotEmpty(t, rep.ID)
	assert.False(t, rep.Time.IsZero())
	assert.Equal(t, "GET", rep.Method)
	assert.Equal(t, 404, rep.Status)

	other := NewReport("GET", "https://example.com", 404, "nope", "request failed with status 404")
	assert.NotEqual(t, rep.ID, other.ID, "correlation IDs are unique per report")
}

func TestConsoleReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(WithWriter(&buf), WithNoColor(true))

	r.Report(Report{
		ID:      "abc-123",
		Method:  "GET",
		URL:     "https://example.com/missing",
		Status:  404,
		Body:    `{"err":1}`,
		Message: "GET https://example.com/missing: request failed with status 404",
	})

	out := buf.String()
	assert.Contains(t, out, "request error")
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "https://example.com/missing")
	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "status: 404")
	assert.Contains(t, out, `{"err":1}`)
	assert.Contains(t, out, "request failed with status 404")
}

func TestConsoleReporter_TransportFaultOmitsStatusAndBody(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(WithWriter(&buf), WithNoColor(true))

	r.Report(Report{
		ID:      "abc-123",
		Method:  "GET",
		URL:     "https://example.com",
		Message: "dial tcp: connection refused",
	})

	out := buf.String()
	assert.NotContains(t, out, "status:")
	assert.NotContains(t, out, "body:")
	assert.Contains(t, out, "connection refused")
}

func TestConsoleReporter_TruncatesLongBodies(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(WithWriter(&buf), WithNoColor(true))

	long := strings.Repeat("x", 2048)
	r.Report(Report{Method: "GET", URL: "https://example.com", Status: 500, Body: long, Message: "boom"})

	out := buf.String()
	require.Contains(t, out, "...")
	assert.Less(t, len(out), 1024)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Report(NewReport("GET", "https://example.com", 500, "", "boom"))
	})
}
