package enquiry

import (
	"FurnishDesk/entity"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCore struct {
	emailSent bool
	received  *entity.Enquiry
}

func (s *stubCore) SubmitEnquiry(_ context.Context, enquiry *entity.Enquiry) entity.SubmissionOutcome {
	s.received = enquiry
	return entity.SubmissionOutcome{
		OK:        true,
		Message:   entity.AckMessage,
		EmailSent: s.emailSent,
		Persisted: true,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmit_Accepted(t *testing.T) {
	core := &stubCore{emailSent: true}
	handler := Submit(testLogger(), core)

	rec := postJSON(t, handler, `{"name":"Asha","phone":"0836905121","message":"Need a mattress quote"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, entity.AckMessage, resp["message"])
	assert.Equal(t, true, resp["email_sent"])
	// persistence outcome is internal only
	assert.NotContains(t, resp, "persisted")

	require.NotNil(t, core.received)
	assert.NotEmpty(t, core.received.UUID)
}

func TestSubmit_EmailNotSent(t *testing.T) {
	handler := Submit(testLogger(), &stubCore{emailSent: false})

	rec := postJSON(t, handler, `{"name":"Asha","phone":"0836905121","message":"Need a mattress quote"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, false, resp["email_sent"])
}

func TestSubmit_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{{{`},
		{name: "name too short", body: `{"name":"A","phone":"0836905121","message":"Need a mattress"}`},
		{name: "message length four", body: `{"name":"Asha","phone":"0836905121","message":"hey!"}`},
		{name: "bad email", body: `{"name":"Asha","phone":"0836905121","email":"nope","message":"Need a mattress"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := &stubCore{}
			rec := postJSON(t, Submit(testLogger(), core), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, core.received, "invalid submission must not reach the core")
		})
	}
}

func TestSubmit_CoreUnavailable(t *testing.T) {
	rec := postJSON(t, Submit(testLogger(), nil), `{"name":"Asha","phone":"0836905121","message":"Need a mattress"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
