package chatbot

import (
	"FurnishDesk/entity"
	"bytes"
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
	reply string
	seen  []string
}

func (s *stubCore) ResolveIntent(query entity.ChatQuery) entity.ChatReply {
	s.seen = append(s.seen, query.Message)
	return entity.ChatReply{Reply: s.reply}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReply_Resolved(t *testing.T) {
	core := &stubCore{reply: "We are open every day."}
	rec := postJSON(t, Reply(testLogger(), core), `{"message":"what are your hours"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ChatReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "We are open every day.", resp.Reply)
	assert.Equal(t, []string{"what are your hours"}, core.seen)
}

func TestReply_EmptyMessageReachesResponder(t *testing.T) {
	core := &stubCore{reply: "I didn't catch that."}
	rec := postJSON(t, Reply(testLogger(), core), `{"message":""}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ChatReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "I didn't catch that.", resp.Reply)
	assert.Equal(t, []string{""}, core.seen, "empty message is a valid query")
}

func TestReply_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{{{`},
		{name: "missing message", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := &stubCore{}
			rec := postJSON(t, Reply(testLogger(), core), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, core.seen)
		})
	}
}

func TestReply_CoreUnavailable(t *testing.T) {
	rec := postJSON(t, Reply(testLogger(), nil), `{"message":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
