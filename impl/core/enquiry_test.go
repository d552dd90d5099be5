package core

import (
	"FurnishDesk/entity"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	err   error
	saved []*entity.Enquiry
}

func (s *stubRepo) SaveEnquiry(_ context.Context, enquiry *entity.Enquiry) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, enquiry)
	return nil
}

func (s *stubRepo) Status(_ context.Context) entity.StorageStatus {
	return entity.StorageStatus{Backend: "running", ConnectionStatus: "connected"}
}

type stubNotifier struct {
	configured bool
	err        error
	sent       int
}

func (s *stubNotifier) Configured() bool { return s.configured }

func (s *stubNotifier) SendEnquiry(_ *entity.Enquiry) error {
	s.sent++
	return s.err
}

type stubAlert struct {
	err    error
	called int
}

func (s *stubAlert) NotifyEnquiry(_ *entity.Enquiry) error {
	s.called++
	return s.err
}

type stubFeed struct {
	events []entity.Enquiry
}

func (s *stubFeed) BroadcastEnquiry(enquiry entity.Enquiry) {
	s.events = append(s.events, enquiry)
}

func testEnquiry() *entity.Enquiry {
	return &entity.Enquiry{
		UUID:    "e-1",
		Name:    "Asha",
		Phone:   "0836905121",
		Message: "Need a queen size mattress quote",
	}
}

func TestSubmitEnquiry_AllSinksDown(t *testing.T) {
	c := newTestCore()

	outcome := c.SubmitEnquiry(context.Background(), testEnquiry())

	assert.True(t, outcome.OK)
	assert.Equal(t, entity.AckMessage, outcome.Message)
	assert.False(t, outcome.EmailSent)
	assert.False(t, outcome.Persisted)
}

func TestSubmitEnquiry_AllSinksUp(t *testing.T) {
	c := newTestCore()
	repo := &stubRepo{}
	notifier := &stubNotifier{configured: true}
	feed := &stubFeed{}
	c.SetRepository(repo)
	c.SetNotifier(notifier)
	c.SetStaffFeed(feed)

	outcome := c.SubmitEnquiry(context.Background(), testEnquiry())

	assert.True(t, outcome.OK)
	assert.True(t, outcome.EmailSent)
	assert.True(t, outcome.Persisted)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, 1, notifier.sent)
	require.Len(t, feed.events, 1)
	assert.Equal(t, "e-1", feed.events[0].UUID)
}

func TestSubmitEnquiry_PersistFailureIsSwallowed(t *testing.T) {
	c := newTestCore()
	c.SetRepository(&stubRepo{err: errors.New("connection refused")})
	notifier := &stubNotifier{configured: true}
	c.SetNotifier(notifier)

	outcome := c.SubmitEnquiry(context.Background(), testEnquiry())

	assert.True(t, outcome.OK)
	assert.False(t, outcome.Persisted)
	// the mail attempt is unconditional, independent of the failed write
	assert.True(t, outcome.EmailSent)
	assert.Equal(t, 1, notifier.sent)
}

func TestSubmitEnquiry_NotifierUnconfiguredIsSkipped(t *testing.T) {
	c := newTestCore()
	c.SetRepository(&stubRepo{})
	notifier := &stubNotifier{configured: false}
	c.SetNotifier(notifier)

	outcome := c.SubmitEnquiry(context.Background(), testEnquiry())

	assert.True(t, outcome.OK)
	assert.False(t, outcome.EmailSent)
	assert.Equal(t, 0, notifier.sent, "unconfigured notifier must not be invoked")
}

func TestSubmitEnquiry_NotifierErrorIsSwallowed(t *testing.T) {
	c := newTestCore()
	c.SetRepository(&stubRepo{})
	c.SetNotifier(&stubNotifier{configured: true, err: errors.New("auth rejected")})

	outcome := c.SubmitEnquiry(context.Background(), testEnquiry())

	assert.True(t, outcome.OK)
	assert.True(t, outcome.Persisted)
	assert.False(t, outcome.EmailSent)
}

func TestSubmitEnquiry_AckMessageNeverVaries(t *testing.T) {
	up := newTestCore()
	up.SetRepository(&stubRepo{})
	up.SetNotifier(&stubNotifier{configured: true})
	down := newTestCore()

	assert.Equal(t,
		up.SubmitEnquiry(context.Background(), testEnquiry()).Message,
		down.SubmitEnquiry(context.Background(), testEnquiry()).Message,
	)
}

func TestSubmitEnquiry_AlertFailureIsSwallowed(t *testing.T) {
	c := newTestCore()
	alert := &stubAlert{err: errors.New("telegram down")}
	c.SetAlertService(alert)

	outcome := c.SubmitEnquiry(context.Background(), testEnquiry())

	assert.True(t, outcome.OK)
	assert.Equal(t, 1, alert.called)
}

func TestStorageStatus_NoRepository(t *testing.T) {
	c := newTestCore()

	status := c.StorageStatus(context.Background())

	assert.Equal(t, "running", status.Backend)
	assert.Equal(t, "not connected", status.ConnectionStatus)
}

func TestStorageStatus_WithRepository(t *testing.T) {
	c := newTestCore()
	c.SetRepository(&stubRepo{})

	status := c.StorageStatus(context.Background())

	assert.Equal(t, "connected", status.ConnectionStatus)
}
