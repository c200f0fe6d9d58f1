package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
)

type memoryOutbox struct {
	emails map[int64]*models.OutboxEmail
}

func newMemoryOutbox(pending ...string) *memoryOutbox {
	m := &memoryOutbox{emails: map[int64]*models.OutboxEmail{}}
	for i, recipient := range pending {
		id := int64(i + 1)
		m.emails[id] = &models.OutboxEmail{
			ID:        id,
			Recipient: recipient,
			Subject:   "subject",
			Body:      "body",
			Status:    models.OutboxPending,
		}
	}
	return m
}

func (m *memoryOutbox) FetchPending(_ context.Context, limit int) ([]models.OutboxEmail, error) {
	pending := []models.OutboxEmail{}
	for id := int64(1); id <= int64(len(m.emails)); id++ {
		email, ok := m.emails[id]
		if !ok || email.Status != models.OutboxPending {
			continue
		}
		pending = append(pending, *email)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (m *memoryOutbox) MarkSent(_ context.Context, id int64) error {
	email, ok := m.emails[id]
	if !ok {
		return errors.New("no such email")
	}
	email.Status = models.OutboxSent
	now := time.Now()
	email.SentAt = &now
	return nil
}

func (m *memoryOutbox) MarkFailed(_ context.Context, id int64, sendErr string, maxAttempts int) error {
	email, ok := m.emails[id]
	if !ok {
		return errors.New("no such email")
	}
	email.Attempts++
	email.LastError = sendErr
	if email.Attempts >= maxAttempts {
		email.Status = models.OutboxFailed
	}
	return nil
}

func (m *memoryOutbox) CountPending(_ context.Context) (int64, error) {
	var count int64
	for _, email := range m.emails {
		if email.Status == models.OutboxPending {
			count++
		}
	}
	return count, nil
}

type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) Send(toEmail, subject, htmlBody string) error {
	if err, ok := f.failFor[toEmail]; ok {
		return err
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func TestDrainOnceDeliversPending(t *testing.T) {
	outbox := newMemoryOutbox("a@example.com", "b@example.com")
	sender := &fakeSender{}
	worker := NewWorker(outbox, sender, Config{BatchSize: 10, MaxAttempts: 3}, zerolog.Nop())

	if backlog, _ := outbox.CountPending(context.Background()); backlog != 2 {
		t.Fatalf("backlog before drain = %d, want 2", backlog)
	}

	worker.DrainOnce(context.Background())

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	if backlog, _ := outbox.CountPending(context.Background()); backlog != 0 {
		t.Errorf("backlog after drain = %d, want 0", backlog)
	}
	for _, email := range outbox.emails {
		if email.Status != models.OutboxSent {
			t.Errorf("email %d status = %q, want sent", email.ID, email.Status)
		}
		if email.SentAt == nil {
			t.Errorf("email %d has no sent timestamp", email.ID)
		}
	}
}

func TestDrainOnceOneFailureDoesNotBlockBatch(t *testing.T) {
	outbox := newMemoryOutbox("bad@example.com", "good@example.com")
	sender := &fakeSender{failFor: map[string]error{"bad@example.com": errors.New("mailbox unavailable")}}
	worker := NewWorker(outbox, sender, Config{BatchSize: 10, MaxAttempts: 3}, zerolog.Nop())

	worker.DrainOnce(context.Background())

	if outbox.emails[2].Status != models.OutboxSent {
		t.Error("healthy email not delivered when a sibling failed")
	}

	failed := outbox.emails[1]
	if failed.Status != models.OutboxPending {
		t.Errorf("failed email status = %q, want pending for retry", failed.Status)
	}
	if failed.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", failed.Attempts)
	}
	if failed.LastError == "" {
		t.Error("failure reason not recorded")
	}
}

func TestDrainOnceGivesUpAfterMaxAttempts(t *testing.T) {
	outbox := newMemoryOutbox("bad@example.com")
	sender := &fakeSender{failFor: map[string]error{"bad@example.com": errors.New("rejected")}}
	worker := NewWorker(outbox, sender, Config{BatchSize: 10, MaxAttempts: 3}, zerolog.Nop())

	for i := 0; i < 5; i++ {
		worker.DrainOnce(context.Background())
	}

	email := outbox.emails[1]
	if email.Status != models.OutboxFailed {
		t.Errorf("status = %q, want failed", email.Status)
	}
	if email.Attempts != 3 {
		t.Errorf("attempts = %d, want exactly the max of 3", email.Attempts)
	}
}

func TestWorkerStartStop(t *testing.T) {
	outbox := newMemoryOutbox("a@example.com")
	sender := &fakeSender{}
	worker := NewWorker(outbox, sender, Config{PollInterval: 10 * time.Millisecond, BatchSize: 10, MaxAttempts: 3}, zerolog.Nop())

	worker.Start()
	time.Sleep(50 * time.Millisecond)
	worker.Stop()

	if len(sender.sent) == 0 {
		t.Error("worker never delivered while running")
	}
}
