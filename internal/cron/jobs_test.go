package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/johann95ko/covid19-telegram-bot/internal/telegram"
)

type fakeWebhookAPI struct {
	info    *telegram.WebhookInfo
	infoErr error
	setReq  *telegram.SetWebhookRequest
}

func (f *fakeWebhookAPI) GetWebhookInfo(context.Context) (*telegram.WebhookInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeWebhookAPI) SetWebhook(_ context.Context, req telegram.SetWebhookRequest) error {
	f.setReq = &req
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookRefreshNoDrift(t *testing.T) {
	api := &fakeWebhookAPI{info: &telegram.WebhookInfo{URL: "https://bot.example.com/webhook"}}
	job := &WebhookRefreshJob{
		Client: api,
		URL:    "https://bot.example.com/webhook",
		Logger: testLogger(),
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if api.setReq != nil {
		t.Error("SetWebhook called without drift")
	}
}

func TestWebhookRefreshReRegistersOnDrift(t *testing.T) {
	api := &fakeWebhookAPI{info: &telegram.WebhookInfo{URL: ""}}
	job := &WebhookRefreshJob{
		Client: api,
		URL:    "https://bot.example.com/webhook",
		Secret: "s3cret",
		Logger: testLogger(),
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if api.setReq == nil {
		t.Fatal("SetWebhook not called on drift")
	}
	if api.setReq.URL != "https://bot.example.com/webhook" {
		t.Errorf("re-registered URL = %q", api.setReq.URL)
	}
	if api.setReq.SecretToken != "s3cret" {
		t.Errorf("re-registered secret = %q", api.setReq.SecretToken)
	}
}

func TestWebhookRefreshPropagatesCheckError(t *testing.T) {
	api := &fakeWebhookAPI{infoErr: errors.New("telegram: 502 Bad Gateway")}
	job := &WebhookRefreshJob{Client: api, URL: "https://x", Logger: testLogger()}

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("Run() should propagate the check error")
	}
}

func TestSchedulerRejectsDuplicateJobNames(t *testing.T) {
	s := NewScheduler(testLogger())
	job := &WebhookRefreshJob{Client: &fakeWebhookAPI{}, URL: "https://x", Logger: testLogger()}

	if err := s.RegisterJob(job); err != nil {
		t.Fatalf("RegisterJob() error: %v", err)
	}
	if err := s.RegisterJob(job); err == nil {
		t.Fatal("RegisterJob() should reject a duplicate name")
	}
}

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(testLogger())
	job := &WebhookRefreshJob{
		Client:       &fakeWebhookAPI{},
		URL:          "https://x",
		Logger:       testLogger(),
		ScheduleExpr: "not a cron expression",
	}
	if err := s.RegisterJob(job); err != nil {
		t.Fatalf("RegisterJob() error: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatal("Start() should fail on invalid schedule")
	}
}

func TestDefaultSchedule(t *testing.T) {
	job := &WebhookRefreshJob{}
	if job.Schedule() != "*/30 * * * *" {
		t.Errorf("Schedule() = %q", job.Schedule())
	}
}
