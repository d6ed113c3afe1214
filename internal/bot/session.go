// Package bot orchestrates one webhook request: match the intent, fetch
// data when the intent needs it, compose the reply, and send it. Each
// request is handled independently; there is no state shared between
// requests.
package bot

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/johann95ko/covid19-telegram-bot/internal/intent"
	"github.com/johann95ko/covid19-telegram-bot/internal/reply"
	"github.com/johann95ko/covid19-telegram-bot/internal/stats"
)

// Outcome is the terminal state of one handled request.
type Outcome int

const (
	// Replied means a reply was composed and delivered.
	Replied Outcome = iota
	// Ignored means nothing was sent: no intent matched or the update
	// carried no text.
	Ignored
	// Failed means the upstream fetch or the outbound send failed.
	Failed
)

// String returns a stable lowercase name, used as a log field and
// metric label.
func (o Outcome) String() string {
	switch o {
	case Replied:
		return "replied"
	case Ignored:
		return "ignored"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result describes how a request terminated.
type Result struct {
	Outcome Outcome
	Intent  intent.Kind
}

// Fetcher is the upstream statistics dependency.
type Fetcher interface {
	FetchGlobal(ctx context.Context) stats.Result
	FetchCountry(ctx context.Context, code string) stats.Result
}

// Sender delivers one outbound text message to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Session handles webhook requests. It is safe for concurrent use:
// all per-request data lives on the stack of Handle.
type Session struct {
	fetcher  Fetcher
	sender   Sender
	composer *reply.Composer
	logger   *slog.Logger
}

// NewSession wires a Session from its collaborators.
func NewSession(fetcher Fetcher, sender Sender, composer *reply.Composer, logger *slog.Logger) *Session {
	return &Session{
		fetcher:  fetcher,
		sender:   sender,
		composer: composer,
		logger:   logger,
	}
}

// Handle runs one request to a terminal state. It never panics past the
// boundary and never sends more than one message. A fetch failure still
// sends the apology text, but the request reports Failed.
func (s *Session) Handle(ctx context.Context, in Inbound) Result {
	tracer := otel.Tracer("covidbot/bot")
	ctx, span := tracer.Start(ctx, "bot.Handle")
	defer span.End()

	it := intent.Match(in.Text)
	span.SetAttributes(attribute.String("bot.intent", it.Kind.String()))

	var res stats.Result
	fetchFailed := false
	if it.NeedsData() {
		res = s.fetch(ctx, it)
		if res.Failed() {
			fetchFailed = true
			s.logger.Error("upstream fetch failed",
				"intent", it.Kind.String(),
				"country", it.Country,
				"error", res.Err,
			)
		}
	}

	text, ok := s.composer.Compose(it, res, in.FirstName)
	if !ok {
		s.logger.Debug("no intent matched, nothing sent", "chat", in.ChatID)
		return s.finish(span, Result{Outcome: Ignored, Intent: it.Kind})
	}

	if err := s.sender.Send(ctx, in.ChatID, text); err != nil {
		s.logger.Error("send failed", "chat", in.ChatID, "error", err)
		span.RecordError(err)
		return s.finish(span, Result{Outcome: Failed, Intent: it.Kind})
	}

	if fetchFailed {
		return s.finish(span, Result{Outcome: Failed, Intent: it.Kind})
	}

	s.logger.Info("replied", "chat", in.ChatID, "intent", it.Kind.String())
	return s.finish(span, Result{Outcome: Replied, Intent: it.Kind})
}

func (s *Session) fetch(ctx context.Context, it intent.Intent) stats.Result {
	if it.Kind == intent.GlobalStats {
		return s.fetcher.FetchGlobal(ctx)
	}
	return s.fetcher.FetchCountry(ctx, it.Country)
}

func (s *Session) finish(span trace.Span, r Result) Result {
	span.SetAttributes(attribute.String("bot.outcome", r.Outcome.String()))
	if r.Outcome == Failed {
		span.SetStatus(codes.Error, "request failed")
	}
	return r
}
