package signup

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/registration"
)

// Banner texts shown after a submission.
const (
	BannerSuccess = "Registration successful!"
	BannerFailure = "Please fill in all fields correctly."
)

// NotificationKind tells the presentation layer how to style a banner.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationFailure NotificationKind = "failure"
)

// Notification is what the user should see after a submission.
// FieldErrors are rendered next to their inputs; empty messages render nothing.
type Notification struct {
	Kind        NotificationKind
	Message     string
	FieldErrors registration.FieldErrors
}

// Notifier displays the outcome of a submission.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// LogNotifier writes notifications to a slog logger. It is the default
// notifier for headless use.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log.With(logger.Component("notifier"))}
}

func (n *LogNotifier) Notify(ctx context.Context, note Notification) {
	if note.Kind == NotificationSuccess {
		n.log.InfoContext(ctx, note.Message, slog.String("kind", string(note.Kind)))
		return
	}
	n.log.WarnContext(ctx, note.Message,
		slog.String("kind", string(note.Kind)),
		logger.InvalidFields(note.FieldErrors.Fields()...),
	)
}

func successNotification() Notification {
	return Notification{Kind: NotificationSuccess, Message: BannerSuccess}
}

func failureNotification(report registration.Report) Notification {
	return Notification{Kind: NotificationFailure, Message: BannerFailure, FieldErrors: report.Errors}
}
