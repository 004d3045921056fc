package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/registration"
)

type submissionIDKey struct{}

// LoggerOption makes a logger record the submission id Submit puts on the context.
func LoggerOption() logger.Option {
	return logger.WithContextValue("submission_id", submissionIDKey{})
}

// SubmissionID returns the id Submit attached to ctx, if any.
func SubmissionID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(submissionIDKey{}).(uuid.UUID)
	return id, ok
}

// Service handles registration submissions.
type Service struct {
	cfg      Config
	store    Store
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	loc      *time.Location
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for the age check.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithNotifier sets the notifier. Defaults to a LogNotifier on the service logger.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// NewService creates a Service storing accepted records in store.
func NewService(cfg Config, store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("signup: store is required")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, err)
	}
	if err := checkHashCost(cfg.PasswordHashCost); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:   cfg,
		store: store,
		log:   logger.Nop(),
		now:   time.Now,
		loc:   loc,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(s.log)
	}

	return s, nil
}

// Submit validates rec against today's date in the configured zone.
// Rejected records are reported to the notifier and never stored.
// Accepted records are stored under cfg.StorageKey before the success
// notification. A storage failure returns ErrPersistFailed and sends the
// failure banner with no field errors.
func (s *Service) Submit(ctx context.Context, rec registration.Record) (registration.Report, error) {
	id := uuid.New()
	ctx = context.WithValue(ctx, submissionIDKey{}, id)

	report := registration.Validate(rec, s.now().In(s.loc))

	if !report.Valid {
		s.log.InfoContext(ctx, "registration rejected",
			logger.InvalidFields(report.Errors.Fields()...),
		)
		s.notifier.Notify(ctx, failureNotification(report))
		return report, nil
	}

	payload, err := encodeRecord(rec, s.cfg.PasswordHashCost)
	if err == nil {
		err = s.store.Set(ctx, s.cfg.StorageKey, payload)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "failed to persist registration", logger.Error(err))
		s.notifier.Notify(ctx, failureNotification(report))
		return report, errors.Join(ErrPersistFailed, fmt.Errorf("key %q: %w", s.cfg.StorageKey, err))
	}

	s.log.InfoContext(ctx, "registration accepted")
	s.notifier.Notify(ctx, successNotification())

	return report, nil
}

// Ready reports whether the submit control should be enabled for rec.
func (s *Service) Ready(rec registration.Record) bool {
	return registration.Complete(rec)
}
