package signup_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/registration"
	"github.com/dmitrymomot/signup/svc/signup"
)

type recordingNotifier struct {
	mu    sync.Mutex
	notes []signup.Notification
	ids   []uuid.UUID
}

func (r *recordingNotifier) Notify(ctx context.Context, n signup.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
	if id, ok := signup.SubmissionID(ctx); ok {
		r.ids = append(r.ids, id)
	}
}

type failingStore struct{ err error }

func (f failingStore) Set(context.Context, string, []byte) error { return f.err }
func (f failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, signup.ErrNotFound
}

func testConfig() signup.Config {
	cfg := signup.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.PasswordHashCost = bcrypt.MinCost
	return cfg
}

func newService(t *testing.T, store signup.Store, opts ...signup.Option) (*signup.Service, *recordingNotifier) {
	t.Helper()
	notes := &recordingNotifier{}
	opts = append([]signup.Option{
		signup.WithClock(func() time.Time { return fixedNow }),
		signup.WithNotifier(notes),
	}, opts...)
	svc, err := signup.NewService(testConfig(), store, opts...)
	require.NoError(t, err)
	return svc, notes
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("requires a store", func(t *testing.T) {
		_, err := signup.NewService(testConfig(), nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		cfg := testConfig()
		cfg.Timezone = "Mars/Olympus_Mons"
		_, err := signup.NewService(cfg, signup.NewMemoryStore())
		assert.ErrorIs(t, err, signup.ErrInvalidTimezone)
	})

	t.Run("rejects hash cost out of range", func(t *testing.T) {
		for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
			cfg := testConfig()
			cfg.PasswordHashCost = cost
			_, err := signup.NewService(cfg, signup.NewMemoryStore())
			assert.ErrorIs(t, err, signup.ErrInvalidHashCost, "cost %d", cost)
		}
	})

	t.Run("defaults to log notifier", func(t *testing.T) {
		svc, err := signup.NewService(testConfig(), signup.NewMemoryStore())
		require.NoError(t, err)
		_, err = svc.Submit(context.Background(), validRecord())
		assert.NoError(t, err)
	})
}

func TestService_SubmitValid(t *testing.T) {
	t.Parallel()

	store := signup.NewMemoryStore()
	svc, notes := newService(t, store)

	report, err := svc.Submit(context.Background(), validRecord())
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.True(t, report.Errors.Empty())

	require.Len(t, notes.notes, 1)
	assert.Equal(t, signup.NotificationSuccess, notes.notes[0].Kind)
	assert.Equal(t, signup.BannerSuccess, notes.notes[0].Message)
	require.Len(t, notes.ids, 1)
	assert.NotEqual(t, uuid.Nil, notes.ids[0])

	raw, err := store.Get(context.Background(), "userData")
	require.NoError(t, err)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, "John", flat["firstName"])
	assert.Equal(t, "Doe", flat["lastName"])
	assert.Equal(t, "john@example.com", flat["email"])
	assert.Equal(t, "Paris", flat["city"])
	assert.Equal(t, "75000", flat["postalCode"])
	assert.Equal(t, "1990-01-01", flat["birthDate"])
	_, hasPlain := flat["password"]
	assert.False(t, hasPlain, "plain password must never be stored")

	stored, err := signup.DecodeStoredRecord(raw)
	require.NoError(t, err)
	assert.True(t, stored.CheckPassword("password123"))
	assert.False(t, stored.CheckPassword("wrong"))

	t.Run("password longer than bcrypt input limit", func(t *testing.T) {
		store := signup.NewMemoryStore()
		svc, notes := newService(t, store)

		long := strings.Repeat("p", 100)
		rec := validRecord()
		rec.Password = long

		report, err := svc.Submit(context.Background(), rec)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		require.Len(t, notes.notes, 1)
		assert.Equal(t, signup.NotificationSuccess, notes.notes[0].Kind)

		raw, err := store.Get(context.Background(), "userData")
		require.NoError(t, err)
		stored, err := signup.DecodeStoredRecord(raw)
		require.NoError(t, err)
		assert.True(t, stored.CheckPassword(long))
		assert.False(t, stored.CheckPassword(long[:72]), "only the full password matches")
	})
}

func TestService_SubmitInvalid(t *testing.T) {
	t.Parallel()

	store := signup.NewMemoryStore()
	svc, notes := newService(t, store)

	rec := validRecord()
	rec.FirstName = "John123"
	rec.PostalCode = "abcde"

	report, err := svc.Submit(context.Background(), rec)
	require.NoError(t, err, "validation failures are not errors")
	assert.False(t, report.Valid)
	assert.Equal(t, registration.MsgFirstNameInvalid, report.Errors.FirstName)
	assert.Equal(t, registration.MsgPostalCodeInvalid, report.Errors.PostalCode)
	assert.Empty(t, report.Errors.Email)

	require.Len(t, notes.notes, 1)
	note := notes.notes[0]
	assert.Equal(t, signup.NotificationFailure, note.Kind)
	assert.Equal(t, signup.BannerFailure, note.Message)
	assert.Equal(t, report.Errors, note.FieldErrors)

	_, err = store.Get(context.Background(), "userData")
	assert.ErrorIs(t, err, signup.ErrNotFound, "rejected records are not stored")
}

func TestService_UsesInjectedClock(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	birth := time.Date(2006, time.March, 15, 0, 0, 0, 0, time.UTC)
	rec.BirthDate = &birth

	before, _ := newService(t, signup.NewMemoryStore())
	report, err := before.Submit(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Equal(t, registration.MsgBirthDateInvalid, report.Errors.BirthDate)

	after, _ := newService(t, signup.NewMemoryStore(),
		signup.WithClock(func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }),
	)
	report, err = after.Submit(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, report.Valid)
}

func TestService_PersistFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	svc, notes := newService(t, failingStore{err: boom})

	report, err := svc.Submit(context.Background(), validRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, signup.ErrPersistFailed)
	assert.ErrorIs(t, err, boom)
	assert.True(t, report.Valid, "the report is still returned")
	require.Len(t, notes.notes, 1)
	assert.Equal(t, signup.NotificationFailure, notes.notes[0].Kind)
	assert.Equal(t, signup.BannerFailure, notes.notes[0].Message)
	assert.True(t, notes.notes[0].FieldErrors.Empty(), "no field is to blame")
}

func TestService_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cfg := testConfig()
	cfg.AppEnv = logger.EnvProduction
	log := cfg.NewLogger(buf)

	svc, _ := newService(t, signup.NewMemoryStore(), signup.WithLogger(log))

	rec := validRecord()
	rec.Email = "johnexample.com"
	_, err := svc.Submit(context.Background(), rec)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "registration rejected", entry["msg"])
	assert.Equal(t, []any{"email"}, entry["invalid_fields"])
	assert.Equal(t, "signup", entry["service"])
	assert.NotEmpty(t, entry["submission_id"])
	assert.NotContains(t, buf.String(), "johnexample.com", "field values are never logged")
}

func TestService_Ready(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, signup.NewMemoryStore())
	assert.True(t, svc.Ready(validRecord()))

	rec := validRecord()
	rec.Password = ""
	assert.False(t, svc.Ready(rec))
}
