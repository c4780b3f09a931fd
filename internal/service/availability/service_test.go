package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type fakeRepo struct {
	loaded  domain.AvailabilityRecord
	loadErr error

	replaced   []domain.AvailabilityRecord
	replaceErr error
}

func (f *fakeRepo) Load(ctx context.Context) (domain.AvailabilityRecord, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.loaded == nil {
		return domain.AvailabilityRecord{}, nil
	}
	return f.loaded, nil
}

func (f *fakeRepo) Replace(ctx context.Context, record domain.AvailabilityRecord) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = append(f.replaced, record.Clone())
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestStore(t *testing.T, repo *fakeRepo) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), repo, passthroughTx{}, nopLogger{})
	require.NoError(t, err)
	return store
}

func TestNewStore_LoadFailure(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("db down")}
	_, err := NewStore(context.Background(), repo, passthroughTx{}, nopLogger{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestStore_SetSlot(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)
	ctx := context.Background()
	date := domain.DateKey("Mon Mar 02 2026")

	require.NoError(t, store.SetSlot(ctx, date, "10:30 AM"))
	require.NoError(t, store.SetSlot(ctx, date, "09:00 AM"))

	assert.Equal(t,
		[]domain.TimeLabel{"09:00 AM", "10:30 AM"},
		store.ListSlots(ctx, date))
	assert.Len(t, repo.replaced, 2)
}

func TestStore_SetSlot_IdempotentSkipsFlush(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)
	ctx := context.Background()
	date := domain.DateKey("Mon Mar 02 2026")

	require.NoError(t, store.SetSlot(ctx, date, "09:00 AM"))
	require.NoError(t, store.SetSlot(ctx, date, "09:00 AM"))

	assert.Equal(t, []domain.TimeLabel{"09:00 AM"}, store.ListSlots(ctx, date))
	assert.Len(t, repo.replaced, 1, "repeat add must not flush again")
}

func TestStore_SetSlot_InvalidDate(t *testing.T) {
	store := newTestStore(t, &fakeRepo{})
	err := store.SetSlot(context.Background(), "", "09:00 AM")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestStore_SetCustomSlot(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)
	ctx := context.Background()
	date := domain.DateKey("Mon Mar 02 2026")

	label, err := store.SetCustomSlot(ctx, date, "930", "AM")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeLabel("9:30 AM"), label)
	assert.Equal(t, []domain.TimeLabel{"9:30 AM"}, store.ListSlots(ctx, date))
}

func TestStore_SetCustomSlot_BadInput(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)

	_, err := store.SetCustomSlot(context.Background(), "Mon Mar 02 2026", "abc", "AM")
	assert.ErrorIs(t, err, ErrInvalidTimeInput)
	assert.Empty(t, repo.replaced)
}

func TestStore_UnsetSlot_RemovesEmptyDate(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)
	ctx := context.Background()
	date := domain.DateKey("Mon Mar 02 2026")

	require.NoError(t, store.SetSlot(ctx, date, "09:00 AM"))
	require.NoError(t, store.UnsetSlot(ctx, date, "09:00 AM"))

	assert.Empty(t, store.ListSlots(ctx, date))
	assert.Empty(t, store.ListAvailableDates(ctx))
}

func TestStore_UnsetSlot_MissingIsNoop(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)

	err := store.UnsetSlot(context.Background(), "Mon Mar 02 2026", "09:00 AM")
	require.NoError(t, err)
	assert.Empty(t, repo.replaced)
}

func TestStore_ClearDate(t *testing.T) {
	repo := &fakeRepo{}
	store := newTestStore(t, repo)
	ctx := context.Background()
	date := domain.DateKey("Mon Mar 02 2026")

	require.NoError(t, store.SetSlot(ctx, date, "09:00 AM"))
	require.NoError(t, store.SetSlot(ctx, date, "10:30 AM"))
	require.NoError(t, store.ClearDate(ctx, date))

	assert.Empty(t, store.ListSlots(ctx, date))
	assert.Empty(t, store.ListAvailableDates(ctx))
}

func TestStore_ListAvailableDates_Chronological(t *testing.T) {
	repo := &fakeRepo{loaded: domain.AvailabilityRecord{
		"Wed Apr 01 2026": {"09:00 AM"},
		"Mon Mar 02 2026": {"10:30 AM"},
	}}
	store := newTestStore(t, repo)

	assert.Equal(t,
		[]domain.DateKey{"Mon Mar 02 2026", "Wed Apr 01 2026"},
		store.ListAvailableDates(context.Background()))
}

func TestStore_FlushFailure(t *testing.T) {
	repo := &fakeRepo{replaceErr: errors.New("disk full")}
	store := newTestStore(t, repo)

	err := store.SetSlot(context.Background(), "Mon Mar 02 2026", "09:00 AM")
	assert.ErrorIs(t, err, ErrPersistence)
}
