package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type fakeLedger struct {
	entries []*domain.BookingEntry
	nextID  int64
}

func (f *fakeLedger) Append(ctx context.Context, entry *domain.BookingEntry) (*domain.BookingEntry, error) {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeLedger) ListForDate(ctx context.Context, date domain.DateKey) ([]*domain.BookingEntry, error) {
	out := make([]*domain.BookingEntry, 0)
	for _, e := range f.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeStore struct {
	slots map[domain.DateKey][]domain.TimeLabel
}

func (f *fakeStore) ListSlots(ctx context.Context, date domain.DateKey) []domain.TimeLabel {
	return f.slots[date]
}

type fakeCatalogClient struct{}

func (fakeCatalogClient) GetCatalogWithGracefulDegradation(ctx context.Context) (domain.Catalog, error) {
	return domain.DefaultCatalog(), nil
}

type fakeNotifier struct {
	summaries []*domain.BookingSummary
}

func (f *fakeNotifier) Notify(ctx context.Context, summary *domain.BookingSummary) {
	f.summaries = append(f.summaries, summary)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		LengthID:      "fs-m",
		AddonQty:      map[string]int{"od": 3},
		Date:          "Mon Mar 02 2026",
		Time:          "10:30 AM",
		CustomerName:  "Ada",
		ContactMethod: domain.ContactPhone,
		ContactDetail: "5141234567",
	}
}

func newTestUseCase(ledger *fakeLedger, store *fakeStore, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(ledger, store, fakeCatalogClient{}, notifier, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func openStore() *fakeStore {
	return &fakeStore{slots: map[domain.DateKey][]domain.TimeLabel{
		"Mon Mar 02 2026": {"09:00 AM", "10:30 AM"},
	}}
}

func TestExecute_Success(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(ledger, openStore(), notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Full set (medium)", resp.ServiceName)
	// 55$ base + 3 x 5$ for "Other designs".
	assert.Equal(t, 70, resp.TotalPrice)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "3x Other designs", resp.Items[0].Name)

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, "(514)-123-4567", ledger.entries[0].ContactDetail)

	require.Len(t, notifier.summaries, 1)
	assert.Equal(t, 70, notifier.summaries[0].TotalPrice)
}

func TestExecute_EmailDetailNotFormatChecked(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger, openStore(), &fakeNotifier{})

	req := validRequest()
	req.ContactMethod = domain.ContactEmail
	req.ContactDetail = "fred.artois" // non-blank is enough, no @ required

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	require.Len(t, ledger.entries, 1)
	assert.Equal(t, "fred.artois", ledger.entries[0].ContactDetail)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(ledger, openStore(), notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второй клиент успел выбрать тот же слот до фиксации первого.
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	assert.Len(t, ledger.entries, 1, "conflict must not append a second entry")
	assert.Len(t, notifier.summaries, 1, "conflict must not notify")
}

func TestExecute_SlotRemovedFromCalendar(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{}, &fakeStore{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_DraftIncomplete(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{}, openStore(), &fakeNotifier{})

	req := validRequest()
	req.LengthID = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDraftIncomplete)

	req = validRequest()
	req.ContactDetail = "514123" // partial phone
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
}

func TestExecute_UnknownLength(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{}, openStore(), &fakeNotifier{})

	req := validRequest()
	req.LengthID = "fs-xxl"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownLength)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{}, openStore(), &fakeNotifier{})

	req := validRequest()
	req.Date = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Time = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TogglePricedOnce(t *testing.T) {
	uc := newTestUseCase(&fakeLedger{}, openStore(), &fakeNotifier{})

	req := validRequest()
	req.AddonQty = map[string]int{"sm": 7} // toggle clamps to 1
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 55+30, resp.TotalPrice)
}
