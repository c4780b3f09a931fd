package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

func completeDraft(t *testing.T) *Draft {
	t.Helper()
	catalog := domain.DefaultCatalog()

	d := NewDraft()
	require.NoError(t, d.SelectLength(catalog, "fs-m"))
	require.NoError(t, d.Next())

	require.NoError(t, d.SetAddonQuantity(catalog, "od", 3))
	require.NoError(t, d.Next())

	d.Schedule("Mon Mar 02 2026", "10:30 AM")
	require.NoError(t, d.Next())

	d.CustomerName = "Ada"
	d.ContactMethod = domain.ContactPhone
	d.ContactDetail = FormatPhone("5141234567")
	return d
}

func TestDraft_HappyPath(t *testing.T) {
	d := completeDraft(t)
	assert.Equal(t, StageDetails, d.Stage)
	assert.True(t, d.ReadyToSubmit())
}

func TestDraft_NextBlockedOnIncompleteStage(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.Next(), ErrStageIncomplete)
	assert.Equal(t, StageLength, d.Stage)
}

func TestDraft_BackPreservesFields(t *testing.T) {
	d := completeDraft(t)

	require.NoError(t, d.Back())
	require.NoError(t, d.Back())
	require.NoError(t, d.Back())
	assert.Equal(t, StageLength, d.Stage)
	assert.ErrorIs(t, d.Back(), ErrAtFirstStage)

	// Everything chosen on later stages survives the round trip.
	assert.Equal(t, "fs-m", d.LengthID)
	assert.Equal(t, 3, d.AddonQty["od"])
	assert.Equal(t, domain.DateKey("Mon Mar 02 2026"), d.Date)
	assert.Equal(t, domain.TimeLabel("10:30 AM"), d.Time)
	assert.Equal(t, "Ada", d.CustomerName)

	require.NoError(t, d.Next())
	require.NoError(t, d.Next())
	require.NoError(t, d.Next())
	assert.Equal(t, StageDetails, d.Stage)
	assert.True(t, d.ReadyToSubmit())
}

func TestDraft_SelectLength_RejectsAddonID(t *testing.T) {
	d := NewDraft()
	err := d.SelectLength(domain.DefaultCatalog(), "od")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestDraft_ToggleAddon(t *testing.T) {
	catalog := domain.DefaultCatalog()
	d := NewDraft()

	// "sm" is a toggle: on, then off.
	require.NoError(t, d.ToggleAddon(catalog, "sm"))
	assert.Equal(t, 1, d.AddonQty["sm"])
	require.NoError(t, d.ToggleAddon(catalog, "sm"))
	assert.Equal(t, 0, d.AddonQty["sm"])

	// "od" is a counter: each toggle bumps by one.
	require.NoError(t, d.ToggleAddon(catalog, "od"))
	require.NoError(t, d.ToggleAddon(catalog, "od"))
	assert.Equal(t, 2, d.AddonQty["od"])
}

func TestDraft_SetAddonQuantity_Clamps(t *testing.T) {
	catalog := domain.DefaultCatalog()
	d := NewDraft()

	require.NoError(t, d.SetAddonQuantity(catalog, "od", 99))
	assert.Equal(t, domain.MaxAddonQuantity, d.AddonQty["od"])

	require.NoError(t, d.SetAddonQuantity(catalog, "sm", 5))
	assert.Equal(t, 1, d.AddonQty["sm"], "toggle clamps to 1")

	require.NoError(t, d.SetAddonQuantity(catalog, "od", -4))
	assert.Equal(t, 0, d.AddonQty["od"])
}

func TestDraft_DetailsValidation(t *testing.T) {
	d := completeDraft(t)

	d.ContactDetail = FormatPhone("514123")
	assert.False(t, d.StageComplete(StageDetails), "partial phone is incomplete")

	d.ContactDetail = FormatPhone("5141234567")
	assert.True(t, d.StageComplete(StageDetails))

	d.ContactMethod = domain.ContactEmail
	d.ContactDetail = "   "
	assert.False(t, d.StageComplete(StageDetails), "blank email detail is incomplete")
	d.ContactDetail = "ada@example.com"
	assert.True(t, d.StageComplete(StageDetails))
	// Email format is not validated beyond being non-blank.
	d.ContactDetail = "ada.example.com"
	assert.True(t, d.StageComplete(StageDetails))

	d.CustomerName = "   "
	assert.False(t, d.StageComplete(StageDetails))
}

func TestNewDraftWithDefaults(t *testing.T) {
	d := NewDraftWithDefaults(domain.DefaultCatalog())
	assert.Equal(t, "fs-s", d.LengthID, "first length tier pre-selected")
	assert.True(t, d.StageComplete(StageLength))
}

func TestDraft_Submit(t *testing.T) {
	d := completeDraft(t)

	require.NoError(t, d.Submit())
	assert.Equal(t, StageSubmitted, d.Stage)

	// Terminal: no further transitions.
	assert.ErrorIs(t, d.Submit(), ErrAlreadyDone)
	assert.ErrorIs(t, d.Next(), ErrAlreadyDone)
	assert.ErrorIs(t, d.Back(), ErrAlreadyDone)
}

func TestDraft_Submit_Incomplete(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.Submit(), ErrStageIncomplete)
}

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("schedule")
	require.NoError(t, err)
	assert.Equal(t, StageSchedule, stage)

	_, err = ParseStage("checkout")
	assert.ErrorIs(t, err, ErrUnknownStage)
}
