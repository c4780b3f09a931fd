package workflow

import (
	"errors"
	"strings"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// Stage is one screen of the guided booking flow. The order is fixed:
// length, add-ons, schedule, details.
type Stage int

const (
	StageLength Stage = iota
	StageAddons
	StageSchedule
	StageDetails
	// StageSubmitted is terminal: no Next, no Back, no further edits.
	StageSubmitted
)

var stageNames = map[Stage]string{
	StageLength:    "length",
	StageAddons:    "addons",
	StageSchedule:  "schedule",
	StageDetails:   "details",
	StageSubmitted: "submitted",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStage maps a wire name back to a stage.
func ParseStage(name string) (Stage, error) {
	for stage, n := range stageNames {
		if n == name {
			return stage, nil
		}
	}
	return 0, ErrUnknownStage
}

var (
	ErrUnknownStage    = errors.New("workflow: unknown stage")
	ErrStageIncomplete = errors.New("workflow: current stage is incomplete")
	ErrAtFirstStage    = errors.New("workflow: already at first stage")
	ErrUnknownItem     = errors.New("workflow: unknown catalog item")
	ErrAlreadyDone     = errors.New("workflow: draft already submitted")
)

// Draft is the customer's in-progress booking intent. It carries every
// field of all four stages; moving backwards never clears anything, so
// a customer returning to a later stage finds their choices intact.
type Draft struct {
	Stage Stage

	LengthID string
	AddonQty map[string]int

	Date domain.DateKey
	Time domain.TimeLabel

	CustomerName  string
	ContactMethod string
	ContactDetail string
}

// NewDraft returns an empty draft positioned at the first stage.
func NewDraft() *Draft {
	return &Draft{
		Stage:    StageLength,
		AddonQty: map[string]int{},
	}
}

// NewDraftWithDefaults returns a draft with the catalog's first length
// tier pre-selected, the way the booking flow opens for a customer.
func NewDraftWithDefaults(catalog domain.Catalog) *Draft {
	d := NewDraft()
	if lengths := catalog.Lengths(); len(lengths) > 0 {
		d.LengthID = lengths[0].ID
	}
	return d
}

// SelectLength sets the base length tier. The id must name a length
// item of the catalog.
func (d *Draft) SelectLength(catalog domain.Catalog, id string) error {
	item := catalog.FindByID(id)
	if item == nil || item.Group != domain.GroupLength {
		return ErrUnknownItem
	}
	d.LengthID = id
	return nil
}

// SetAddonQuantity sets an add-on quantity, clamped to the item's legal
// range. A toggle flips between 0 and 1 regardless of the requested qty.
func (d *Draft) SetAddonQuantity(catalog domain.Catalog, id string, qty int) error {
	item := catalog.FindByID(id)
	if item == nil || item.Group != domain.GroupAddon {
		return ErrUnknownItem
	}
	if d.AddonQty == nil {
		d.AddonQty = map[string]int{}
	}
	d.AddonQty[id] = domain.ClampQuantity(item.Kind, qty)
	return nil
}

// ToggleAddon flips a toggle add-on, or bumps a counter add-on by one
// (wrapping a full counter back to zero is not done; counters saturate).
func (d *Draft) ToggleAddon(catalog domain.Catalog, id string) error {
	item := catalog.FindByID(id)
	if item == nil || item.Group != domain.GroupAddon {
		return ErrUnknownItem
	}
	if d.AddonQty == nil {
		d.AddonQty = map[string]int{}
	}
	if item.Kind == domain.KindToggle {
		if d.AddonQty[id] > 0 {
			d.AddonQty[id] = 0
		} else {
			d.AddonQty[id] = 1
		}
		return nil
	}
	d.AddonQty[id] = domain.ClampQuantity(item.Kind, d.AddonQty[id]+1)
	return nil
}

// Schedule records the chosen slot.
func (d *Draft) Schedule(date domain.DateKey, label domain.TimeLabel) {
	d.Date = date
	d.Time = label
}

// StageComplete reports whether the given stage's required fields are
// filled. Add-ons are always complete: they are optional.
func (d *Draft) StageComplete(stage Stage) bool {
	switch stage {
	case StageLength:
		return d.LengthID != ""
	case StageAddons:
		return true
	case StageSchedule:
		return !d.Date.IsZero() && d.Time != ""
	case StageDetails:
		return d.detailsComplete()
	default:
		return false
	}
}

func (d *Draft) detailsComplete() bool {
	if strings.TrimSpace(d.CustomerName) == "" {
		return false
	}
	switch d.ContactMethod {
	case domain.ContactEmail:
		return strings.TrimSpace(d.ContactDetail) != ""
	case domain.ContactPhone:
		return len(d.ContactDetail) == domain.FormattedPhoneLength
	default:
		return false
	}
}

// Next advances to the following stage. The current stage must be
// complete; the final editable stage has no Next (Submit takes over).
func (d *Draft) Next() error {
	if d.Stage == StageSubmitted {
		return ErrAlreadyDone
	}
	if !d.StageComplete(d.Stage) {
		return ErrStageIncomplete
	}
	if d.Stage < StageDetails {
		d.Stage++
	}
	return nil
}

// Back returns to the previous stage. All fields of later stages are
// preserved. A submitted draft cannot go back.
func (d *Draft) Back() error {
	if d.Stage == StageSubmitted {
		return ErrAlreadyDone
	}
	if d.Stage == StageLength {
		return ErrAtFirstStage
	}
	d.Stage--
	return nil
}

// ReadyToSubmit reports whether every stage of the draft is complete.
func (d *Draft) ReadyToSubmit() bool {
	for stage := StageLength; stage <= StageDetails; stage++ {
		if !d.StageComplete(stage) {
			return false
		}
	}
	return true
}

// Submit marks the draft submitted. Every stage must be complete.
func (d *Draft) Submit() error {
	if d.Stage == StageSubmitted {
		return ErrAlreadyDone
	}
	if !d.ReadyToSubmit() {
		return ErrStageIncomplete
	}
	d.Stage = StageSubmitted
	return nil
}
