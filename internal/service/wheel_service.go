package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/model"
)

// wheelSectors is the canonical sector table: six equal 60-degree
// slices. The draw is uniform over the table regardless of prize value.
var wheelSectors = []model.WheelSector{
	{ID: 1, Kind: model.KindDiscount, Magnitude: 10, Label: "10% off all products"},
	{ID: 2, Kind: model.KindRetry, Label: "Spin again"},
	{ID: 3, Kind: model.KindDiscount, Magnitude: 30, Label: "30% off all products"},
	{ID: 4, Kind: model.KindNoWin, Label: "Bad luck"},
	{ID: 5, Kind: model.KindFreeShipping, Label: "Free shipping on your order"},
	{ID: 6, Kind: model.KindGift, Label: "Mystery gift with your order"},
}

const sectorAngle = 360.0 / 6

// drawSectorIndex is swappable for deterministic tests.
var drawSectorIndex = secureRandomInt

func secureRandomInt(max int) (int, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random sector: %w", err)
	}
	return int(n.Int64()), nil
}

// OfferApplier is the slice of the offer store the wheel needs to
// deliver outcomes.
type OfferApplier interface {
	Apply(ctx context.Context, kind model.SectorKind, magnitude int, label string) *model.Offer
	Clear(ctx context.Context)
}

// WheelService drives the spin state machine:
//
//	Idle -> Spinning(startedAt, duration, target) -> Settled(outcome)
//
// The transition out of Spinning happens on a single elapsed-time
// check, not on a background timer: whichever call observes the
// deadline passed settles the spin and delivers the outcome to the
// offer store exactly once. After a non-retry outcome the wheel is
// inert until Reset.
type WheelService struct {
	offers      OfferApplier
	duration    time.Duration
	revolutions int
	now         func() time.Time

	mu        sync.Mutex
	phase     model.SpinPhase
	target    model.WheelSector
	rotation  float64
	startedAt time.Time
	outcome   *model.SpinOutcome
	locked    bool
}

// NewWheelService creates a WheelService delivering outcomes to offers.
// duration and revolutions are purely cosmetic; they shape the
// spin-to-target transition reported to clients.
func NewWheelService(offers OfferApplier, duration time.Duration, revolutions int) *WheelService {
	return NewWheelServiceWithClock(offers, duration, revolutions, time.Now)
}

// NewWheelServiceWithClock creates a WheelService with a custom clock.
// Primarily used for testing.
func NewWheelServiceWithClock(offers OfferApplier, duration time.Duration, revolutions int, now func() time.Time) *WheelService {
	return &WheelService{
		offers:      offers,
		duration:    duration,
		revolutions: revolutions,
		now:         now,
		phase:       model.PhaseIdle,
	}
}

// Sectors returns the fixed sector table.
func (s *WheelService) Sectors() []model.WheelSector {
	return wheelSectors
}

// Spin starts a spin. Calling while a spin is in flight is a no-op that
// returns the in-flight state. Returns ErrWheelLocked after a non-retry
// outcome until Reset is called.
func (s *WheelService) Spin(ctx context.Context) (model.SpinState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settle(ctx)

	if s.phase == model.PhaseSpinning {
		return s.snapshot(), nil
	}
	if s.locked {
		return s.snapshot(), ErrWheelLocked
	}

	idx, err := drawSectorIndex(len(wheelSectors))
	if err != nil {
		return s.snapshot(), err
	}
	sector := wheelSectors[idx]

	// Land the pointer on the angular center of the chosen sector,
	// plus a number of full extra revolutions.
	centerAngle := float64(idx)*sectorAngle + sectorAngle/2
	s.rotation = float64(360*s.revolutions) + (180 - centerAngle)
	s.target = sector
	s.startedAt = s.now()
	s.outcome = nil
	s.phase = model.PhaseSpinning

	log.Info().Int("sector_id", sector.ID).Str("kind", string(sector.Kind)).Msg("wheel spinning")
	return s.snapshot(), nil
}

// State returns the current spin state, settling the spin first if its
// duration has elapsed.
func (s *WheelService) State(ctx context.Context) model.SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settle(ctx)
	return s.snapshot()
}

// Reset returns the wheel to idle and re-enables spinning. It does not
// touch the offer store; a won offer survives the reset.
func (s *WheelService) Reset() model.SpinState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = model.PhaseIdle
	s.outcome = nil
	s.rotation = 0
	s.startedAt = time.Time{}
	s.locked = false
	return s.snapshot()
}

// settle transitions Spinning -> Settled once the spin duration has
// elapsed, delivering the outcome to the offer store. Caller holds mu.
func (s *WheelService) settle(ctx context.Context) {
	if s.phase != model.PhaseSpinning {
		return
	}
	if s.now().Before(s.startedAt.Add(s.duration)) {
		return
	}

	outcome := &model.SpinOutcome{
		Kind:      s.target.Kind,
		Magnitude: s.target.Magnitude,
		Label:     s.target.Label,
	}
	s.outcome = outcome
	s.phase = model.PhaseSettled

	if outcome.Kind.Wins() {
		s.offers.Apply(ctx, outcome.Kind, outcome.Magnitude, outcome.Label)
	} else {
		s.offers.Clear(ctx)
	}
	s.locked = outcome.Kind != model.KindRetry

	log.Info().
		Str("kind", string(outcome.Kind)).
		Int("magnitude", outcome.Magnitude).
		Bool("can_spin_again", !s.locked).
		Msg("spin settled")
}

// snapshot builds the observable state. Caller holds mu.
func (s *WheelService) snapshot() model.SpinState {
	return model.SpinState{
		Phase:      s.phase,
		Outcome:    s.outcome,
		Rotation:   s.rotation,
		DurationMS: s.duration.Milliseconds(),
		StartedAt:  s.startedAt,
		CanSpin:    !s.locked && s.phase != model.PhaseSpinning,
	}
}
