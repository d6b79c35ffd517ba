package service

import (
	"context"
	"log"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// CaptureService manages the daily-log scratch buffer. Nothing touches the
// aggregate until Commit; abandoning the buffer is always safe.
type CaptureService struct {
	states *StateService
	buffer *entity.DailyLog
}

func NewCaptureService(states *StateService) *CaptureService {
	if states == nil {
		log.Fatal("on capture service provided nil state service")
	}
	return &CaptureService{states: states}
}

// Begin seeds the buffer: today's existing log when present, field defaults
// otherwise. Re-entering after an abandon re-seeds from current state, not
// from the discarded buffer.
func (serv *CaptureService) Begin() *entity.DailyLog {
	today := serv.states.Today()
	for _, l := range serv.states.State().Logs {
		if l.Date == today {
			seed := l
			serv.buffer = &seed
			return serv.buffer
		}
	}
	serv.buffer = &entity.DailyLog{
		Date:         today,
		Shift:        AutoShift(serv.states.now()),
		SleepHours:   0,
		SleepQuality: 7,
		Energy:       7,
		Mood:         7,
		Habits: entity.HabitFlags{
			NoAlcohol:  true,
			NoNicotine: true,
			CleanPMO:   true,
		},
	}
	return serv.buffer
}

// Buffer exposes the in-progress log, or nil outside a capture workflow.
func (serv *CaptureService) Buffer() *entity.DailyLog {
	return serv.buffer
}

func (serv *CaptureService) SetSleepHours(v float64) {
	if serv.buffer == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	serv.buffer.SleepHours = v
}

func (serv *CaptureService) SetSleepQuality(v int) {
	if serv.buffer != nil {
		serv.buffer.SleepQuality = clampMetric(v)
	}
}

func (serv *CaptureService) SetEnergy(v int) {
	if serv.buffer != nil {
		serv.buffer.Energy = clampMetric(v)
	}
}

func (serv *CaptureService) SetMood(v int) {
	if serv.buffer != nil {
		serv.buffer.Mood = clampMetric(v)
	}
}

func (serv *CaptureService) ToggleProteinHit() {
	if serv.buffer != nil {
		serv.buffer.ProteinHit = !serv.buffer.ProteinHit
	}
}

func (serv *CaptureService) ToggleHydration() {
	if serv.buffer != nil {
		serv.buffer.Hydration = !serv.buffer.Hydration
	}
}

func (serv *CaptureService) ToggleCaffeineCutoff() {
	if serv.buffer != nil {
		serv.buffer.CaffeineCutoff = !serv.buffer.CaffeineCutoff
	}
}

func (serv *CaptureService) ToggleNoAlcohol() {
	if serv.buffer != nil {
		serv.buffer.Habits.NoAlcohol = !serv.buffer.Habits.NoAlcohol
	}
}

func (serv *CaptureService) ToggleNoNicotine() {
	if serv.buffer != nil {
		serv.buffer.Habits.NoNicotine = !serv.buffer.Habits.NoNicotine
	}
}

func (serv *CaptureService) ToggleCleanPMO() {
	if serv.buffer != nil {
		serv.buffer.Habits.CleanPMO = !serv.buffer.Habits.CleanPMO
	}
}

// Commit folds the buffer into state as an upsert for its date and ends the
// workflow.
func (serv *CaptureService) Commit(ctx context.Context) {
	if serv.buffer == nil {
		return
	}
	serv.states.Dispatch(ctx, SaveLog{Log: *serv.buffer})
	serv.buffer = nil
}

// Abandon discards the buffer without persisting anything.
func (serv *CaptureService) Abandon() {
	serv.buffer = nil
}

func clampMetric(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
