// Package content is the static reference catalog: shift schedule templates,
// home workout definitions, the warm-up protocol and library text. The catalog
// is compiled in and never mutated; schedule ordering is load-bearing because
// completion tracking keys off item position.
package content

import "github.com/manojv472/Shift-protocol/pkg/entity"

var shiftSchedules = map[entity.ShiftType][]entity.ScheduleItem{
	entity.ShiftA: {
		{Time: "05:15", Activity: "Wake", Duration: "-", Notes: "Don't snooze. 500ml water first."},
		{Time: "05:15", Activity: "Toilet + Face Wash", Duration: "20 min", Notes: "Quick hygiene stack."},
		{Time: "05:35", Activity: "Bath #1 (Morning)", Duration: "20 min", Notes: "Warm water. Energizes you for the day."},
		{Time: "06:00", Activity: "Leave Home", Duration: "-", Notes: "Commute ~30 min. Sunrise exposure."},
		{Time: "06:00", Activity: "Work (A Shift)", Duration: "8 hours", Notes: "Meal provided by company canteen. Hydrate hourly. Caffeine cutoff: 2:00 PM."},
		{Time: "14:00", Activity: "Shift End", Duration: "-", Notes: "Commute back home."},
		{Time: "15:30", Activity: "Reach Home + Reset", Duration: "15 min", Notes: "Meal 2 (Big Carbs - Cook at home). 10-Min Cleaning."},
		{Time: "15:45", Activity: "Strength Training", Duration: "50 min", Notes: "Home Protocol: Barbell & DB only."},
		{Time: "16:35", Activity: "Bath #2 (Post Training)", Duration: "20 min", Notes: "Warm water rinse. Removes sweat."},
		{Time: "17:00", Activity: "Cook Dinner", Duration: "30 min", Notes: "Protein Anchor (Fish/Chicken). Fresh home meal."},
		{Time: "17:30", Activity: "Dinner", Duration: "30 min", Notes: "High protein, rice, vegetables. Relaxed meal."},
		{Time: "18:15", Activity: "Study Block (Reading)", Duration: "90 min", Notes: "WILP coursework. Deep focus window."},
		{Time: "19:45", Activity: "Light Chores", Duration: "60 min", Notes: "Laundry, dishes, fill water containers."},
		{Time: "20:45", Activity: "Wind-Down", Duration: "45 min", Notes: "Dim lights, screens off, fan on."},
		{Time: "21:30", Activity: "Sleep Target", Duration: "8 hours", Notes: "Aim for consistent 9:30 PM sleep."},
	},
	entity.ShiftB: {
		{Time: "08:00", Activity: "Wake + Light", Duration: "-", Notes: "Immediate sunrise exposure sets day-mode."},
		{Time: "08:00", Activity: "Hygiene + Bath #1", Duration: "30 min", Notes: "Warm water. Energizing morning ritual."},
		{Time: "08:30", Activity: "Cook Breakfast", Duration: "30 min", Notes: "Home cooked breakfast."},
		{Time: "09:00", Activity: "Meal 1 (Breakfast)", Duration: "30 min", Notes: "Eggs + rice/poha. Protein first."},
		{Time: "09:30", Activity: "Home Reset (Cleaning)", Duration: "15 min", Notes: "Bed, dishes, quick sweep."},
		{Time: "10:15", Activity: "Strength Training", Duration: "60 min", Notes: "Home Protocol: Barbell & DB only."},
		{Time: "11:15", Activity: "Bath #2 (Post Training)", Duration: "20 min", Notes: "Prepares for study focus."},
		{Time: "11:40", Activity: "Study Block (Reading)", Duration: "45 min", Notes: "WILP coursework. Focused work only."},
		{Time: "12:25", Activity: "Meal 2 (Bigger Carbs)", Duration: "25 min", Notes: "Rice + protein (Cooked at home)."},
		{Time: "12:50", Activity: "Leave Home", Duration: "10 min", Notes: "Commute ~15-20 min."},
		{Time: "13:00", Activity: "Work (B Shift)", Duration: "9 hours", Notes: "Meal provided by company canteen. Caffeine cutoff: 5:00 PM."},
		{Time: "22:00", Activity: "Return Home", Duration: "30 min", Notes: "Eat Meal 3 (Home cooked, high protein)."},
		{Time: "23:30", Activity: "Quick Tidy + Wash", Duration: "15 min", Notes: "Signals body that sleep is coming."},
		{Time: "23:45", Activity: "Wind-Down", Duration: "30 min", Notes: "Dark room, minimal phone."},
		{Time: "00:15", Activity: "Sleep Target", Duration: "8 hours", Notes: "Consistent 12:15 AM sleep on B days."},
	},
	entity.ShiftC: {
		{Time: "16:30", Activity: "Wake (Day 1)", Duration: "-", Notes: "Treat this as your \"Morning\"."},
		{Time: "16:30", Activity: "Bath #1 (Wake-Up)", Duration: "30 min", Notes: "Warm water helps night-shift alertness."},
		{Time: "17:00", Activity: "Cook & Reset", Duration: "30 min", Notes: "Quick cleaning + cook Meal 1 at home."},
		{Time: "17:30", Activity: "Meal 1 (Home)", Duration: "45 min", Notes: "Fish curry + rice. Not greasy."},
		{Time: "18:15", Activity: "Short Workout", Duration: "45 min", Notes: "Moderate RPE (6-7). No maxing."},
		{Time: "19:00", Activity: "Bath #2 (Post Training)", Duration: "20 min", Notes: "Removes sweat. Prepares for study."},
		{Time: "19:20", Activity: "Meal 2 (Home)", Duration: "45 min", Notes: "Chicken + rice (Cooked at home)."},
		{Time: "20:05", Activity: "Study Block (Reading)", Duration: "30 min", Notes: "Anki flashcards/light tasks only."},
		{Time: "20:35", Activity: "Leave for Work", Duration: "25 min", Notes: "Commute to site. Last caffeine max 1:00 AM."},
		{Time: "21:00", Activity: "Work (Night Shift)", Duration: "11.5 hours", Notes: "Overnight meal provided by company canteen. Early shift: bright light. Late: dim."},
		{Time: "08:30", Activity: "Return (Day 2 AM)", Duration: "-", Notes: "DROWSY DRIVING RULE: Pull over if struggling."},
		{Time: "08:30", Activity: "Quick Rinse + Tidy", Duration: "25 min", Notes: "Home reset after shift. Curtains ON."},
		{Time: "08:55", Activity: "Meal 4 (Post-Shift)", Duration: "20 min", Notes: "Eggs + rice (Cooked at home). Low sugar."},
		{Time: "09:15", Activity: "MAIN SLEEP BLOCK", Duration: "6 hours", Notes: "Blackout curtains sealed. Sacred rest."},
	},
	entity.ShiftOff: {
		{Time: "08:30", Activity: "Return from Night Shift", Duration: "-", Notes: "Rotation complete. Avoid screens on commute."},
		{Time: "08:45", Activity: "Post-Rotation Meal", Duration: "30 min", Notes: "High protein + moderate fats. No caffeine."},
		{Time: "09:30", Activity: "Hygiene + Quick Rinse", Duration: "15 min", Notes: "Signals brain that shift is over."},
		{Time: "10:00", Activity: "Strategic Recovery Nap", Duration: "120 min", Notes: "Limit to 2 hours max to reset circadian clock."},
		{Time: "12:30", Activity: "Wake + Sun Reset", Duration: "20 min", Notes: "CRITICAL: Get direct sunlight. Signals \"Day Mode\"."},
		{Time: "13:00", Activity: "Home Reset (Deep Clean)", Duration: "60 min", Notes: "Clear the week's clutter. Mental reset."},
		{Time: "14:30", Activity: "Meal 2 (Anchor Lunch)", Duration: "45 min", Notes: "Home cooked. Fresh vegetables + protein."},
		{Time: "16:00", Activity: "Active Recovery / Mobility", Duration: "45 min", Notes: "Yoga or long walk. Flush the system."},
		{Time: "17:30", Activity: "Grocery / Errand Run", Duration: "60 min", Notes: "Stock up for the next rotation."},
		{Time: "19:00", Activity: "Meal 3 (Social Dinner)", Duration: "60 min", Notes: "Re-sync with world/family/friends."},
		{Time: "21:00", Activity: "Wind-Down Ritual", Duration: "60 min", Notes: "Magnesium bath. No tech."},
		{Time: "22:00", Activity: "Primary Sleep (Target)", Duration: "9 hours", Notes: "The big reset. Aim for deep REM."},
	},
}

// workouts preserves authoring order; Workouts() and the training tab list them
// in this order.
var workouts = []entity.Workout{
	{
		ID:          "upperA",
		Name:        "Home Upper A (Strength)",
		Description: "Barbell & DB Focus. 5-8 Reps for Power.",
		Exercises: []entity.WorkoutExercise{
			{ID: "u1", Name: "Barbell Floor Press", Sets: 4, Reps: "5-8", Tempo: "31X1", RPE: "7-8", Rest: "120s", Notes: "Safe home alternative to bench press."},
			{ID: "u2", Name: "Barbell Bent Over Row", Sets: 4, Reps: "8-10", Tempo: "2111", RPE: "7-8", Rest: "90s", Notes: "Keep back flat, pull to belly button."},
			{ID: "u3", Name: "Barbell Overhead Press", Sets: 3, Reps: "8-10", Tempo: "2010", RPE: "6-8", Rest: "90s", Notes: "Strict standing press."},
			{ID: "u4", Name: "Dumbbell Lateral Raises", Sets: 3, Reps: "12-15", Tempo: "2011", RPE: "9", Rest: "60s", Notes: "Control the descent."},
		},
	},
	{
		ID:          "lowerA",
		Name:        "Home Lower A (Hypertrophy)",
		Description: "Barbell & DB Focus. RPE 6-8.",
		Exercises: []entity.WorkoutExercise{
			{ID: "l1", Name: "Barbell Zercher Squat", Sets: 4, Reps: "8-10", Tempo: "3010", RPE: "7-8", Rest: "180s", Notes: "Great for homes without a squat rack."},
			{ID: "l2", Name: "Barbell Romanian Deadlift", Sets: 3, Reps: "10-12", Tempo: "3010", RPE: "6-7", Rest: "120s", Notes: "Focus on the hamstring stretch."},
			{ID: "l3", Name: "Dumbbell Goblet Squat", Sets: 3, Reps: "12-15", Tempo: "2011", RPE: "8", Rest: "90s", Notes: "Hold one heavy DB close to chest."},
			{ID: "l4", Name: "Barbell Calf Raises", Sets: 4, Reps: "15-20", Tempo: "1112", RPE: "8", Rest: "45s", Notes: "Standing with bar on traps."},
		},
	},
	{
		ID:          "upperB",
		Name:        "Home Upper B (Hypertrophy)",
		Description: "High volume DB & Barbell.",
		Exercises: []entity.WorkoutExercise{
			{ID: "ub1", Name: "Dumbbell Floor Press (Volume)", Sets: 4, Reps: "10-12", Tempo: "3010", RPE: "8", Rest: "90s", Notes: "High chest activation on floor."},
			{ID: "ub2", Name: "Single Arm DB Row", Sets: 4, Reps: "10-12", Tempo: "2011", RPE: "8", Rest: "60s", Notes: "Brace on a sturdy chair or bed."},
			{ID: "ub3", Name: "Dumbbell Arnold Press", Sets: 3, Reps: "12-15", Tempo: "2111", RPE: "7", Rest: "60s", Notes: "Full rotation at bottom."},
			{ID: "ub4", Name: "Barbell Bicep Curls", Sets: 3, Reps: "10-12", Tempo: "2010", RPE: "8", Rest: "60s", Notes: "No swinging."},
		},
	},
}

// ConditioningBlock is one density-training finisher prescription.
type ConditioningBlock struct {
	Name         string
	Prescription string
}

// ConditioningNote is the tagline shown with the conditioning reference.
const ConditioningNote = "Density training. Minimal rest between cycles."

var conditioningBlocks = []ConditioningBlock{
	{Name: "DB Thrusters", Prescription: "20s ON / 10s OFF x 8 rounds"},
	{Name: "Barbell Complexes", Prescription: "Clean-Press-Row-RDL (5 rounds)"},
}

var warmupProtocol = []string{
	"5m Dynamic Cardio (Jump rope/Walk)",
	"Arm Circles (Small & Large)",
	"Leg Swings (Lateral & Front)",
	"Cat-Cow (10 reps)",
	"Bird-Dog (10 reps each side)",
	"Thoracic Bridges (5 each side)",
}

var librarySections = []entity.LibrarySection{
	{
		ID:    "global-rules",
		Title: "1.2 Global Rules",
		Content: `
### Light & Circadian rhythm
* Night shifts require strategic light management.
* Morning sunlight is your reset tool (6:00 AM-9:00 AM).
* Driving home in sunlight? Wear blue-light blockers.

### Caffeine Cutoffs
* A Shift: 2:00 PM
* B Shift: 5:00 PM
* C Shift: 1:00 AM (latest)

### Hydration
* Upon waking: 500 ml water + pinch of salt + lemon.
* Irritable? Headache? Cravings? -> Hydrate first.
`,
	},
	{
		ID:    "training-rules",
		Title: "2.1 Training Rules (Home)",
		Content: `
### The Rules
1. Perfect reps beat heavy reps. Form first.
2. Leave 2-3 reps in the tank (RPE 6-8).
3. Progressive overload: +1 rep or +1.25kg each week.
4. Never destroy sleep for a workout.
5. C-shift: Keep workouts short, moderate RPE.
6. Safety First: Without a rack, use Floor Presses and Zercher Squats for heavy compound loading.
`,
	},
}

// Schedule returns the fixed template for a shift. Unknown shifts yield nil,
// which downstream code treats as an empty schedule.
func Schedule(shift entity.ShiftType) []entity.ScheduleItem {
	return shiftSchedules[shift]
}

// Workout looks up a workout by id.
func Workout(id string) (*entity.Workout, bool) {
	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], true
		}
	}
	return nil, false
}

// Workouts lists the catalog in authoring order.
func Workouts() []entity.Workout {
	return workouts
}

func WarmupSteps() []string {
	return warmupProtocol
}

func ConditioningBlocks() []ConditioningBlock {
	return conditioningBlocks
}

func LibrarySections() []entity.LibrarySection {
	return librarySections
}
