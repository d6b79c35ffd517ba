package entity

// DateLayout is the calendar-date key format used throughout the app.
const DateLayout = "2006-01-02"

type ShiftType string

const (
	ShiftA   ShiftType = "A"
	ShiftB   ShiftType = "B"
	ShiftC   ShiftType = "C"
	ShiftOff ShiftType = "OFF"
)

type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12h"
	TimeFormat24h TimeFormat = "24h"
)

type TextSize string

const (
	TextSmall  TextSize = "small"
	TextMedium TextSize = "medium"
	TextLarge  TextSize = "large"
)

type Settings struct {
	ThemeIntensity int        `json:"themeIntensity" validate:"min=0,max=100"`
	TextSize       TextSize   `json:"textSize" validate:"oneof=small medium large"`
	TimeFormat     TimeFormat `json:"timeFormat" validate:"oneof=12h 24h"`
}

// HabitFlags are the three daily discipline habits, default all-true.
type HabitFlags struct {
	NoAlcohol  bool `json:"noAlcohol"`
	NoNicotine bool `json:"noNicotine"`
	CleanPMO   bool `json:"cleanPMO"`
}

// DailyLog holds one calendar date's wellness metrics. At most one exists per date.
type DailyLog struct {
	Date           string     `json:"date" validate:"required,datetime=2006-01-02"`
	Shift          ShiftType  `json:"shift" validate:"oneof=A B C OFF"`
	SleepHours     float64    `json:"sleepHours" validate:"min=0"`
	SleepQuality   int        `json:"sleepQuality" validate:"min=1,max=10"`
	Energy         int        `json:"energy" validate:"min=1,max=10"`
	Mood           int        `json:"mood" validate:"min=1,max=10"`
	ProteinHit     bool       `json:"proteinHit"`
	Hydration      bool       `json:"hydration"`
	CaffeineCutoff bool       `json:"caffeineCutoff"`
	Habits         HabitFlags `json:"habits"`
}

type SetEntry struct {
	Weight    float64 `json:"weight" validate:"min=0"`
	Reps      int     `json:"reps" validate:"min=0"`
	Completed bool    `json:"completed"`
}

type ExerciseProgress struct {
	ExerciseID string     `json:"exerciseId"`
	Sets       []SetEntry `json:"sets" validate:"dive"`
}

// TrainingLog is one finished workout session. Append-only, immutable once logged.
// WorkoutID is not validated against the catalog; a dangling id is tolerated.
type TrainingLog struct {
	ID        string             `json:"id" validate:"required"`
	Date      string             `json:"date" validate:"required,datetime=2006-01-02"`
	WorkoutID string             `json:"workoutId"`
	Exercises []ExerciseProgress `json:"exercises" validate:"dive"`
}

// AppState is the single root aggregate. It is mutated only through the
// service reducer and persisted as one snapshot document after every change.
type AppState struct {
	Logs           []DailyLog       `json:"logs" validate:"dive"`
	TrainingLogs   []TrainingLog    `json:"trainingLogs" validate:"dive"`
	CompletedTasks map[string][]int `json:"completedTasks"`
	CurrentShift   ShiftType        `json:"currentShift" validate:"oneof=A B C OFF"`
	Settings       Settings         `json:"settings"`
}

// Clone returns a deep copy, so reducer outputs never alias their inputs.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		Logs:           make([]DailyLog, len(s.Logs)),
		TrainingLogs:   make([]TrainingLog, len(s.TrainingLogs)),
		CompletedTasks: make(map[string][]int, len(s.CompletedTasks)),
		CurrentShift:   s.CurrentShift,
		Settings:       s.Settings,
	}
	copy(out.Logs, s.Logs)
	for i, tl := range s.TrainingLogs {
		exs := make([]ExerciseProgress, len(tl.Exercises))
		for j, ex := range tl.Exercises {
			sets := make([]SetEntry, len(ex.Sets))
			copy(sets, ex.Sets)
			exs[j] = ExerciseProgress{ExerciseID: ex.ExerciseID, Sets: sets}
		}
		tl.Exercises = exs
		out.TrainingLogs[i] = tl
	}
	for date, idxs := range s.CompletedTasks {
		cp := make([]int, len(idxs))
		copy(cp, idxs)
		out.CompletedTasks[date] = cp
	}
	return out
}

// DefaultSettings returns settings as shipped on first run.
func DefaultSettings() Settings {
	return Settings{
		ThemeIntensity: 100,
		TextSize:       TextMedium,
		TimeFormat:     TimeFormat12h,
	}
}

// ScheduleItem is one fixed activity block within a shift's daily template.
// Completion tracking keys off its position in the template, so catalog
// ordering is load-bearing.
type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
	Notes    string `json:"notes"`
}

type WorkoutExercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Tempo string `json:"tempo"`
	RPE   string `json:"rpe"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
}

type Workout struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

type LibrarySection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
