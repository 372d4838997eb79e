// Package types provides type definitions for structured data used throughout the talk-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority is the severity tag of a priority area
type Priority string

// Priority tags
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the sort weight of the priority (high=3, medium=2, low=1, unknown=0).
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// PriorityArea is a criterion the learner should work on, with the reason it was chosen
type PriorityArea struct {
	Area     Criterion `json:"area"`
	Priority Priority  `json:"priority"`
	Reason   string    `json:"reason"`
}

// ExerciseSet groups an area's exercises by cadence
type ExerciseSet struct {
	Priority Priority `json:"priority"`
	Daily    []string `json:"daily"`
	Weekly   []string `json:"weekly"`
	Monthly  []string `json:"monthly"`
}

// LevelSummary describes a level's typical timeline and goals
type LevelSummary struct {
	Name     Level    `json:"name"`
	Timeline string   `json:"timeline"`
	Goals    []string `json:"goals"`
}

// Timeline describes the move from the current level to the next one
type Timeline struct {
	CurrentLevel   LevelSummary `json:"currentLevel"`
	NextLevel      LevelSummary `json:"nextLevel"`
	TransitionTime int          `json:"transitionTime"` // months
}

// Milestone is a level on the path to the next level with its checkpoints
type Milestone struct {
	Level         Level    `json:"level"`
	Goals         []string `json:"goals"`
	EstimatedTime string   `json:"estimatedTime"`
	Checkpoints   []string `json:"checkpoints"`
}

// ProgressEstimate compares the current score to the target for the level
type ProgressEstimate struct {
	CurrentScore       float64 `json:"currentScore"`
	TargetScore        float64 `json:"targetScore"`
	ProgressPercentage int     `json:"progressPercentage"`
	TimeToTarget       int     `json:"timeToTarget"` // months
	Confidence         string  `json:"confidence"`
}

// WeeklyPlan assigns exercises to days of the week
type WeeklyPlan struct {
	Monday    []string `json:"monday"`
	Tuesday   []string `json:"tuesday"`
	Wednesday []string `json:"wednesday"`
	Thursday  []string `json:"thursday"`
	Friday    []string `json:"friday"`
	Saturday  []string `json:"saturday"`
	Sunday    []string `json:"sunday"`
}

// NewWeeklyPlan returns a plan with an empty, non-nil list for every day.
func NewWeeklyPlan() WeeklyPlan {
	return WeeklyPlan{
		Monday:    []string{},
		Tuesday:   []string{},
		Wednesday: []string{},
		Thursday:  []string{},
		Friday:    []string{},
		Saturday:  []string{},
		Sunday:    []string{},
	}
}

// Total returns the number of exercise slots assigned across the week.
func (w WeeklyPlan) Total() int {
	return len(w.Monday) + len(w.Tuesday) + len(w.Wednesday) + len(w.Thursday) +
		len(w.Friday) + len(w.Saturday) + len(w.Sunday)
}

// ImprovementPlan is the personalized curriculum produced for an assessment
type ImprovementPlan struct {
	CurrentLevel      Level                     `json:"currentLevel"`
	NextLevel         Level                     `json:"nextLevel"`
	PriorityAreas     []PriorityArea            `json:"priorityAreas"`
	Exercises         map[Criterion]ExerciseSet `json:"exercises"`
	Resources         map[Criterion][]string    `json:"resources"`
	Timeline          Timeline                  `json:"timeline"`
	Milestones        []Milestone               `json:"milestones"`
	EstimatedProgress ProgressEstimate          `json:"estimatedProgress"`
	WeeklyPlan        WeeklyPlan                `json:"weeklyPlan"`
	MotivationTips    []string                  `json:"motivationTips"`
}
