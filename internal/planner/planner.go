// Package planner turns an assessment into a prioritized, leveled improvement plan.
package planner

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/jonathan/talk-coach/internal/numeric"
	"github.com/jonathan/talk-coach/internal/types"
	"github.com/samber/lo"
)

// Exercise slots per cadence; whatever is left over is monthly work
const (
	dailySlots  = 2
	weeklySlots = 2
)

const monthsPerPoint = 3

// Confidence thresholds on the population variance of the sub-scores
const (
	highConfidenceVariance   = 0.5
	mediumConfidenceVariance = 1.0
)

// Plan builds the improvement plan for an assessment of the transcript described by fs.
func Plan(fs types.FeatureSet, result types.AssessmentResult) types.ImprovementPlan {
	current := result.Level
	next := NextLevel(current)
	areas := PriorityAreas(fs, result.Breakdown)

	return types.ImprovementPlan{
		CurrentLevel:      current,
		NextLevel:         next,
		PriorityAreas:     areas,
		Exercises:         Exercises(areas),
		Resources:         Resources(areas),
		Timeline:          BuildTimeline(current, next),
		Milestones:        Milestones(current, next),
		EstimatedProgress: EstimateProgress(result),
		WeeklyPlan:        WeeklyPlan(areas),
		MotivationTips:    MotivationTips(current),
	}
}

// NextLevel returns the level after l. Advanced is terminal; an unknown level
// is treated as below Beginner.
func NextLevel(l types.Level) types.Level {
	i := min(l.Index()+1, len(types.Levels)-1)
	return types.Levels[i]
}

// PriorityAreas finds the areas that need work. Lexical triggers are evaluated first,
// then every criterion in order; the first entry for an area wins and the result is
// stably sorted by priority, highest first.
func PriorityAreas(fs types.FeatureSet, subs types.SubScores) []types.PriorityArea {
	var areas []types.PriorityArea

	if fs.FillerPercentage > 5 {
		areas = append(areas, types.PriorityArea{Area: types.Fluency, Priority: types.PriorityHigh, Reason: "High filler word usage"})
	}
	if fs.VocabularyDiversity < 0.5 {
		areas = append(areas, types.PriorityArea{Area: types.Vocabulary, Priority: types.PriorityHigh, Reason: "Limited vocabulary diversity"})
	}
	if fs.VagueWords > 3 {
		areas = append(areas, types.PriorityArea{Area: types.Vocabulary, Priority: types.PriorityMedium, Reason: "Overuse of vague words"})
	}
	if len(fs.RepetitiveWords) > 2 {
		areas = append(areas, types.PriorityArea{Area: types.Vocabulary, Priority: types.PriorityMedium, Reason: "Word repetition"})
	}

	for _, c := range types.Criteria {
		score, ok := subs[c]
		if !ok {
			continue
		}
		switch {
		case score < 3:
			areas = append(areas, types.PriorityArea{Area: c, Priority: types.PriorityHigh, Reason: fmt.Sprintf("Low %s score (%s/5)", c, formatScore(score))})
		case score < 4:
			areas = append(areas, types.PriorityArea{Area: c, Priority: types.PriorityMedium, Reason: fmt.Sprintf("Moderate %s score (%s/5)", c, formatScore(score))})
		}
	}

	unique := lo.UniqBy(areas, func(a types.PriorityArea) types.Criterion {
		return a.Area
	})
	slices.SortStableFunc(unique, func(a, b types.PriorityArea) int {
		return b.Priority.Weight() - a.Priority.Weight()
	})
	return unique
}

// Exercises splits each area's exercise list into daily, weekly and monthly work.
func Exercises(areas []types.PriorityArea) map[types.Criterion]types.ExerciseSet {
	out := make(map[types.Criterion]types.ExerciseSet, len(areas))
	for _, a := range areas {
		list := areaGuides[a.Area].exercises
		out[a.Area] = types.ExerciseSet{
			Priority: a.Priority,
			Daily:    window(list, 0, dailySlots),
			Weekly:   window(list, dailySlots, dailySlots+weeklySlots),
			Monthly:  window(list, dailySlots+weeklySlots, len(list)),
		}
	}
	return out
}

// Resources returns the study resources for each area.
func Resources(areas []types.PriorityArea) map[types.Criterion][]string {
	out := make(map[types.Criterion][]string, len(areas))
	for _, a := range areas {
		out[a.Area] = clone(areaGuides[a.Area].resources)
	}
	return out
}

// WeeklyPlan schedules exercises: high-priority areas on Monday, Wednesday and Friday,
// medium-priority areas on Tuesday and Thursday. Slots past the end of an area's
// exercise list are skipped.
func WeeklyPlan(areas []types.PriorityArea) types.WeeklyPlan {
	week := types.NewWeeklyPlan()
	for _, a := range areas {
		list := areaGuides[a.Area].exercises
		switch a.Priority {
		case types.PriorityHigh:
			week.Monday = appendSlot(week.Monday, list, 0)
			week.Wednesday = appendSlot(week.Wednesday, list, 1)
			week.Friday = appendSlot(week.Friday, list, 2)
		case types.PriorityMedium:
			week.Tuesday = appendSlot(week.Tuesday, list, 0)
			week.Thursday = appendSlot(week.Thursday, list, 1)
		}
	}
	return week
}

// BuildTimeline describes the current and next levels and the months between them.
func BuildTimeline(current, next types.Level) types.Timeline {
	currentMonths, nextMonths := defaultCurrentMonths, defaultNextMonths
	if g, ok := levelGuides[current]; ok {
		currentMonths = g.months
	}
	if g, ok := levelGuides[next]; ok {
		nextMonths = g.months
	}

	return types.Timeline{
		CurrentLevel:   summarize(current),
		NextLevel:      summarize(next),
		TransitionTime: numeric.RoundInt(float64(nextMonths-currentMonths) / 2),
	}
}

// Milestones lists every level from current through next, inclusive.
func Milestones(current, next types.Level) []types.Milestone {
	from, to := max(current.Index(), 0), next.Index()
	milestones := []types.Milestone{}
	for i := from; i <= to; i++ {
		level := types.Levels[i]
		g := levelGuides[level]
		milestones = append(milestones, types.Milestone{
			Level:         level,
			Goals:         clone(g.goals),
			EstimatedTime: g.timeline,
			Checkpoints:   clone(g.checkpoints),
		})
	}
	return milestones
}

// EstimateProgress compares the overall score to the target of the current level.
// Confidence reflects how consistent the sub-scores are.
func EstimateProgress(result types.AssessmentResult) types.ProgressEstimate {
	target := defaultTarget
	if g, ok := levelGuides[result.Level]; ok {
		target = g.target
	}
	current := result.OverallScore

	return types.ProgressEstimate{
		CurrentScore:       current,
		TargetScore:        target,
		ProgressPercentage: numeric.RoundInt(current / target * 100),
		TimeToTarget:       numeric.RoundInt((target - current) * monthsPerPoint),
		Confidence:         confidence(result.Breakdown),
	}
}

// MotivationTips returns encouragement for the level, or the Intermediate tips for an unknown level.
func MotivationTips(l types.Level) []string {
	g, ok := levelGuides[l]
	if !ok {
		g = levelGuides[tipsFallback]
	}
	return clone(g.tips)
}

func confidence(subs types.SubScores) string {
	v := numeric.Variance(subs.Values())
	switch {
	case v < highConfidenceVariance:
		return "high"
	case v < mediumConfidenceVariance:
		return "medium"
	default:
		return "low"
	}
}

func summarize(l types.Level) types.LevelSummary {
	g := levelGuides[l]
	return types.LevelSummary{
		Name:     l,
		Timeline: g.timeline,
		Goals:    clone(g.goals),
	}
}

// formatScore prints a score without trailing zeros ("3", "2.5").
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// window returns a copy of list[from:to], truncated to the list length.
func window(list []string, from, to int) []string {
	from, to = min(from, len(list)), min(to, len(list))
	return clone(list[from:to])
}

func appendSlot(day, list []string, i int) []string {
	if i >= len(list) {
		return day
	}
	return append(day, list[i])
}

func clone(list []string) []string {
	if list == nil {
		return []string{}
	}
	return slices.Clone(list)
}
