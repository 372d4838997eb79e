// Package observability provides structured logging and formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/talk-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs every section of a report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}
	p.PrintSpeechAnalysis(&report.SpeechAnalysis)
	p.PrintAssessment(&report.TOEFLScore)
	p.PrintPriorityAreas(&report.ImprovementPlan)
	p.PrintWeeklyPlan(&report.ImprovementPlan)
}

// PrintSpeechAnalysis outputs delivery metrics and recommendations.
func (p *Printer) PrintSpeechAnalysis(sa *types.SpeechAnalysis) {
	if sa == nil {
		return
	}

	var sb strings.Builder

	duration := fmt.Sprintf("%.0fs", sa.Duration)
	if sa.DurationEstimated {
		duration += " (estimated)"
	}
	sb.WriteString(fmt.Sprintf("Words:     %d\n", sa.TotalWords))
	sb.WriteString(fmt.Sprintf("Duration:  %s\n", duration))
	sb.WriteString(fmt.Sprintf("Rate:      %d wpm\n", sa.WordsPerMinute))
	sb.WriteString(fmt.Sprintf("Fillers:   %d (%.2f%%)  score %d/5\n",
		sa.FillerAnalysis.TotalFillers, sa.FillerAnalysis.FillerPercentage, sa.FillerAnalysis.Score))
	sb.WriteString(fmt.Sprintf("Diction:   diversity %.3f  score %d/5\n",
		sa.DictionAnalysis.VocabularyDiversity, sa.DictionAnalysis.Score))
	sb.WriteString(fmt.Sprintf("Structure: avg %.1f words  score %d/5\n",
		sa.StructureAnalysis.AvgSentenceLength, sa.StructureAnalysis.Score))
	sb.WriteString(fmt.Sprintf("Clarity:   score %d/5\n", sa.ClarityAnalysis.Score))
	sb.WriteString(fmt.Sprintf("Overall:   %.1f/5\n", sa.OverallScore))

	if len(sa.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range sa.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("SPEECH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAssessment outputs the overall level and per-criterion scores.
func (p *Printer) PrintAssessment(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f/5  %s\n", result.OverallScore, result.Level))
	sb.WriteString(fmt.Sprintf("TOEFL:    %d/30  %s\n\n", result.TOEFLEquivalent.Score, result.TOEFLEquivalent.Level))

	for _, c := range types.Criteria {
		score, ok := result.Breakdown[c]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-14s %.1f  %s\n", c, score, bar(score)))
	}

	p.printBox("PROFICIENCY ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPriorityAreas outputs the areas the plan focuses on.
func (p *Printer) PrintPriorityAreas(plan *types.ImprovementPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s → %s (about %d months)\n\n", plan.CurrentLevel, plan.NextLevel, plan.Timeline.TransitionTime))

	if len(plan.PriorityAreas) == 0 {
		sb.WriteString("No priority areas. Keep practicing!")
	}

	count := min(len(plan.PriorityAreas), maxItemsToShow)
	for i := 0; i < count; i++ {
		area := plan.PriorityAreas[i]
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(area.Priority)), area.Area))
		sb.WriteString(fmt.Sprintf("  %s\n", area.Reason))
	}

	p.printBox("PRIORITY AREAS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeeklyPlan outputs the exercise calendar, skipping empty days.
func (p *Printer) PrintWeeklyPlan(plan *types.ImprovementPlan) {
	if plan == nil || plan.WeeklyPlan.Total() == 0 {
		return
	}

	days := []struct {
		name      string
		exercises []string
	}{
		{"Monday", plan.WeeklyPlan.Monday},
		{"Tuesday", plan.WeeklyPlan.Tuesday},
		{"Wednesday", plan.WeeklyPlan.Wednesday},
		{"Thursday", plan.WeeklyPlan.Thursday},
		{"Friday", plan.WeeklyPlan.Friday},
		{"Saturday", plan.WeeklyPlan.Saturday},
		{"Sunday", plan.WeeklyPlan.Sunday},
	}

	var sb strings.Builder
	for _, day := range days {
		if len(day.exercises) == 0 {
			continue
		}
		sb.WriteString(day.name + ":\n")
		for _, ex := range day.exercises {
			sb.WriteString(fmt.Sprintf("  • %s\n", ex))
		}
	}

	p.printBox("WEEKLY PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders a 1-5 score as a ten-cell gauge
func bar(score float64) string {
	filled := int(score * 2)
	filled = max(0, min(filled, 10))
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= boxWidth-4 {
		return s
	}
	return s + strings.Repeat(" ", boxWidth-4-n)
}
