package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/textgate/textgate/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderVerdict formats a validation verdict for terminal output.
func RenderVerdict(v domain.ValidationVerdict) string {
	var b strings.Builder

	title := headerStyle.Render("textgate")
	subtitle := dimStyle.Render("Text Quality Check")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + penaltyHeadline(v)))
	b.WriteString("\n\n")

	renderSignals(&b, v)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	renderIssues(&b, v.Issues)
	return b.String()
}

// RenderScoreResult formats a scored (or rejected) submission.
func RenderScoreResult(r *domain.ScoreResult) string {
	var b strings.Builder

	title := headerStyle.Render("textgate")
	subtitle := dimStyle.Render("Essay Score")

	var headline string
	if r.Rejected() {
		headline = failStyle.Bold(true).Render(domain.StatusRejected)
	} else {
		headline = lipgloss.NewStyle().Bold(true).Foreground(penaltyColor(r.Penalty)).
			Render(fmt.Sprintf("%.2f", r.FinalScore))
		headline += "  " + dimStyle.Render(fmt.Sprintf("(raw %.2f × %.2f)", r.RawScore, r.Penalty))
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + headline))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(padRight("submission", 20)), faintStyle.Render(r.ID))
	renderSignals(&b, r.Verdict)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	renderIssues(&b, r.Feedback)
	return b.String()
}

// RenderBatch formats one line per validated file plus a summary.
func RenderBatch(results []domain.FileVerdict) string {
	if len(results) == 0 {
		return "  " + dimStyle.Render("No files validated.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Batch Validation") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	var invalid int
	for _, r := range results {
		icon := passStyle.Render("●")
		if !r.Verdict.IsValid {
			icon = failStyle.Render("●")
			invalid++
		}
		penalty := lipgloss.NewStyle().Foreground(penaltyColor(r.Verdict.PenaltyMultiplier)).
			Render(fmt.Sprintf("%.2f", r.Verdict.PenaltyMultiplier))
		fmt.Fprintf(&b, "  %s %s %s  %s\n", icon,
			fileStyle.Render(padRight(shortenPath(r.Path), 40)), penalty,
			faintStyle.Render(fmt.Sprintf("%d issues", len(r.Verdict.Issues))))
	}

	b.WriteString("\n")
	if invalid == 0 {
		b.WriteString("  " + passStyle.Render(fmt.Sprintf("All %d files accepted.", len(results))) + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d of %d files rejected.", invalid, len(results))) + "\n")
	}
	return b.String()
}

func penaltyHeadline(v domain.ValidationVerdict) string {
	status := passStyle.Bold(true).Render("VALID")
	if !v.IsValid {
		status = failStyle.Bold(true).Render("INVALID")
	}
	penalty := lipgloss.NewStyle().Bold(true).Foreground(penaltyColor(v.PenaltyMultiplier)).
		Render(fmt.Sprintf("× %.2f", v.PenaltyMultiplier))
	return penalty + "  " + status
}

func renderSignals(b *strings.Builder, v domain.ValidationVerdict) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(padRight("words", 20)), dimStyle.Render(fmt.Sprintf("%d", v.WordCount)))
	renderSignal(b, "non-English", v.HasNonEnglish, v.NonEnglishRatio, v.NonEnglishChars)
	renderSignal(b, "random", v.HasRandom, v.RandomRatio, v.RandomExamples)
}

func renderSignal(b *strings.Builder, name string, flagged bool, ratio float64, examples []string) {
	icon := passStyle.Render("●")
	if flagged {
		icon = warnTagStyle.Render("●")
	}
	line := fmt.Sprintf("  %s %s %s", labelStyle.Render(padRight(name, 18)), icon,
		dimStyle.Render(fmt.Sprintf("%.1f%%", ratio*100)))
	if flagged && len(examples) > 0 {
		line += "  " + faintStyle.Render(strings.Join(examples, " "))
	}
	b.WriteString(line + "\n")
}

func renderIssues(b *strings.Builder, issues []string) {
	if len(issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return
	}
	b.WriteString("  " + titleStyle.Render("Issues") + "\n\n")
	for _, issue := range issues {
		fmt.Fprintf(b, "    %s %s\n", issueTag(issue), dimStyle.Render(issue))
	}
}

// issueTag derives a severity tag from the issue's leading keyword.
func issueTag(issue string) string {
	switch {
	case strings.HasPrefix(issue, "CRITICAL"):
		return errorTagStyle.Render("error")
	case strings.HasPrefix(issue, "WARNING"):
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func penaltyColor(p float64) lipgloss.Color {
	switch {
	case p >= 1.0:
		return success
	case p >= 0.7:
		return lipgloss.Color("#A3E635") // lime
	case p >= domain.AcceptThreshold:
		return warning
	default:
		return danger
	}
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats submission history for terminal output.
func RenderHistory(entries []domain.SubmissionEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No submission history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Submission History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		status := passStyle.Render(padRight(e.Status, 9))
		if e.Status == domain.StatusRejected {
			status = failStyle.Render(padRight(e.Status, 9))
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(id),
			status,
			lipgloss.NewStyle().Foreground(penaltyColor(e.Penalty)).Render(fmt.Sprintf("%.2f", e.FinalScore)),
			faintStyle.Render(fmt.Sprintf("%d words", e.WordCount)),
		)
	}

	return b.String()
}
