package views

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/scout9/scout9-web/internal/models"
)

// FormatPercent renders a fraction as a percentage with the given number of
// decimals, rounding halves away from zero.
func FormatPercent(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	scale := math.Pow(10, float64(decimals))
	rounded := math.Round(v*100*scale) / scale
	return strconv.FormatFloat(rounded, 'f', decimals, 64) + "%"
}

// FormatDuration renders fractional minutes as m:ss.
func FormatDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}
	mins := math.Floor(minutes)
	secs := math.Round((minutes - mins) * 60)
	if secs == 60 {
		mins++
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", int(mins), int(secs))
}

// FormatDecimal renders v with one decimal place.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// Split returns the share of a and b in a+b as unrounded percentages. Two
// zero values split evenly.
func Split(a, b float64) (float64, float64) {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	sum := a + b
	if sum == 0 {
		return 50, 50
	}
	return a / sum * 100, b / sum * 100
}

// WinBar returns the bar widths of a head-to-head record. Without matches the
// bar splits evenly.
func WinBar(s models.H2HStats) (float64, float64) {
	if s.TotalMatches == 0 {
		return 50, 50
	}
	total := float64(s.TotalMatches)
	return float64(s.Team1Wins) / total * 100, float64(s.Team2Wins) / total * 100
}

// Width formats a bar width for a style attribute, keeping fractions such
// as 62.5 intact.
func Width(pct float64) string {
	return fmt.Sprintf("width: %g%%", math.Max(0, math.Min(100, pct)))
}

func ThreatClass(level int) string {
	switch {
	case level >= 8:
		return "threat-critical"
	case level >= 6:
		return "threat-high"
	case level >= 4:
		return "threat-medium"
	}
	return "threat-low"
}

func ConfidenceClass(score int) string {
	switch {
	case score >= 80:
		return "confidence-high"
	case score >= 60:
		return "confidence-medium"
	case score >= 40:
		return "confidence-low"
	}
	return "confidence-poor"
}

func WinRateClass(rate float64) string {
	switch {
	case rate >= 0.6:
		return "rate-strong"
	case rate >= 0.5:
		return "rate-even"
	case rate >= 0.4:
		return "rate-weak"
	}
	return "rate-poor"
}

func ImpactClass(importance string) string {
	switch strings.ToUpper(importance) {
	case "HIGH":
		return "impact-high"
	case "MEDIUM":
		return "impact-medium"
	case "LOW":
		return "impact-low"
	}
	return "impact-none"
}

// FormLabel is the display label of a recent form.
func FormLabel(f models.Form) string {
	switch f {
	case models.FormImproving:
		return "Improving"
	case models.FormDeclining:
		return "Declining"
	}
	return "Stable"
}

// AdvantageLabel names the team a style phase favours.
func AdvantageLabel(advantage string, team1, team2 models.Team) string {
	switch advantage {
	case models.AdvantageTeam1:
		return team1.Name
	case models.AdvantageTeam2:
		return team2.Name
	}
	return "Even"
}

var mapDisplayNames = map[string]string{
	"ascent":   "Ascent",
	"bind":     "Bind",
	"breeze":   "Breeze",
	"fracture": "Fracture",
	"haven":    "Haven",
	"icebox":   "Icebox",
	"lotus":    "Lotus",
	"pearl":    "Pearl",
	"split":    "Split",
	"sunset":   "Sunset",
	"corrode":  "Abyss",
}

// MapDisplayName returns the in-game name of a map key.
func MapDisplayName(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if name, ok := mapDisplayNames[k]; ok {
		return name
	}
	if k == "" {
		return "Unknown"
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

// ReportURL is the page of a stored report.
func ReportURL(title models.Title, id string) string {
	return "/" + string(title) + "/report/" + url.PathEscape(id)
}

// GenerateURL is the team selection page of a title.
func GenerateURL(title models.Title) string {
	return "/" + string(title) + "/generate"
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
