package seoaudit

import "math"

// Point contributions per scored status. The best/worst bounds per
// counted item are fixed at +5/-10 regardless of which statuses occur,
// so a category's score is a bounded linear rescaling of its signed
// point total, not an average of per-item scores.
const (
	pointsGood     = 5
	pointsWarning  = -3
	pointsCritical = -10
)

// ScoreSignals normalizes a set of signals into a 0-100 score.
// Info and Unknown signals are excluded from the denominator; if no
// scored signals remain the score is 0.
func ScoreSignals(signals []Signal) int {
	points := 0
	n := 0
	for _, s := range signals {
		switch s.Status {
		case StatusGood:
			points += pointsGood
			n++
		case StatusWarning:
			points += pointsWarning
			n++
		case StatusCritical:
			points += pointsCritical
			n++
		}
	}
	if n == 0 {
		return 0
	}

	minPotential := pointsCritical * n
	maxPotential := pointsGood * n
	score := float64(points-minPotential) / float64(maxPotential-minPotential) * 100

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// CategoryScores computes one normalized score per category. Every
// category is present in the map; categories with no scored signals
// score 0.
func CategoryScores(signals []Signal) map[Category]int {
	byCategory := make(map[Category][]Signal)
	for _, s := range signals {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	scores := make(map[Category]int, len(Categories()))
	for _, c := range Categories() {
		scores[c] = ScoreSignals(byCategory[c])
	}
	return scores
}

// OverallScore normalizes all signals from all categories together.
func OverallScore(signals []Signal) int {
	return ScoreSignals(signals)
}

// GradeFor maps an overall score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
