package seoaudit

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	nonWordSplitRe  = regexp.MustCompile(`\W+`)

	// Silent-e, -ed and consonant+es endings do not add a syllable.
	syllableSuffixRe = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	vowelRunRe       = regexp.MustCompile(`[aeiouy]+`)
)

// CountWords returns the number of whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountSentences returns the number of segments produced by splitting
// the text on runs of '.', '!' and '?', minimum 1.
func CountSentences(text string) int {
	n := len(sentenceSplitRe.Split(text, -1))
	if n < 1 {
		return 1
	}
	return n
}

// CountSyllables estimates the syllables in one word. Words of three
// characters or fewer count as one syllable; otherwise a trailing
// silent-e/-ed/consonant+es pattern and a leading 'y' are stripped and
// maximal runs of vowel-like characters are counted, minimum 1.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	if len(w) <= 3 {
		return 1
	}

	w = syllableSuffixRe.ReplaceAllString(w, "")
	w = strings.TrimPrefix(w, "y")

	n := len(vowelRunRe.FindAllString(w, -1))
	if n < 1 {
		return 1
	}
	return n
}

// ReadingEase computes a Flesch-style reading-ease score from the text
// using the per-word syllable heuristic. The result is rounded to one
// decimal and reported as-is, without clamping.
func ReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	sentences := CountSentences(text)

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))
	return round1(score)
}

// AverageSentenceLength returns words per sentence, rounded to two
// decimals.
func AverageSentenceLength(text string) float64 {
	words := CountWords(text)
	if words == 0 {
		return 0
	}
	return round2(float64(words) / float64(CountSentences(text)))
}

// KeywordDensity returns the ten most frequent tokens longer than
// three characters, each mapped to its share of all such tokens as a
// percentage rounded to two decimals. Frequency ties are broken
// alphabetically so identical input yields identical output.
func KeywordDensity(text string) map[string]float64 {
	density := make(map[string]float64)

	var kept []string
	for _, tok := range nonWordSplitRe.Split(strings.ToLower(text), -1) {
		if len(tok) > 3 {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return density
	}

	counts := make(map[string]int)
	for _, tok := range kept {
		counts[tok]++
	}

	tokens := make([]string, 0, len(counts))
	for tok := range counts {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	if len(tokens) > 10 {
		tokens = tokens[:10]
	}
	for _, tok := range tokens {
		density[tok] = round2(float64(counts[tok]) / float64(len(kept)) * 100)
	}
	return density
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
