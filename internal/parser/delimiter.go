package parser

import "strings"

// delimiterCandidates is the fixed candidate order; earlier entries win
// score ties.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// maxSampleLines is how many lines of the decoded text the delimiter
// heuristic inspects.
const maxSampleLines = 10

// DetectDelimiter scores each candidate over the sampled lines and returns
// the best one. The split is a naive literal split with no quote awareness;
// this is a cheap heuristic, the real parse is RFC 4180. A delimiter that
// yields consistent column counts above one per line scores highest. An
// empty sample defaults to comma.
func DetectDelimiter(sample []string) rune {
	if len(sample) == 0 {
		return ','
	}

	best := ','
	bestScore := 0.0
	haveBest := false

	for _, cand := range delimiterCandidates {
		counts := make([]float64, len(sample))
		for i, line := range sample {
			counts[i] = float64(len(strings.Split(line, string(cand))))
		}

		score := 10 / (1 + variance(counts))
		if m := mean(counts); m > 1 {
			score += 0.1 * m
		} else {
			// One column per line means the candidate never appears;
			// penalize hard so it is essentially never chosen.
			score -= 10
		}

		if !haveBest || score > bestScore {
			best = cand
			bestScore = score
			haveBest = true
		}
	}

	return best
}

// DelimiterLabel returns the human-readable label for a delimiter.
func DelimiterLabel(d rune) string {
	switch d {
	case ',':
		return "Comma (,)"
	case ';':
		return "Semicolon (;)"
	case '\t':
		return "Tab"
	case '|':
		return "Pipe (|)"
	default:
		return string(d)
	}
}

// LooksLikeCSV is a pre-flight sniff test: does the first line contain any
// candidate delimiter. Offered for callers that want to reject obviously
// wrong files before running the full parse.
func LooksLikeCSV(firstLine string) bool {
	for _, cand := range delimiterCandidates {
		if strings.ContainsRune(firstLine, cand) {
			return true
		}
	}
	return false
}

// sampleLines returns at most maxSampleLines non-blank lines of text.
func sampleLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if len(out) == maxSampleLines {
			break
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}
