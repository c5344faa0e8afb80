// Package sentiment scores English text against a fixed valence lexicon.
package sentiment

import "strings"

// Result holds the lexicon score for one piece of text. Sum is the raw sum
// of token valences; Comparative is Sum divided by the total token count,
// so longer texts are not rewarded for sheer length.
type Result struct {
	Sum         float64
	Comparative float64
	Tokens      int
}

// Analyze tokenizes text and scores it against the lexicon. Unknown tokens
// count toward the token total but contribute nothing to the sum.
func Analyze(text string) Result {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Result{}
	}

	var sum float64
	for _, token := range tokens {
		if score, ok := lexicon[token]; ok {
			sum += float64(score)
		}
	}
	return Result{
		Sum:         sum,
		Comparative: sum / float64(len(tokens)),
		Tokens:      len(tokens),
	}
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)
	return strings.Fields(cleaned)
}
