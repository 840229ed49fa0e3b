// internal/solver/score.go
//
// Boggle scoring: a fixed length-to-points table. Words shorter than
// three letters are invalid input; words longer than eight score as
// eight-letter words.

package solver

import (
	"fmt"

	"github.com/gerald-lnj/goboggle/internal/dict"
)

var pointsByLength = map[int]int{
	3: 1,
	4: 1,
	5: 2,
	6: 3,
	7: 5,
	8: 11,
}

// Score returns the point value of a single word.
func Score(word string) (int, error) {
	n := len(word)
	if n < dict.MinWordLen {
		return 0, fmt.Errorf("words must be at least %d letters, got %q", dict.MinWordLen, word)
	}
	if n > 8 {
		n = 8
	}
	return pointsByLength[n], nil
}

// ScoreAll sums the scores of every word in ws.
func ScoreAll(ws WordSet) (int, error) {
	total := 0
	for w := range ws {
		pts, err := Score(w)
		if err != nil {
			return 0, err
		}
		total += pts
	}
	return total, nil
}
