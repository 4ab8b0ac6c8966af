package table

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
)

// Separators are the candidate field separators, checked in this order.
var Separators = []rune{',', ';', '\t', '|'}

// detectionLines is how many leading lines are inspected.
const detectionLines = 3

// ErrNoSeparator is returned when none of the candidate separators
// occurs in the leading lines of a file.
var ErrNoSeparator = errors.New("no known separator found")

// DetectSeparator inspects the leading lines of CSV content and returns
// the candidate separator present in the most of them. Ties go to the
// earlier candidate in Separators.
func DetectSeparator(data []byte) (rune, error) {
	counts := make(map[rune]int, len(Separators))

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 0; i < detectionLines && scanner.Scan(); i++ {
		line := scanner.Text()
		for _, sep := range Separators {
			if strings.ContainsRune(line, sep) {
				counts[sep]++
			}
		}
	}

	var best rune
	bestCount := 0
	for _, sep := range Separators {
		if counts[sep] > bestCount {
			best = sep
			bestCount = counts[sep]
		}
	}

	if bestCount == 0 {
		return 0, ErrNoSeparator
	}
	return best, nil
}
