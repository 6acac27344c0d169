package rsacrack

import (
	"path/filepath"
	"runtime"
)

// fixturesDir returns the path to the fixtures directory (works regardless of test cwd).
func fixturesDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "..", "..", "fixtures")
}

// loadTestChallenges loads test challenges from the fixtures directory.
func loadTestChallenges(filename string) ([]Challenge, error) {
	var parser ChallengeParser
	if filepath.Ext(filename) == ".csv" {
		parser = &CSVParser{}
	} else {
		parser = &JSONParser{}
	}
	return parser.ParseChallenges(filepath.Join(fixturesDir(), filename))
}
