package rsacrack

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ChallengeParser defines the interface for parsing challenges from various sources.
type ChallengeParser interface {
	// ParseChallenges parses (e, n, c) challenges from a source and returns them.
	ParseChallenges(source string) ([]Challenge, error)
}

// JSONParser parses challenges from JSON files.
type JSONParser struct {
	EField string // Field name for the public exponent (default: "e")
	NField string // Field name for the modulus (default: "n")
	CField string // Field name for the ciphertext (default: "c")
}

// ParseChallenges parses challenges from a JSON file.
//
// Expected format:
//
//	[
//	  {"e": 7, "n": 187, "c": 11},
//	  {"e": "17", "n": "3233", "c": "65"}
//	]
func (p *JSONParser) ParseChallenges(jsonFile string) ([]Challenge, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // Preserve large numbers as json.Number instead of float64

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON")
	}

	eField := p.EField
	if eField == "" {
		eField = "e"
	}
	nField := p.NField
	if nField == "" {
		nField = "n"
	}
	cField := p.CField
	if cField == "" {
		cField = "c"
	}

	challenges := make([]Challenge, 0, len(items))
	for i, item := range items {
		var ch Challenge
		for _, f := range []struct {
			name string
			dst  *int64
		}{
			{eField, &ch.E},
			{nField, &ch.N},
			{cField, &ch.C},
		} {
			val, ok := item[f.name]
			if !ok {
				return nil, errors.Errorf("challenge %d: missing %q field", i, f.name)
			}
			v, err := parseInt64(val)
			if err != nil {
				return nil, errors.Wrapf(err, "challenge %d: failed to parse %q", i, f.name)
			}
			*f.dst = v
		}
		challenges = append(challenges, ch)
	}
	return challenges, nil
}

// CSVParser parses challenges from CSV files.
type CSVParser struct {
	ECol string // Column name for the public exponent (default: "e")
	NCol string // Column name for the modulus (default: "n")
	CCol string // Column name for the ciphertext (default: "c")
}

// ParseChallenges parses challenges from a CSV file with a header row.
func (p *CSVParser) ParseChallenges(csvFile string) ([]Challenge, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	eCol := p.ECol
	if eCol == "" {
		eCol = "e"
	}
	nCol := p.NCol
	if nCol == "" {
		nCol = "n"
	}
	cCol := p.CCol
	if cCol == "" {
		cCol = "c"
	}

	eIdx, nIdx, cIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case eCol:
			eIdx = i
		case nCol:
			nIdx = i
		case cCol:
			cIdx = i
		}
	}
	if eIdx == -1 || nIdx == -1 || cIdx == -1 {
		return nil, errors.Errorf("missing required columns: %s, %s or %s", eCol, nCol, cCol)
	}

	challenges := make([]Challenge, 0)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read record")
		}
		if eIdx >= len(record) || nIdx >= len(record) || cIdx >= len(record) {
			return nil, errors.Errorf("line %d: column index out of range", line)
		}

		var ch Challenge
		for _, f := range []struct {
			idx int
			dst *int64
		}{
			{eIdx, &ch.E},
			{nIdx, &ch.N},
			{cIdx, &ch.C},
		} {
			v, err := parseInt64(record[f.idx])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			*f.dst = v
		}
		challenges = append(challenges, ch)
	}
	return challenges, nil
}

// parseInt64 parses an integer from the formats the decoders hand back
// (quoted decimal, json.Number, bare number).
func parseInt64(val interface{}) (int64, error) {
	switch v := val.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, errors.Errorf("invalid number format: %s", v)
		}
		return n, nil

	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errors.Errorf("invalid number format: %s", v)
		}
		return n, nil

	case float64:
		return int64(v), nil

	case int64:
		return v, nil

	case int:
		return int64(v), nil

	default:
		return 0, errors.Errorf("unsupported type: %T", val)
	}
}
