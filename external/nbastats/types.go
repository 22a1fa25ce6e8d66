package nbastats

import (
	"strconv"
	"strings"
)

// The stats endpoints answer in a tabular shape: named result sets with a
// header row and untyped value rows.
type resultSetsEnvelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (r resultSet) columnIndex(name string) int {
	for i, header := range r.Headers {
		if strings.EqualFold(header, name) {
			return i
		}
	}
	return -1
}

func (e resultSetsEnvelope) resultSet(name string) (resultSet, bool) {
	for _, set := range e.ResultSets {
		if strings.EqualFold(set.Name, name) {
			return set, true
		}
	}
	if len(e.ResultSets) > 0 {
		return e.ResultSets[0], true
	}
	return resultSet{}, false
}

// Cells arrive as float64, string or null depending on the column.

func cellString(row []any, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func cellInt(row []any, idx int) int {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return 0
	}
	switch v := row[idx].(type) {
	case float64:
		return int(v)
	case string:
		out, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return out
	default:
		return 0
	}
}
