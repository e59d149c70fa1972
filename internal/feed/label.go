package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelParts are the components encoded in a reporting label.
type LabelParts struct {
	SequenceID     int    `json:"sequence_id"`
	CharacterID    string `json:"character_id"`
	FormatName     string `json:"format_name"`
	SecondaryIndex int    `json:"secondary_index"`
}

// String re-encodes the parts as a reporting label.
func (p LabelParts) String() string {
	return ReportingLabel(p.SequenceID, p.CharacterID, p.FormatName, p.SecondaryIndex)
}

// ParseReportingLabel splits a label produced by ReportingLabel. Character IDs
// may contain underscores; format names may not. Numbers must be written the
// way ReportingLabel writes them: no sign, a three-digit minimum sequence and
// no leading zeros in the secondary index.
func ParseReportingLabel(label string) (LabelParts, error) {
	trimmed := strings.TrimSpace(label)
	parts := strings.Split(trimmed, "_")
	if len(parts) < 4 {
		return LabelParts{}, fmt.Errorf("%w: %q has %d segments, want at least 4", ErrInvalidLabel, label, len(parts))
	}

	seq, err := strconv.Atoi(parts[0])
	if !isDigits(parts[0]) || err != nil || seq <= 0 {
		return LabelParts{}, fmt.Errorf("%w: %q: sequence %q is not a positive integer", ErrInvalidLabel, label, parts[0])
	}

	last := parts[len(parts)-1]
	if len(last) < 2 || last[0] != 'S' {
		return LabelParts{}, fmt.Errorf("%w: %q: secondary segment %q must look like S<n>", ErrInvalidLabel, label, last)
	}
	secondary, err := strconv.Atoi(last[1:])
	if !isDigits(last[1:]) || err != nil || secondary <= 0 {
		return LabelParts{}, fmt.Errorf("%w: %q: secondary index %q is not a positive integer", ErrInvalidLabel, label, last[1:])
	}

	formatName := parts[len(parts)-2]
	characterID := strings.Join(parts[1:len(parts)-2], "_")
	if formatName == "" || characterID == "" {
		return LabelParts{}, fmt.Errorf("%w: %q: empty character or format segment", ErrInvalidLabel, label)
	}

	parsed := LabelParts{
		SequenceID:     seq,
		CharacterID:    characterID,
		FormatName:     formatName,
		SecondaryIndex: secondary,
	}
	if canonical := parsed.String(); canonical != trimmed {
		return LabelParts{}, fmt.Errorf("%w: %q: numbers are not in canonical form, want %q", ErrInvalidLabel, label, canonical)
	}
	return parsed, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
