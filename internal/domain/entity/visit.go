package entity

import (
	"strings"
	"time"
)

// DateLayout is the wire and CSV format of a visit date.
const DateLayout = "2006-01-02"

// Visit records which registered users visited a content on one day.
// At most one Visit exists per (WisataID, VisitDate).
type Visit struct {
	ID          int64     `json:"visitingID"`
	WisataID    int64     `json:"wisataID"`
	ListVisitor []string  `json:"listVisitor"`
	VisitDate   Day       `json:"visitDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VisitWithContent is a Visit joined with its Content.
type VisitWithContent struct {
	Visit
	Content Content `json:"content"`
}

// Day is a calendar date without time of day, serialized as YYYY-MM-DD.
type Day struct {
	time.Time
}

// DayOf truncates t to its calendar date in t's location, returned as UTC midnight.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Day) String() string { return d.Format(DateLayout) }

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Day{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	*d = Day{t}
	return nil
}

// NormalizeVisitors trims, lowercases and drops duplicates, keeping first-seen order.
// Merging into a stored list happens in the visit upsert.
func NormalizeVisitors(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
