package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"

	"iis_schedule/errs"
)

// WeekCount is the length of the recurring week cycle.
const WeekCount = 4

type StudentGroup struct {
	Name           string `json:"name"`
	FacultyAbbrev  string `json:"facultyAbbrev"`
	SpecialityName string `json:"specialityName"`
	Course         int    `json:"course"`
}

// RawSchedule is the decoded response of the schedule API.
type RawSchedule struct {
	Schedules      map[string][]Lesson `json:"schedules"`
	StudentGroup   *StudentGroup       `json:"studentGroupDto"`
	StartDate      string              `json:"startDate"`
	EndDate        string              `json:"endDate"`
	StartExamsDate string              `json:"startExamsDate"`
	EndExamsDate   string              `json:"endExamsDate"`
}

// DecodeRawSchedule parses an API response. A document without a schedules object is malformed.
func DecodeRawSchedule(data []byte) (*RawSchedule, error) {
	var raw RawSchedule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedResponse, err)
	}
	if raw.Schedules == nil {
		return nil, fmt.Errorf("%w: no schedules object", errs.ErrMalformedResponse)
	}
	return &raw, nil
}

// WeekSchedule holds the lessons of one week keyed by day name in insertion order.
type WeekSchedule struct {
	days *orderedmap.OrderedMap[string, []ParsedLesson]
}

func NewWeekSchedule() *WeekSchedule {
	return &WeekSchedule{days: orderedmap.NewOrderedMap[string, []ParsedLesson]()}
}

func (w *WeekSchedule) init() {
	if w.days == nil {
		w.days = orderedmap.NewOrderedMap[string, []ParsedLesson]()
	}
}

func (w *WeekSchedule) Append(day string, lesson ParsedLesson) {
	w.init()
	lessons, _ := w.days.Get(day)
	w.days.Set(day, append(lessons, lesson))
}

func (w *WeekSchedule) Days() []string {
	w.init()
	return w.days.Keys()
}

func (w *WeekSchedule) Lessons(day string) []ParsedLesson {
	w.init()
	lessons, _ := w.days.Get(day)
	return lessons
}

func (w *WeekSchedule) Len() int {
	w.init()
	return w.days.Len()
}

func (w *WeekSchedule) MarshalJSON() ([]byte, error) {
	w.init()
	var buf bytes.Buffer
	buf.WriteByte('{')
	for el := w.days.Front(); el != nil; el = el.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(el.Key)
		if err != nil {
			return nil, err
		}
		value, err := encodeJSON(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (w *WeekSchedule) UnmarshalJSON(data []byte) error {
	w.days = orderedmap.NewOrderedMap[string, []ParsedLesson]()
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("week schedule: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		day, ok := tok.(string)
		if !ok {
			return fmt.Errorf("week schedule: expected day name, got %v", tok)
		}
		var lessons []ParsedLesson
		if err := dec.Decode(&lessons); err != nil {
			return fmt.Errorf("week schedule: day %s: %w", day, err)
		}
		w.days.Set(day, lessons)
	}
	_, err = dec.Token()
	return err
}

// ParsedSchedule is the week -> day -> lessons view of a raw schedule.
// All weeks from 1 to WeekCount are always present.
type ParsedSchedule struct {
	weeks [WeekCount]*WeekSchedule
}

func NewParsedSchedule() *ParsedSchedule {
	p := &ParsedSchedule{}
	for i := range p.weeks {
		p.weeks[i] = NewWeekSchedule()
	}
	return p
}

// Week returns the schedule of week n or nil if n is outside 1..WeekCount.
func (p *ParsedSchedule) Week(n int) *WeekSchedule {
	if n < 1 || n > WeekCount {
		return nil
	}
	if p.weeks[n-1] == nil {
		p.weeks[n-1] = NewWeekSchedule()
	}
	return p.weeks[n-1]
}

func (p *ParsedSchedule) Weeks() []int {
	weeks := make([]int, WeekCount)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks
}

func (p *ParsedSchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, n := range p.Weeks() {
		if n > 1 {
			buf.WriteByte(',')
		}
		week, err := p.Week(n).MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(n)))
		buf.WriteByte(':')
		buf.Write(week)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *ParsedSchedule) UnmarshalJSON(data []byte) error {
	var weeks map[string]json.RawMessage
	if err := json.Unmarshal(data, &weeks); err != nil {
		return err
	}
	*p = *NewParsedSchedule()
	for key, raw := range weeks {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > WeekCount {
			return fmt.Errorf("parsed schedule: unexpected week %q", key)
		}
		if err := json.Unmarshal(raw, p.weeks[n-1]); err != nil {
			return fmt.Errorf("parsed schedule: week %d: %w", n, err)
		}
	}
	return nil
}

// encodeJSON marshals v without escaping HTML characters.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
