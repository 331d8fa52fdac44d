package model

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"iis_schedule/errs"
)

func TestDecodeRawSchedule(t *testing.T) {
	raw, err := DecodeRawSchedule([]byte(`{"schedules": {"Пятница": [{"subject": "ИнЯз", "weekNumber": [2, 4], "numSubgroup": 2, "note": null}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	l := raw.Schedules["Пятница"][0]
	if l.Subject != "ИнЯз" || l.NumSubgroup != 2 || !reflect.DeepEqual(l.WeekNumber, []int{2, 4}) {
		t.Errorf("unexpected lesson: %+v", l)
	}

	for _, doc := range []string{`[]`, `{"exams": []}`, `{"schedules": null}`, `{`} {
		if _, err := DecodeRawSchedule([]byte(doc)); !errors.Is(err, errs.ErrMalformedResponse) {
			t.Errorf("%s: expected ErrMalformedResponse, got %v", doc, err)
		}
	}
}

func TestWeekScheduleKeepsInsertionOrder(t *testing.T) {
	w := NewWeekSchedule()
	w.Append("Суббота", ParsedLesson{Subject: "A"})
	w.Append("Вторник", ParsedLesson{Subject: "B"})
	w.Append("Суббота", ParsedLesson{Subject: "C"})

	if got := w.Days(); !reflect.DeepEqual(got, []string{"Суббота", "Вторник"}) {
		t.Errorf("days = %v", got)
	}
	if got := w.Lessons("Суббота"); len(got) != 2 || got[1].Subject != "C" {
		t.Errorf("lessons = %+v", got)
	}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var restored WeekSchedule
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatal(err)
	}
	if got := restored.Days(); !reflect.DeepEqual(got, []string{"Суббота", "Вторник"}) {
		t.Errorf("restored days = %v", got)
	}
}

func TestParsedScheduleJSON(t *testing.T) {
	p := NewParsedSchedule()
	p.Week(3).Append("Среда", ParsedLesson{Subject: "Физ & Мат", Auditories: []string{"311-1 к."}})

	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"1":{},"2":{},"3":{"Среда":[{"subject":"Физ & Мат","subjectFullName":"","lessonTypeAbbrev":"","startLessonTime":"","endLessonTime":"","numSubgroup":0,"auditories":["311-1 к."]}]},"4":{}}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}

	var restored ParsedSchedule
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatal(err)
	}
	for _, n := range restored.Weeks() {
		if restored.Week(n) == nil {
			t.Fatalf("week %d missing", n)
		}
	}
	if got := restored.Week(3).Lessons("Среда"); len(got) != 1 || got[0].Subject != "Физ & Мат" {
		t.Errorf("restored week 3 = %+v", got)
	}
}

func TestParsedScheduleMissingWeeks(t *testing.T) {
	var p ParsedSchedule
	if err := json.Unmarshal([]byte(`{"2": {"Четверг": []}}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.Week(1).Len() != 0 || p.Week(2).Len() != 1 {
		t.Errorf("unexpected weeks: %d %d", p.Week(1).Len(), p.Week(2).Len())
	}
	if err := json.Unmarshal([]byte(`{"0": {}}`), &p); err == nil {
		t.Error("expected error for week 0")
	}
}

func TestWeekOutOfRange(t *testing.T) {
	p := NewParsedSchedule()
	if p.Week(0) != nil || p.Week(WeekCount+1) != nil {
		t.Error("weeks outside the cycle must be nil")
	}
}

func TestProjectCopiesFields(t *testing.T) {
	l := Lesson{
		Subject: "ПрогСП", SubjectFullName: "Программирование сетевых приложений",
		LessonTypeAbbrev: "ЛР", StartLessonTime: "08:30", EndLessonTime: "10:05",
		NumSubgroup: 1, WeekNumber: []int{1, 3}, Auditories: []string{"611-2 к."}, Note: "x",
	}
	p := l.Project()
	want := ParsedLesson{
		Subject: "ПрогСП", SubjectFullName: "Программирование сетевых приложений",
		LessonTypeAbbrev: "ЛР", StartLessonTime: "08:30", EndLessonTime: "10:05",
		NumSubgroup: 1, Auditories: []string{"611-2 к."},
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("got %+v", p)
	}
	p.Auditories[0] = "changed"
	if l.Auditories[0] != "611-2 к." {
		t.Error("projection shares auditories with the source lesson")
	}
}

func TestNewDayOrder(t *testing.T) {
	order := DefaultDayOrder()
	if r, ok := order.Rank("Понедельник"); !ok || r != 1 {
		t.Errorf("Понедельник = %d, %v", r, ok)
	}
	if r, _ := order.Rank("Суббота"); r != 6 {
		t.Errorf("Суббота = %d", r)
	}
	if _, ok := order.Rank("Воскресенье"); ok {
		t.Error("Воскресенье should not be ranked")
	}
	if _, err := NewDayOrder([]string{"Понедельник", "Понедельник"}); err == nil {
		t.Error("expected error for duplicate day")
	}
	if _, err := NewDayOrder([]string{""}); err == nil {
		t.Error("expected error for empty day")
	}
}
