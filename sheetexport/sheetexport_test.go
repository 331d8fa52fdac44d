package sheetexport

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"iis_schedule/model"
)

func TestExportWorkbook(t *testing.T) {
	parsed := model.NewParsedSchedule()
	parsed.Week(2).Append("Вторник", model.ParsedLesson{
		Subject: "ОАиП", SubjectFullName: "Основы алгоритмизации и программирования",
		LessonTypeAbbrev: "ЛК", StartLessonTime: "08:30", EndLessonTime: "10:05",
		Auditories: []string{"104-4 к.", "105-4 к."},
	})
	parsed.Week(2).Append("Вторник", model.ParsedLesson{
		Subject: "ПрогСП", LessonTypeAbbrev: "ЛР", NumSubgroup: 2,
		StartLessonTime: "10:25", EndLessonTime: "12:00",
	})

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := ExportWorkbook(parsed, path); err != nil {
		t.Fatalf("ExportWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	want := []string{SheetName(1), SheetName(2), SheetName(3), SheetName(4)}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, want %v", got, want)
	}

	rows, err := f.GetRows(SheetName(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "День" {
		t.Errorf("header = %v", rows[0])
	}
	wantRow := []string{"Вторник", "08:30-10:05", "ЛК", "", "ОАиП", "Основы алгоритмизации и программирования", "104-4 к., 105-4 к."}
	if !reflect.DeepEqual(rows[1], wantRow) {
		t.Errorf("row 2 = %v", rows[1])
	}
	if rows[2][3] != "2" || rows[2][4] != "ПрогСП" {
		t.Errorf("row 3 = %v", rows[2])
	}

	empty, err := f.GetRows(SheetName(4))
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 1 {
		t.Errorf("week 4 should only have a header, got %d rows", len(empty))
	}
}

func TestExportWorkbookNil(t *testing.T) {
	if err := ExportWorkbook(nil, filepath.Join(t.TempDir(), "x.xlsx")); err == nil {
		t.Fatal("expected error for empty schedule")
	}
}
