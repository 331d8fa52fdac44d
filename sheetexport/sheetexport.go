package sheetexport

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"iis_schedule/helper"
	"iis_schedule/model"
)

var header = []interface{}{"День", "Время", "Тип", "Подгруппа", "Предмет", "Название", "Аудитории"}

func SheetName(week int) string {
	return fmt.Sprintf("Неделя %d", week)
}

// ExportWorkbook writes one sheet per week with a row per lesson.
func ExportWorkbook(parsed *model.ParsedSchedule, fileName string) error {
	if parsed == nil {
		return fmt.Errorf("export %s: empty schedule", fileName)
	}

	f := excelize.NewFile()
	defer func(f *excelize.File) {
		err := f.Close()
		if err != nil {
			log.Println(err)
		}
	}(f)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for _, n := range parsed.Weeks() {
		name := SheetName(n)
		if n == 1 {
			f.SetSheetName("Sheet1", name)
		} else {
			f.NewSheet(name)
		}
		if err := writeWeek(f, name, parsed.Week(n), bold); err != nil {
			return fmt.Errorf("export week %d: %w", n, err)
		}
	}

	return f.SaveAs(fileName)
}

func writeWeek(f *excelize.File, sheet string, week *model.WeekSchedule, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "F", "F", 45); err != nil {
		return err
	}

	row := 2
	for _, day := range week.Days() {
		for _, l := range week.Lessons(day) {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{
				day,
				l.StartLessonTime + "-" + l.EndLessonTime,
				l.LessonTypeAbbrev,
				helper.Subgroup(l.NumSubgroup),
				l.Subject,
				l.SubjectFullName,
				strings.Join(l.Auditories, ", "),
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}
