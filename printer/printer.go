package printer

import (
	"bufio"
	"fmt"
	"io"

	"iis_schedule/helper"
	"iis_schedule/model"
)

// Print writes the schedule week by week, one line per lesson.
func Print(w io.Writer, parsed *model.ParsedSchedule) error {
	out := bufio.NewWriter(w)
	if parsed == nil {
		fmt.Fprintln(out, "Расписание пусто")
		return out.Flush()
	}
	for _, n := range parsed.Weeks() {
		week := parsed.Week(n)
		fmt.Fprintf(out, "Неделя %d\n", n)
		for _, day := range week.Days() {
			fmt.Fprintln(out, day)
			for _, l := range week.Lessons(day) {
				fmt.Fprintf(out, "\t%s\n", Line(l))
			}
		}
	}
	return out.Flush()
}

// Line renders a lesson as "<start>-<end>: <type> <subgroup> <subject>".
func Line(l model.ParsedLesson) string {
	return fmt.Sprintf("%s-%s: %s", l.StartLessonTime, l.EndLessonTime,
		helper.JoinNotEmpty(l.LessonTypeAbbrev, helper.Subgroup(l.NumSubgroup), l.Subject))
}
