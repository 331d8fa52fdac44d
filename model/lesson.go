package model

type Employee struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Degree     string `json:"degree"`
	URLID      string `json:"urlId"`
}

// Lesson is a single entry of the raw schedule as the IIS API returns it.
type Lesson struct {
	Subject          string     `json:"subject"`
	SubjectFullName  string     `json:"subjectFullName"`
	LessonTypeAbbrev string     `json:"lessonTypeAbbrev"`
	StartLessonTime  string     `json:"startLessonTime"`
	EndLessonTime    string     `json:"endLessonTime"`
	NumSubgroup      int        `json:"numSubgroup"`
	WeekNumber       []int      `json:"weekNumber"`
	Auditories       []string   `json:"auditories"`
	Note             string     `json:"note"`
	DateLesson       string     `json:"dateLesson"`
	StartLessonDate  string     `json:"startLessonDate"`
	EndLessonDate    string     `json:"endLessonDate"`
	Employees        []Employee `json:"employees"`
}

// ParsedLesson is the part of a Lesson kept in the parsed schedule.
type ParsedLesson struct {
	Subject          string   `json:"subject"`
	SubjectFullName  string   `json:"subjectFullName"`
	LessonTypeAbbrev string   `json:"lessonTypeAbbrev"`
	StartLessonTime  string   `json:"startLessonTime"`
	EndLessonTime    string   `json:"endLessonTime"`
	NumSubgroup      int      `json:"numSubgroup"`
	Auditories       []string `json:"auditories"`
}

func (l Lesson) Project() ParsedLesson {
	var auditories []string
	if l.Auditories != nil {
		auditories = append(make([]string, 0, len(l.Auditories)), l.Auditories...)
	}
	return ParsedLesson{
		Subject:          l.Subject,
		SubjectFullName:  l.SubjectFullName,
		LessonTypeAbbrev: l.LessonTypeAbbrev,
		StartLessonTime:  l.StartLessonTime,
		EndLessonTime:    l.EndLessonTime,
		NumSubgroup:      l.NumSubgroup,
		Auditories:       auditories,
	}
}
