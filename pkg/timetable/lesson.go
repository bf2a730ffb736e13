package timetable

import (
	"fmt"
	"strings"
)

// NoLessonsMessage is shown for a day without lessons.
const NoLessonsMessage = "В этот день нет уроков"

// nextLessonLead is how many minutes after its start a lesson still counts as the next one.
const nextLessonLead = 3

// TimeOfDay is anything exposing an hour and a minute, e.g. time.Time.
type TimeOfDay interface {
	Hour() int
	Minute() int
}

// Render formats the lesson as a single MarkdownV2 line:
//
//	09:00 \- 10:30	[Name](link) \(type\) Пароль: secret
func (l Lesson) Render() string {
	pass := ""
	if l.Password != nil {
		pass = fmt.Sprintf(" Пароль: %s", *l.Password)
	}

	return fmt.Sprintf("%02d:%02d \\- %02d:%02d\t[%s](%s) \\(%s\\)%s",
		l.StartM/60,
		l.StartM%60,
		l.EndM/60,
		l.EndM%60,
		strings.ReplaceAll(l.Name, "+", "\\+"),
		l.Link,
		l.LessonType,
		pass,
	)
}

// IsNext reports whether the lesson starts later than nextLessonLead minutes before t.
func (l Lesson) IsNext(t TimeOfDay) bool {
	current := t.Hour()*60 + t.Minute()
	return int64(current)-nextLessonLead < int64(l.StartM)
}

// NextLesson returns the first lesson, in the given order, for which IsNext holds.
func NextLesson(lessons []Lesson, t TimeOfDay) (Lesson, bool) {
	for _, l := range lessons {
		if l.IsNext(t) {
			return l, true
		}
	}
	return Lesson{}, false
}

// PrintDay renders a whole day, one lesson per line.
func PrintDay(lessons []Lesson) string {
	if len(lessons) == 0 {
		return NoLessonsMessage
	}

	lines := make([]string, 0, len(lessons))
	for _, l := range lessons {
		lines = append(lines, l.Render())
	}
	return strings.Join(lines, "\n")
}
