package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes the lessons of a single day as calendar events.
// Lesson minutes are counted from midnight of date in loc. Lessons ending
// before they start cannot form a valid event and are skipped.
func GenerateICS(lessons []timetable.Lesson, date time.Time, loc *time.Location, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
	now := time.Now()

	for i, l := range lessons {
		if l.EndM < l.StartM {
			continue
		}

		start := midnight.Add(time.Duration(l.StartM) * time.Minute)
		end := midnight.Add(time.Duration(l.EndM) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s-%d@timetable", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(l.Name)
		event.SetLocation(l.Link)

		description := l.LessonType
		if l.Password != nil {
			description += fmt.Sprintf("\nПароль: %s", *l.Password)
		}
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
