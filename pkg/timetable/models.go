package timetable

// Lesson is a single class period as returned by the timetable service.
// Times are minutes since midnight.
type Lesson struct {
	Name          string  `json:"name"`
	LessonType    string  `json:"type"` // "лекция", "практика", ...
	Link          string  `json:"link"`
	Password      *string `json:"password"`
	Group         *string `json:"group"`
	Algorithms    *string `json:"algorithms"`
	Combinatorics *string `json:"combinatorics"`
	StartM        uint32  `json:"start_m"`
	EndM          uint32  `json:"end_m"`
}

// Profile holds the sections a student is enrolled in.
// A nil track means the student is not tied to a specific section.
type Profile struct {
	Group         *string
	Algorithms    *string
	Combinatorics *string
}

// NewProfile builds a Profile, treating empty strings as unset tracks.
func NewProfile(group, algorithms, combinatorics string) Profile {
	return Profile{
		Group:         optional(group),
		Algorithms:    optional(algorithms),
		Combinatorics: optional(combinatorics),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
