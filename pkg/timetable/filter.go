package timetable

// Filter keeps the lessons that apply to the given profile.
// The input slice is not modified and the order is preserved.
func Filter(lessons []Lesson, p Profile) []Lesson {
	filtered := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if p.Matches(l) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// Matches reports whether the lesson passes all three track dimensions.
func (p Profile) Matches(l Lesson) bool {
	return keepDimension(l.Group, p.Group) &&
		keepDimension(l.Algorithms, p.Algorithms) &&
		keepDimension(l.Combinatorics, p.Combinatorics)
}

func keepDimension(lessonValue, profileValue *string) bool {
	switch {
	case lessonValue == nil:
		// lesson is for everyone
		return true
	case profileValue == nil:
		// student is not bound to a section here, show all of them
		return true
	default:
		return *lessonValue == *profileValue
	}
}
