package timetable

import (
	"reflect"
	"testing"
)

func TestKeepDimension(t *testing.T) {
	tests := []struct {
		name    string
		lesson  *string
		profile *string
		want    bool
	}{
		{"both absent", nil, nil, true},
		{"lesson absent", nil, strPtr("A"), true},
		{"profile absent", strPtr("A"), nil, true},
		{"equal", strPtr("A"), strPtr("A"), true},
		{"different", strPtr("A"), strPtr("B"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keepDimension(tt.lesson, tt.profile); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilter_Group(t *testing.T) {
	lessons := []Lesson{{Name: "A only", Group: strPtr("A")}}

	if got := Filter(lessons, Profile{}); len(got) != 1 {
		t.Errorf("expected lesson to be kept for a profile without group, got %d lessons", len(got))
	}
	if got := Filter(lessons, Profile{Group: strPtr("A")}); len(got) != 1 {
		t.Errorf("expected lesson to be kept for group A, got %d lessons", len(got))
	}
	if got := Filter(lessons, Profile{Group: strPtr("B")}); len(got) != 0 {
		t.Errorf("expected lesson to be dropped for group B, got %d lessons", len(got))
	}
}

func TestFilter_AllDimensions(t *testing.T) {
	lesson := Lesson{Name: "mixed", Group: strPtr("G1"), Algorithms: strPtr("A1")}
	profile := Profile{Group: strPtr("G1"), Algorithms: strPtr("A2")}

	if got := Filter([]Lesson{lesson}, profile); len(got) != 0 {
		t.Errorf("expected lesson matching group but not algorithms to be dropped, got %+v", got)
	}

	profile = Profile{Group: strPtr("G1"), Algorithms: strPtr("A1"), Combinatorics: strPtr("C3")}
	if got := Filter([]Lesson{lesson}, profile); len(got) != 1 {
		t.Errorf("expected lesson to be kept when all set tracks match, got %+v", got)
	}

	lesson.Combinatorics = strPtr("C1")
	if got := Filter([]Lesson{lesson}, profile); len(got) != 0 {
		t.Errorf("expected lesson to be dropped on combinatorics mismatch, got %+v", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	lessons := []Lesson{
		{Name: "1"},
		{Name: "2", Group: strPtr("B")},
		{Name: "3", Group: strPtr("A")},
		{Name: "4", Combinatorics: strPtr("K")},
	}
	original := append([]Lesson(nil), lessons...)

	got := Filter(lessons, NewProfile("A", "", ""))
	want := []Lesson{lessons[0], lessons[2], lessons[3]}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("filtered lessons do not match.\nGot: %+v\nExpected: %+v", got, want)
	}
	if !reflect.DeepEqual(lessons, original) {
		t.Errorf("Filter modified its input")
	}
}

func TestFilter_Empty(t *testing.T) {
	got := Filter(nil, Profile{})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestNewProfile(t *testing.T) {
	p := NewProfile("G2", "", "K1")

	if p.Group == nil || *p.Group != "G2" {
		t.Errorf("expected group G2, got %v", p.Group)
	}
	if p.Algorithms != nil {
		t.Errorf("expected empty algorithms to be unset, got %q", *p.Algorithms)
	}
	if p.Combinatorics == nil || *p.Combinatorics != "K1" {
		t.Errorf("expected combinatorics K1, got %v", p.Combinatorics)
	}
}
