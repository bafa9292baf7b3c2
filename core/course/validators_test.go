package course

import "testing"

func Test_titleTooSimilar(t *testing.T) {
	existing := []Course{
		{ID: 1, Title: "Complete Web Development Bootcamp"},
		{ID: 2, Title: "Data Science with Python"},
	}

	tests := []struct {
		name     string
		title    string
		excluded []Course
		want     bool
	}{
		{name: "unrelated", title: "Watercolor Painting Basics", want: false},
		{name: "exact", title: "Data Science with Python", want: true},
		{name: "case-insensitive exact", title: "data science WITH python", want: true},
		{name: "near duplicate", title: "Data Science with Python!", want: true},
		{name: "excluded course", title: "Data Science with Python", excluded: []Course{{ID: 2}}, want: false},
		{name: "empty", title: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleTooSimilar(tt.title, existing, tt.excluded); got != tt.want {
				t.Errorf("titleTooSimilar(%q) = %v; want %v", tt.title, got, tt.want)
			}
		})
	}
}
