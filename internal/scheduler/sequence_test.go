package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSequence_MarkerPatterns(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []int
	}{
		{"unit marker", "Unit 2 Worksheet", []int{2}},
		{"chapter marker", "Read Chapter 14", []int{14}},
		{"lesson marker lowercase", "lesson 3 practice", []int{3}},
		{"no space before number", "Module5 Review", []int{5}},
		{"multiple markers", "Unit 2 Lesson 4", []int{2, 4}},
		{"marker preferred over bare number", "Unit 2 Worksheet (30 points)", []int{2}},
		{"bare number fallback", "Problems 1-20", []int{1, 20}},
		{"no numbers", "Clean the garage", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSequence(tt.title))
		})
	}
}

func TestCompareSequence_Ordering(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		before bool
	}{
		{"unit 2 before unit 3", "Unit 2 Worksheet", "Unit 3 Worksheet", true},
		{"unit 10 after unit 9", "Unit 9 Quiz", "Unit 10 Quiz", true},
		{"shared prefix shorter first", "Unit 2", "Unit 2 Lesson 1", true},
		{"numbered before unnumbered", "Chapter 1 Notes", "Essay draft", true},
		{"unnumbered lexical", "alpha task", "beta task", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.before {
				assert.Negative(t, CompareSequence(tt.a, tt.b))
				assert.Positive(t, CompareSequence(tt.b, tt.a))
			}
		})
	}
}

func TestCompareSequence_EqualTitles(t *testing.T) {
	assert.Zero(t, CompareSequence("Unit 2 Worksheet", "unit 2 worksheet"))
}
