package model

import "fmt"

// Grade is the letter derived from an overall score
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists grades from best to worst
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// Rank returns 0 for A through 4 for F, or -1 for an unknown grade
func (g Grade) Rank() int {
	for i, candidate := range Grades {
		if g == candidate {
			return i
		}
	}
	return -1
}

// WorseThan reports whether g ranks below other
func (g Grade) WorseThan(other Grade) bool {
	return g.Rank() > other.Rank()
}

// ParseGrade parses a letter grade, accepting lower case
func ParseGrade(s string) (Grade, error) {
	g := Grade(s)
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		g = Grade(string(s[0] - 'a' + 'A'))
	}
	if g.Rank() < 0 {
		return "", fmt.Errorf("invalid grade %q (expected one of A, B, C, D, F)", s)
	}
	return g, nil
}
