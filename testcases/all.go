package testcases

// All contains all test cases, grouped by category.
// Test names are formed as category + "_" + case name.
var All = map[string][]TestCase{
	"fill":   fillCases,
	"curve":  curveCases,
	"shape":  shapeCases,
	"large":  largeCases,
	"stroke": strokeCases,
}
