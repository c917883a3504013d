package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported scene filenames.
var All = map[string][]TestCase{
	"flat": flatCases,
	"head": headCases,
}
