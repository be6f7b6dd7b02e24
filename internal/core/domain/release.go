package domain

import "strings"

// ReleaseClassification describes what kind of build the requested tasks ask for.
type ReleaseClassification struct {
	// IsRelease is true when any task produces a distributable artifact.
	IsRelease bool `json:"is_release" yaml:"is_release"`
	// IsProdRelease is true when any task is a release of the production flavor.
	IsProdRelease bool `json:"is_prod_release" yaml:"is_prod_release"`
}

// ClassifyTasks classifies the requested task names.
//
// A task is a release task when it contains "release" or "bundle". It is a production release task
// when it contains "prodrelease", or both "prod" and "release" anywhere in the same name.
// All matching is case-insensitive.
func ClassifyTasks(tasks []string) ReleaseClassification {
	var c ReleaseClassification
	for _, task := range tasks {
		name := strings.ToLower(task)
		if isReleaseTask(name) {
			c.IsRelease = true
		}
		if isProdReleaseTask(name) {
			c.IsProdRelease = true
		}
	}
	return c
}

func isReleaseTask(name string) bool {
	return strings.Contains(name, "release") || strings.Contains(name, "bundle")
}

// isProdReleaseTask is deliberately loose: "reproductionrelease" matches too.
func isProdReleaseTask(name string) bool {
	if strings.Contains(name, "prodrelease") {
		return true
	}
	return strings.Contains(name, "prod") && strings.Contains(name, "release")
}
