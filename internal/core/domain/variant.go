package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BuildType is the signing dimension of a build variant.
type BuildType string

const (
	// BuildTypeRelease produces a distributable artifact.
	BuildTypeRelease BuildType = "release"
	// BuildTypeDebug produces a debuggable artifact.
	BuildTypeDebug BuildType = "debug"
)

// Flavor is a product flavor of the env dimension.
type Flavor struct {
	Name                string `json:"name" yaml:"name"`
	ApplicationIDSuffix string `json:"application_id_suffix,omitempty" yaml:"application_id_suffix,omitempty"`
	DisplayName         string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// Variant is the flavor and build type targeted by an invocation.
type Variant struct {
	Name          string    `json:"name" yaml:"name"`
	Flavor        string    `json:"flavor,omitempty" yaml:"flavor,omitempty"`
	BuildType     BuildType `json:"build_type" yaml:"build_type"`
	ApplicationID string    `json:"application_id,omitempty" yaml:"application_id,omitempty"`
	DisplayName   string    `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// ResolveVariant derives the targeted variant from the requested tasks.
// The flavor is the first one in project order named by any task; a task list naming no flavor
// leaves the variant flavorless.
func ResolveVariant(tasks []string, c ReleaseClassification, project *Project) Variant {
	v := Variant{BuildType: BuildTypeDebug, ApplicationID: project.ApplicationID}
	if c.IsRelease {
		v.BuildType = BuildTypeRelease
	}

	flavor, ok := detectFlavor(tasks, project.Flavors)
	if !ok {
		v.Name = string(v.BuildType)
		return v
	}

	v.Flavor = flavor.Name
	v.Name = flavor.Name + capitalize(string(v.BuildType))
	v.DisplayName = flavor.DisplayName
	if v.ApplicationID != "" {
		v.ApplicationID += flavor.ApplicationIDSuffix
	}
	return v
}

func detectFlavor(tasks []string, flavors []Flavor) (Flavor, bool) {
	for _, f := range flavors {
		name := strings.ToLower(f.Name)
		for _, task := range tasks {
			if strings.Contains(strings.ToLower(task), name) {
				return f, true
			}
		}
	}
	return Flavor{}, false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
