package domain

import (
	"fmt"
	"strings"
)

const (
	// DefaultEnvKey is the definition that selects the app environment.
	DefaultEnvKey = "APP_ENV"
	// DefaultEnvValue is the environment a production release must target.
	DefaultEnvValue = "prod"
	// DefaultDefinesFile is the definitions file suggested when a production release is misconfigured.
	DefaultDefinesFile = "dart_define.prod.json"
)

// ProductionRequirements lists the definitions a production release must carry.
type ProductionRequirements struct {
	// EnvKey must be present with exactly EnvValue.
	EnvKey   string `json:"env_key" yaml:"env_key"`
	EnvValue string `json:"env_value" yaml:"env_value"`
	// Required definitions must be present and not blank.
	Required []string `json:"required" yaml:"required"`
	// DefinesFile is named in the remediation message.
	DefinesFile string `json:"defines_file" yaml:"defines_file"`
}

// DefaultProductionRequirements returns the requirements used when the project file sets none.
func DefaultProductionRequirements() ProductionRequirements {
	return ProductionRequirements{
		EnvKey:      DefaultEnvKey,
		EnvValue:    DefaultEnvValue,
		Required:    []string{"SUPABASE_URL", "SUPABASE_PUBLISHABLE_KEY"},
		DefinesFile: DefaultDefinesFile,
	}
}

// Names returns every definition the requirements mention, the env key first.
func (r ProductionRequirements) Names() []string {
	return append([]string{r.EnvKey}, r.Required...)
}

// Summary renders the requirements as "APP_ENV=prod, SUPABASE_URL, SUPABASE_PUBLISHABLE_KEY".
func (r ProductionRequirements) Summary() string {
	parts := append([]string{r.EnvKey + "=" + r.EnvValue}, r.Required...)
	return joinFields(parts)
}

// Unmet returns the names of the requirements the defines do not satisfy, in declaration order.
func (r ProductionRequirements) Unmet(defines DefineMap) []string {
	var unmet []string
	if v, ok := defines.Lookup(r.EnvKey); !ok || v != r.EnvValue {
		unmet = append(unmet, r.EnvKey)
	}
	for _, key := range r.Required {
		if v, ok := defines.Lookup(key); !ok || strings.TrimSpace(v) == "" {
			unmet = append(unmet, key)
		}
	}
	return unmet
}

// GuardProduction verifies the production requirements when a production release is requested.
// It returns an *AbortError naming every unmet requirement; it never fails for other builds.
func GuardProduction(defines DefineMap, isProdRelease bool, reqs ProductionRequirements) error {
	if !isProdRelease {
		return nil
	}

	unmet := reqs.Unmet(defines)
	if len(unmet) == 0 {
		return nil
	}

	data := map[string]string{
		"Unmet":        joinFields(unmet),
		"Requirements": reqs.Summary(),
		"DefinesFile":  reqs.DefinesFile,
	}

	return &AbortError{
		Reason: AbortProductionDefines,
		Fields: unmet,
		Data:   data,
		Text: fmt.Sprintf(
			"prod release build requires dart defines (unmet: %s); pass --dart-define-from-file=%s and check %s",
			data["Unmet"], data["DefinesFile"], data["Requirements"],
		),
	}
}
