package domain

// Resolution is the outcome of resolving the build configuration for one invocation.
type Resolution struct {
	Tasks          []string              `json:"tasks" yaml:"tasks"`
	Defines        DefineMap             `json:"-" yaml:"-"`
	Classification ReleaseClassification `json:"classification" yaml:"classification"`
	Variant        Variant               `json:"variant" yaml:"variant"`
	Signing        SigningConfig         `json:"signing" yaml:"signing"`
}
