package config

// Projectfile represents the structure of the buildgate.yaml project file.
type Projectfile struct {
	Version       string         `yaml:"version"`
	ApplicationID string         `yaml:"application_id"`
	Signing       SigningDTO     `yaml:"signing"`
	Production    *ProductionDTO `yaml:"production"`
	Flavors       []FlavorDTO    `yaml:"flavors"`
}

// SigningDTO locates the signing properties file and the key store base directory.
type SigningDTO struct {
	Properties string `yaml:"properties"`
	StoreBase  string `yaml:"store_base"`
}

// ProductionDTO overrides the production release requirements.
type ProductionDTO struct {
	EnvKey      string   `yaml:"env_key"`
	EnvValue    string   `yaml:"env_value"`
	Required    []string `yaml:"required"`
	DefinesFile string   `yaml:"defines_file"`
}

// FlavorDTO represents a product flavor declaration.
type FlavorDTO struct {
	Name                string `yaml:"name"`
	ApplicationIDSuffix string `yaml:"application_id_suffix"`
	DisplayName         string `yaml:"display_name"`
}
