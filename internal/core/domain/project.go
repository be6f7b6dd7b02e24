package domain

// Project holds the declarative build settings of the app project.
type Project struct {
	// Dir is the absolute project directory all relative paths are resolved against.
	Dir           string
	ApplicationID string
	// SigningProperties is the signing properties file, relative to Dir.
	SigningProperties string
	// StoreBase is the directory a relative storeFile is resolved against, relative to Dir.
	StoreBase  string
	Production ProductionRequirements
	Flavors    []Flavor
}

// DefaultProject returns the settings used when the project has no project file.
func DefaultProject(dir string) *Project {
	return &Project{
		Dir:               dir,
		ApplicationID:     DefaultApplicationID,
		SigningProperties: SigningPropertiesFileName,
		StoreBase:         ".",
		Production:        DefaultProductionRequirements(),
		Flavors:           DefaultFlavors(),
	}
}

// DefaultFlavors returns the dev and prod flavors of the env dimension.
func DefaultFlavors() []Flavor {
	return []Flavor{
		{Name: "dev", ApplicationIDSuffix: ".dev", DisplayName: "커피로그 DEV"},
		{Name: "prod", DisplayName: "커피로그"},
	}
}
