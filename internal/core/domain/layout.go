package domain

const (
	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = "buildgate.yaml"

	// SigningPropertiesFileName is the default name of the signing properties file.
	SigningPropertiesFileName = "key.properties"

	// DefaultApplicationID is the application id used when the project file sets none.
	DefaultApplicationID = "com.gooun.works.coffeelog"

	// ConfigVersion is the only supported project file version.
	ConfigVersion = "1"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
