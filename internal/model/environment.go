package model

// Environment is the deployment environment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name denotes production.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
