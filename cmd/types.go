package cmd

// Config describes dynamic variables for the cmd which should be set at build time
type Config struct {
	// Version is the version of the tool
	Version string
}
