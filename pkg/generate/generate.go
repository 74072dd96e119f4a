// Package generate renders the FrankenPHP Docker setup of a PHP application. Rendering is
// pure and safe for concurrent use, only Write touches the filesystem.
package generate

import "sort"

// Paths of the generated files relative to the project root
const (
	DockerfilePath = "docker/Dockerfile"
	ComposePath    = "docker/compose.yml"
	DevIniPath     = "docker/php/dev.ini"
	ProdIniPath    = "docker/php/prod.ini"
	CaddyfilePath  = "docker/frankenphp/Caddyfile"
)

// FileSet maps slash separated paths relative to the project root to file contents
type FileSet map[string]string

// Paths returns the paths of the FileSet sorted
func (f FileSet) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}

	sort.Strings(paths)
	return paths
}

// Generate renders every file of the Docker setup. Invalid options are replaced by their
// defaults so any input generates a complete FileSet.
func Generate(o Options) FileSet {
	opts := Normalize(o)

	return FileSet{
		DockerfilePath: Dockerfile(opts.PHPVersion, opts.Extensions, opts.DB),
		ComposePath:    Compose(opts.HTTPPort, opts.DB, opts.AddDBService),
		DevIniPath:     DevIni(),
		ProdIniPath:    ProdIni(),
		CaddyfilePath:  Caddyfile(),
	}
}
