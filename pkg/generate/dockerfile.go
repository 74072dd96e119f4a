package generate

import "strings"

const (
	baseImage = "dunglas/frankenphp:1-php"
	// debugExtension is installed in the dev stage whatever the user picked
	debugExtension = "xdebug"

	phpConfDir    = "/usr/local/etc/php/conf.d/"
	caddyfileDest = "/etc/caddy/Caddyfile"
)

// Dockerfile renders the multi-stage build file. The builder stage must come first since
// dev and stable copy from it.
func Dockerfile(phpVersion string, extensions []string, db Database) string {
	base := baseImage + phpVersion + "-alpine"
	install := installLine(ResolveExtensions(extensions, db))

	builder := []string{
		from(base, "builder"),
		"WORKDIR /app",
		"COPY . /app",
	}
	builder = append(builder, install...)
	builder = append(builder, "RUN mkdir -p /app/var")

	dev := []string{
		from(base, "dev"),
		"WORKDIR /app",
		"COPY --from=builder /app /app",
		"RUN install-php-extensions " + debugExtension,
		"ENV XDEBUG_MODE=develop,debug",
		copyLine(DevIniPath, phpConfDir+"dev.ini"),
		copyLine(CaddyfilePath, caddyfileDest),
	}

	stable := []string{
		from(base, "stable"),
		"WORKDIR /app",
		"COPY --from=builder /app /app",
	}
	stable = append(stable, install...)
	stable = append(stable,
		copyLine(ProdIniPath, phpConfDir+"prod.ini"),
		copyLine(CaddyfilePath, caddyfileDest),
	)

	return joinStages(builder, dev, stable)
}

// installLine is the install-php-extensions instruction, or nothing when there's nothing to install
func installLine(exts []string) []string {
	exts = unique(exts)
	if len(exts) == 0 {
		return nil
	}

	return []string{"RUN install-php-extensions " + strings.Join(exts, " ")}
}

func from(image, stage string) string {
	return "FROM " + image + " AS " + stage
}

func copyLine(src, dest string) string {
	return "COPY " + src + " " + dest
}

// joinStages separates stages by a blank line and terminates the output with a newline
func joinStages(stages ...[]string) string {
	blocks := make([]string, 0, len(stages))
	for _, stage := range stages {
		blocks = append(blocks, strings.Join(stage, "\n"))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}
