package generate

import "strings"

const dbServiceName = "db"

// Compose renders the compose file with the app service and, when addDBService is set and
// db runs as a service, a db service the app depends on.
func Compose(httpPort string, db Database, addDBService bool) string {
	lines := []string{
		"services:",
		"  app:",
		"    build:",
		"      context: ..",
		"      dockerfile: " + DockerfilePath,
		"      target: dev",
		// FrankenPHP reads the address Caddy binds to from SERVER_NAME
		"    environment:",
		"      SERVER_NAME: :80",
		"    volumes:",
		"      - ../:/app",
		"    ports:",
		`      - "` + httpPort + `:80"`,
		"    tty: true",
	}

	block := ServiceBlock(db)
	if addDBService && len(block) != 0 {
		lines = append(lines,
			"    depends_on:",
			"      - "+dbServiceName,
			"  "+dbServiceName+":",
		)
		for _, line := range block {
			lines = append(lines, "    "+line)
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
