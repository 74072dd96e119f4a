package generate

import "strings"

var driverExtensions = map[Database]string{
	MySQL:    "pdo_mysql",
	MariaDB:  "pdo_mysql",
	Postgres: "pdo_pgsql",
	SQLite:   "pdo_sqlite",
}

var mysqlEnvironment = []string{
	"environment:",
	"  - MYSQL_DATABASE=app",
	"  - MYSQL_USER=app",
	"  - MYSQL_PASSWORD=app",
	"  - MYSQL_ROOT_PASSWORD=root",
	"ports:",
	`  - "3306:3306"`,
}

// serviceBlocks are the compose db service bodies, unindented
var serviceBlocks = map[Database][]string{
	MySQL:   append([]string{"image: mysql:8"}, mysqlEnvironment...),
	MariaDB: append([]string{"image: mariadb:11"}, mysqlEnvironment...),
	Postgres: {
		"image: postgres:16",
		"environment:",
		"  - POSTGRES_DB=app",
		"  - POSTGRES_USER=app",
		"  - POSTGRES_PASSWORD=app",
		"ports:",
		`  - "5432:5432"`,
	},
	SQLite: {
		"image: alpine:3",
		`command: ["sh", "-c", "sleep infinity"]`,
	},
}

// ResolveExtensions returns the extensions to install for the image: the given extensions
// plus the driver extension for db, without blanks or duplicates, in first seen order.
func ResolveExtensions(extensions []string, db Database) []string {
	exts := make([]string, 0, len(extensions)+1)
	exts = append(exts, extensions...)
	if driver, ok := driverExtensions[db]; ok {
		exts = append(exts, driver)
	}

	return unique(exts)
}

// ServiceBlock returns the lines of the compose service for db. It's empty for None and
// unknown databases. Callers own the returned slice.
func ServiceBlock(db Database) []string {
	block, ok := serviceBlocks[db]
	if !ok {
		return nil
	}

	ret := make([]string, len(block))
	copy(ret, block)
	return ret
}

func unique(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	ret := make([]string, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item) == "" {
			continue
		}

		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		ret = append(ret, item)
	}

	return ret
}
