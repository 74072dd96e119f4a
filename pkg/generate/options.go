package generate

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultPHPVersion is used when no PHP version is given
	DefaultPHPVersion = "8.4"
	// DefaultHTTPPort is used when the given port isn't 2 to 5 digits
	DefaultHTTPPort = "8080"
)

var portRegex = regexp.MustCompile(`^\d{2,5}$`)

// Database is the database engine the generated stack talks to
type Database string

const (
	MySQL    Database = "mysql"
	MariaDB  Database = "mariadb"
	Postgres Database = "postgres"
	SQLite   Database = "sqlite"
	None     Database = "none"
)

var databases = []Database{MySQL, MariaDB, Postgres, SQLite, None}

// Databases lists every accepted database in the order they are offered to users
func Databases() []Database {
	ret := make([]Database, len(databases))
	copy(ret, databases)
	return ret
}

// Options are the raw, possibly malformed, user choices. Every field is optional.
type Options struct {
	// DB must be exactly one of Databases(), anything else means None
	DB string
	// Extensions are extra PHP extensions. Only string and numeric values are kept.
	Extensions []any
	// PHPVersion is the PHP version of the base image, blank means DefaultPHPVersion
	PHPVersion string
	// HTTPPort is a string or number exposed on the host for the app
	HTTPPort any
	// AddDBService adds a database service to the compose file, nil means true
	AddDBService *bool
}

// GenerateOptions are the normalized options the renderers work with
type GenerateOptions struct {
	DB           Database
	Extensions   []string
	PHPVersion   string
	HTTPPort     string
	AddDBService bool
}

// Normalize converts raw options into GenerateOptions. It never fails, invalid or
// missing values fall back to their defaults.
func Normalize(o Options) GenerateOptions {
	addDBService := true
	if o.AddDBService != nil {
		addDBService = *o.AddDBService
	}

	return GenerateOptions{
		DB:           normalizeDB(o.DB),
		Extensions:   normalizeList(o.Extensions),
		PHPVersion:   normalizePHPVersion(o.PHPVersion),
		HTTPPort:     normalizePort(scalarString(o.HTTPPort)),
		AddDBService: addDBService,
	}
}

func normalizeDB(db string) Database {
	for _, d := range databases {
		if string(d) == db {
			return d
		}
	}

	return None
}

// normalizeList keeps trimmed, non-empty scalars in order. Duplicates are left for
// ResolveExtensions to remove.
func normalizeList(list []any) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := scalar(item)
		if !ok {
			continue
		}

		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// normalizePHPVersion treats blank versions as missing, anything else is kept verbatim
func normalizePHPVersion(version string) string {
	if strings.TrimSpace(version) == "" {
		return DefaultPHPVersion
	}

	return version
}

func normalizePort(port string) string {
	if !portRegex.MatchString(port) {
		return DefaultHTTPPort
	}

	return port
}

// scalarString is scalar without the ok, non scalars become the empty string
func scalarString(v any) string {
	s, _ := scalar(v)
	return s
}

// scalar formats strings and numbers. Any other type isn't a scalar.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int:
		return strconv.FormatInt(int64(t), 10), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
