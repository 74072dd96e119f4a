package generate

import "strings"

var devIni = joinLines(
	"memory_limit=512M",
	"display_errors=1",
	"display_startup_errors=1",
	"error_reporting=E_ALL",
	"xdebug.mode=develop,debug",
	"xdebug.start_with_request=yes",
	"xdebug.client_host=host.docker.internal",
	"xdebug.client_port=9003",
	"opcache.enable=0",
)

var prodIni = joinLines(
	"memory_limit=256M",
	"display_errors=0",
	"error_reporting=E_ALL & ~E_DEPRECATED & ~E_STRICT",
	"opcache.enable=1",
	"opcache.validate_timestamps=0",
	"opcache.preload=/app/config/preload.php",
)

var caddyfile = joinLines(
	"{",
	"    # Global options",
	"    auto_https off",
	"    admin off",
	"}",
	"",
	":80 {",
	"    # FrankenPHP configuration",
	"    root /app/public",
	"",
	"    # Enable compression",
	"    encode zstd gzip",
	"",
	"    # Handle PHP files with FrankenPHP",
	"    php_server",
	"",
	"    # Try files directive for Symfony routing",
	"    try_files {path} {path}/index.php /index.php",
	"",
	"    # Serve static files directly",
	"    file_server",
	"",
	"    # Log in JSON format",
	"    log {",
	"            format json",
	"    }",
	"}",
)

// DevIni returns the php.ini overrides for the dev stage
func DevIni() string {
	return devIni
}

// ProdIni returns the php.ini overrides for the stable stage
func ProdIni() string {
	return prodIni
}

// Caddyfile returns the FrankenPHP server config shared by both stages
func Caddyfile() string {
	return caddyfile
}

func joinLines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}
