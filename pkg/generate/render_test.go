package generate

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"
)

const expectedDockerfile = `FROM dunglas/frankenphp:1-php8.3-alpine AS builder
WORKDIR /app
COPY . /app
RUN install-php-extensions intl pdo_pgsql
RUN mkdir -p /app/var

FROM dunglas/frankenphp:1-php8.3-alpine AS dev
WORKDIR /app
COPY --from=builder /app /app
RUN install-php-extensions xdebug
ENV XDEBUG_MODE=develop,debug
COPY docker/php/dev.ini /usr/local/etc/php/conf.d/dev.ini
COPY docker/frankenphp/Caddyfile /etc/caddy/Caddyfile

FROM dunglas/frankenphp:1-php8.3-alpine AS stable
WORKDIR /app
COPY --from=builder /app /app
RUN install-php-extensions intl pdo_pgsql
COPY docker/php/prod.ini /usr/local/etc/php/conf.d/prod.ini
COPY docker/frankenphp/Caddyfile /etc/caddy/Caddyfile
`

const expectedCompose = `services:
  app:
    build:
      context: ..
      dockerfile: docker/Dockerfile
      target: dev
    environment:
      SERVER_NAME: :80
    volumes:
      - ../:/app
    ports:
      - "8080:80"
    tty: true
    depends_on:
      - db
  db:
    image: postgres:16
    environment:
      - POSTGRES_DB=app
      - POSTGRES_USER=app
      - POSTGRES_PASSWORD=app
    ports:
      - "5432:5432"
`

func TestDockerfile(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Dockerfile("8.3", []string{"intl", "intl"}, Postgres)).To(Equal(expectedDockerfile))
}

func TestDockerfileWithoutExtensions(t *testing.T) {
	g := NewWithT(t)

	got := Dockerfile("8.4", nil, None)
	g.Expect(strings.Count(got, "install-php-extensions")).To(Equal(1))
	g.Expect(got).To(ContainSubstring("RUN install-php-extensions xdebug\n"))
	g.Expect(got).To(ContainSubstring("COPY . /app\nRUN mkdir -p /app/var\n"))
	g.Expect(got).To(ContainSubstring("COPY --from=builder /app /app\nCOPY docker/php/prod.ini"))
}

func TestDockerfileStages(t *testing.T) {
	g := NewWithT(t)

	got := Dockerfile("8.4", []string{"gd"}, MySQL)
	stages := strings.Split(strings.TrimSuffix(got, "\n"), "\n\n")
	g.Expect(stages).To(HaveLen(3))
	g.Expect(stages[0]).To(HavePrefix("FROM dunglas/frankenphp:1-php8.4-alpine AS builder\n"))
	g.Expect(stages[1]).To(HavePrefix("FROM dunglas/frankenphp:1-php8.4-alpine AS dev\n"))
	g.Expect(stages[2]).To(HavePrefix("FROM dunglas/frankenphp:1-php8.4-alpine AS stable\n"))

	// xdebug is dev only and the user list isn't installed in dev
	g.Expect(stages[1]).NotTo(ContainSubstring("pdo_mysql"))
	g.Expect(stages[0]).NotTo(ContainSubstring("xdebug"))
	g.Expect(stages[2]).NotTo(ContainSubstring("xdebug"))
	g.Expect(stages[0]).To(ContainSubstring("RUN install-php-extensions gd pdo_mysql\n"))
	g.Expect(stages[2]).To(ContainSubstring("RUN install-php-extensions gd pdo_mysql\n"))
}

func TestCompose(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Compose("8080", Postgres, true)).To(Equal(expectedCompose))
}

func TestComposeMySQL(t *testing.T) {
	g := NewWithT(t)

	got := Compose("8000", MySQL, true)
	g.Expect(got).To(ContainSubstring("image: mysql:8"))
	g.Expect(got).To(ContainSubstring(`"3306:3306"`))
	g.Expect(got).To(ContainSubstring(`"8000:80"`))
	g.Expect(got).To(ContainSubstring("    depends_on:\n      - db\n  db:\n    image: mysql:8\n"))
}

func TestComposeWithoutDBService(t *testing.T) {
	g := NewWithT(t)

	for _, db := range append(Databases(), Database("oracle")) {
		for _, add := range []bool{true, false} {
			if add && len(ServiceBlock(db)) != 0 {
				continue
			}

			got := Compose("8080", db, add)
			g.Expect(got).NotTo(ContainSubstring("depends_on:"), "db %s add %t", db, add)
			g.Expect(got).NotTo(ContainSubstring("\n  db:\n"), "db %s add %t", db, add)
			g.Expect(got).NotTo(ContainSubstring("db:"), "db %s add %t", db, add)
		}
	}
}

func TestComposeIsValidYaml(t *testing.T) {
	g := NewWithT(t)

	type service struct {
		Build struct {
			Context    string `json:"context"`
			Dockerfile string `json:"dockerfile"`
			Target     string `json:"target"`
		} `json:"build"`
		Image       string            `json:"image"`
		Environment any               `json:"environment"`
		Ports       []string          `json:"ports"`
		Volumes     []string          `json:"volumes"`
		DependsOn   []string          `json:"depends_on"`
		TTY         bool              `json:"tty"`
		Command     []string          `json:"command"`
		Labels      map[string]string `json:"labels"`
	}
	type compose struct {
		Services map[string]service `json:"services"`
	}

	for _, db := range Databases() {
		var c compose
		g.Expect(yaml.UnmarshalStrict([]byte(Compose("8080", db, true)), &c)).To(Succeed(), "db %s", db)

		app, ok := c.Services["app"]
		g.Expect(ok).To(BeTrue())
		g.Expect(app.Build.Context).To(Equal(".."))
		g.Expect(app.Build.Dockerfile).To(Equal(DockerfilePath))
		g.Expect(app.Build.Target).To(Equal("dev"))
		g.Expect(app.Environment).To(Equal(map[string]any{"SERVER_NAME": ":80"}))
		g.Expect(app.Ports).To(Equal([]string{"8080:80"}))
		g.Expect(app.Volumes).To(Equal([]string{"../:/app"}))
		g.Expect(app.TTY).To(BeTrue())

		if db == None {
			g.Expect(c.Services).To(HaveLen(1))
			g.Expect(app.DependsOn).To(BeEmpty())
			continue
		}

		g.Expect(c.Services).To(HaveLen(2))
		g.Expect(app.DependsOn).To(Equal([]string{"db"}))
		g.Expect(c.Services["db"].Image).NotTo(BeEmpty())
	}
}

func TestStaticFiles(t *testing.T) {
	g := NewWithT(t)

	g.Expect(DevIni()).To(ContainSubstring("memory_limit=512M\n"))
	g.Expect(DevIni()).To(ContainSubstring("xdebug.mode=develop,debug\n"))
	g.Expect(DevIni()).To(ContainSubstring("xdebug.client_port=9003\n"))
	g.Expect(DevIni()).To(ContainSubstring("opcache.enable=0\n"))

	g.Expect(ProdIni()).To(ContainSubstring("memory_limit=256M\n"))
	g.Expect(ProdIni()).To(ContainSubstring("display_errors=0\n"))
	g.Expect(ProdIni()).To(ContainSubstring("opcache.enable=1\n"))
	g.Expect(ProdIni()).To(ContainSubstring("opcache.preload=/app/config/preload.php\n"))

	g.Expect(Caddyfile()).To(ContainSubstring("encode zstd gzip"))
	g.Expect(Caddyfile()).To(ContainSubstring("try_files {path} {path}/index.php /index.php"))
	g.Expect(Caddyfile()).To(ContainSubstring("php_server"))
	g.Expect(Caddyfile()).To(ContainSubstring("format json"))
	g.Expect(Caddyfile()).To(HavePrefix("{\n    # Global options\n    auto_https off\n    admin off\n}\n"))

	g.Expect(DevIni()).To(Equal(DevIni()))
	g.Expect(ProdIni()).To(Equal(ProdIni()))
	g.Expect(Caddyfile()).To(Equal(Caddyfile()))
}
