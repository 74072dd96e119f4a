package config

import (
	"fmt"
	"strconv"
)

// Opts are options for configuring the location of the config
type Opts struct {
	// Path is the path to the answers file
	Path string
}

// Answers pre-fill the prompts. Unset fields are prompted for.
type Answers struct {
	DB         string   `toml:"db" env:"DB"`
	Extensions []string `toml:"extensions" env:"EXTENSIONS" envSeparator:" "`
	PHPVersion string   `toml:"php_version" env:"PHP_VERSION"`
	HTTPPort   Port     `toml:"http_port" env:"HTTP_PORT"`
	// AddDBService is a pointer so an explicit false can be told apart from unset
	AddDBService *bool `toml:"add_db_service" env:"ADD_DB_SERVICE"`
}

// Port is an http port written either as a toml string or integer
type Port string

func (p *Port) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		*p = Port(t)
	case int64:
		*p = Port(strconv.FormatInt(t, 10))
	default:
		return fmt.Errorf("http_port must be a string or integer, got %T", v)
	}

	return nil
}

// Merge returns a copy of a where every field set in o takes precedence
func (a Answers) Merge(o Answers) Answers {
	if o.DB != "" {
		a.DB = o.DB
	}
	if len(o.Extensions) != 0 {
		a.Extensions = o.Extensions
	}
	if o.PHPVersion != "" {
		a.PHPVersion = o.PHPVersion
	}
	if o.HTTPPort != "" {
		a.HTTPPort = o.HTTPPort
	}
	if o.AddDBService != nil {
		a.AddDBService = o.AddDBService
	}

	return a
}
