package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server  *Server  `json:"server"`
	Data    *Data    `json:"data"`
	Auth    *Auth    `json:"auth"`
	Media   *Media   `json:"media"`
	Catalog *Catalog `json:"catalog"`
	Site    *Site    `json:"site"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
	Grpc *Server_GRPC `json:"grpc"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Server_GRPC struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

type Data_Database struct {
	Driver      string `json:"driver"`
	Source      string `json:"source"`
	AutoMigrate bool   `json:"auto_migrate"`
}

type Data_Redis struct {
	Network      string    `json:"network"`
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	Db           int       `json:"db"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
}

// Auth configures session cookies.
type Auth struct {
	SessionTtl   *Duration `json:"session_ttl"`
	CookieName   string    `json:"cookie_name"`
	CookieSecure bool      `json:"cookie_secure"`
}

// Media configures the local store for uploaded posters, videos and avatars.
type Media struct {
	Root           string `json:"root"`
	UrlPrefix      string `json:"url_prefix"`
	MaxUploadBytes int64  `json:"max_upload_bytes"`
}

// Catalog configures the external movie catalog used by the import tooling.
type Catalog struct {
	Url        string    `json:"url"`
	ApiKey     string    `json:"api_key"`
	Timeout    *Duration `json:"timeout"`
	MaxRetries int32     `json:"max_retries"`
}

// Site holds the display names shown by clients.
type Site struct {
	Name   string `json:"name"`
	Header string `json:"header"`
	Title  string `json:"title"`
}

// Duration is a time.Duration read from strings such as "1.5s".
type Duration struct {
	time.Duration
}

// AsDuration returns the wrapped value, zero for a nil receiver.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
