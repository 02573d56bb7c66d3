package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo). Se pasa explícitamente a cada componente en su
// construcción; no hay singletons de proceso.
type Config struct {
	App   AppConfig
	Dirs  DirsConfig
	CSV   CSVConfig
	Codes CodesConfig
	Auth  AuthConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DirsConfig directorios de datos planos de la aplicación.
type DirsConfig struct {
	Data     string // catálogo, teléfonos, bazares, puntos, tutoriales, solicitudes
	Sales    string // archivos de ventas y devoluciones por día
	Comments string // comentarios de eventos y puntos
	Photos   string // fotos de productos (<cod_fabrica>.jpg|jpeg|png)
}

// CSVConfig formato de escritura de los archivos delimitados.
// La lectura detecta el delimitador por sí sola (ver csvstore).
type CSVConfig struct {
	Delimiter rune
}

// CodesConfig formato de los códigos de producto.
type CodesConfig struct {
	SalesPrefix string // prefijo del código de venta, ej. "BI"
	SalesLength int    // largo total del código de venta, ej. 8 (BINNNNCC)
}

// AuthConfig acceso a la sección de informaciones y reportes.
// InfoPassword acepta un hash bcrypt ($2a$...) o texto plano (solo desarrollo).
type AuthConfig struct {
	InfoPassword string
}

// JWTConfig configuración de los tokens emitidos por /api/authorize.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// DATA_DIR, SALES_DIR, INFO_PASSWORD, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	base, err := os.Getwd()
	if err != nil {
		base = "."
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "bazar-ops"),
		},
		Dirs: DirsConfig{
			Data:     getString(v, "DATA_DIR", filepath.Join(base, "data")),
			Sales:    getString(v, "SALES_DIR", filepath.Join(base, "sales_data")),
			Comments: getString(v, "COMMENTS_DIR", filepath.Join(base, "comments")),
			Photos:   getString(v, "PHOTOS_DIR", filepath.Join(base, "static", "fotos")),
		},
		CSV: CSVConfig{
			Delimiter: firstRune(getString(v, "CSV_DELIMITER", ";"), ';'),
		},
		Codes: CodesConfig{
			SalesPrefix: getString(v, "SALES_CODE_PREFIX", "BI"),
			SalesLength: getInt(v, "SALES_CODE_LENGTH", 8),
		},
		Auth: AuthConfig{
			InfoPassword: getString(v, "INFO_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 120),
			Issuer:     getString(v, "JWT_ISSUER", "bazar-ops"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5005),
		},
	}

	return cfg, nil
}

// EnsureDirs crea los directorios de datos si no existen.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Dirs.Data, c.Dirs.Sales, c.Dirs.Comments, c.Dirs.Photos} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	return nil
}

func firstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
