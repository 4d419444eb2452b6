package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Permisos para los directorios que la aplicación crea (output, samples).
const dirPerm = 0o750

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Forms  FormsConfig
	Layout LayoutConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// FormsConfig rutas de trabajo del generador de formularios.
type FormsConfig struct {
	OutputDir  string // PDFs generados; se crea si no existe
	SamplesDir string // planillas de ejemplo, solo lectura
	LogoPath   string // membrete; vacío = membrete de texto
}

// LayoutConfig constantes visuales de paginación y truncado.
// Son parámetros y no números mágicos: dependen del tamaño de página
// y del logo, y se ajustan sin recompilar.
type LayoutConfig struct {
	FirstPageRows    int     // filas de tabla que caben bajo el bloque de cabecera
	OverflowPageRows int     // filas por página de continuación (solo cabecera de tabla)
	CellPaddingMM    float64 // margen interior usado al truncar texto de celdas
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, FORMS_OUTPUT_DIR, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "asset-forms"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Forms: FormsConfig{
			OutputDir:  getString(v, "FORMS_OUTPUT_DIR", "output"),
			SamplesDir: getString(v, "FORMS_SAMPLES_DIR", "samples"),
			LogoPath:   getString(v, "FORMS_LOGO_PATH", ""),
		},
		Layout: LayoutConfig{
			FirstPageRows:    getInt(v, "FORMS_FIRST_PAGE_ROWS", 12),
			OverflowPageRows: getInt(v, "FORMS_OVERFLOW_PAGE_ROWS", 28),
			CellPaddingMM:    getFloat(v, "FORMS_CELL_PADDING_MM", 1.5),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate normaliza rutas y garantiza que el directorio de salida exista.
func (c *Config) validate() error {
	if c.Layout.FirstPageRows < 1 || c.Layout.OverflowPageRows < 1 {
		return fmt.Errorf("config: page row capacities must be positive (first=%d, overflow=%d)",
			c.Layout.FirstPageRows, c.Layout.OverflowPageRows)
	}

	abs, err := filepath.Abs(c.Forms.OutputDir)
	if err != nil {
		return fmt.Errorf("config: resolver directorio de salida: %w", err)
	}
	c.Forms.OutputDir = abs

	if _, err := os.Stat(c.Forms.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.Forms.OutputDir, dirPerm); err != nil {
			return fmt.Errorf("config: crear directorio de salida %s: %w", c.Forms.OutputDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("config: acceder al directorio de salida %s: %w", c.Forms.OutputDir, err)
	}

	return nil
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, err := strconv.ParseFloat(v.GetString(key), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
