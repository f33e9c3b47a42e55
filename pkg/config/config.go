package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	JWT        JWTConfig
	Auth       AuthConfig
	LivingApps LivingAppsConfig
	Snapshot   SnapshotConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig cuenta única del operador del dashboard. El hash es bcrypt;
// la contraseña nunca se configura en claro.
type AuthConfig struct {
	Username     string
	PasswordHash string // bcrypt; vacío = login deshabilitado
}

// LivingAppsConfig acceso al REST API de LivingApps y los app IDs de las
// cinco colecciones del sistema de almacén.
type LivingAppsConfig struct {
	BaseURL       string
	SessionCookie string
	Timeout       time.Duration

	ProductsAppID      string
	StockLevelsAppID   string
	OrdersAppID        string
	GoodsReceiptsAppID string
	SuppliersAppID     string
}

// SnapshotConfig ciclo de recarga del snapshot en memoria.
type SnapshotConfig struct {
	RefreshInterval time.Duration // 0 = solo recarga manual y tras escrituras
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, JWT_SECRET, LIVINGAPPS_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "lagerhub"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "lagerhub"),
		},
		Auth: AuthConfig{
			Username:     getString(v, "AUTH_USERNAME", "admin"),
			PasswordHash: getString(v, "AUTH_PASSWORD_HASH", ""),
		},
		LivingApps: LivingAppsConfig{
			BaseURL:       getString(v, "LIVINGAPPS_BASE_URL", "https://my.living-apps.de/rest"),
			SessionCookie: getString(v, "LIVINGAPPS_SESSION_COOKIE", ""),
			Timeout:       getDuration(v, "LIVINGAPPS_TIMEOUT", 30*time.Second),

			ProductsAppID:      getString(v, "LIVINGAPPS_APP_PRODUKTE", ""),
			StockLevelsAppID:   getString(v, "LIVINGAPPS_APP_LAGERBESTAND", ""),
			OrdersAppID:        getString(v, "LIVINGAPPS_APP_BESTELLUNGEN", ""),
			GoodsReceiptsAppID: getString(v, "LIVINGAPPS_APP_WARENEINGANG", ""),
			SuppliersAppID:     getString(v, "LIVINGAPPS_APP_LIEFERANTEN", ""),
		},
		Snapshot: SnapshotConfig{
			RefreshInterval: getDuration(v, "SNAPSHOT_REFRESH_INTERVAL", 0),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate comprueba lo mínimo para arrancar: los cinco app IDs.
func (c *Config) validate() error {
	missing := []string{}
	la := c.LivingApps
	for name, val := range map[string]string{
		"LIVINGAPPS_APP_PRODUKTE":     la.ProductsAppID,
		"LIVINGAPPS_APP_LAGERBESTAND": la.StockLevelsAppID,
		"LIVINGAPPS_APP_BESTELLUNGEN": la.OrdersAppID,
		"LIVINGAPPS_APP_WARENEINGANG": la.GoodsReceiptsAppID,
		"LIVINGAPPS_APP_LIEFERANTEN":  la.SuppliersAppID,
	} {
		if val == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: faltan app IDs de LivingApps: %s", strings.Join(missing, ", "))
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d, err := time.ParseDuration(v.GetString(key)); err == nil {
			return d
		}
	}
	return def
}
