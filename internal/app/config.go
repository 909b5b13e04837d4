package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the application configuration, loadable from environment
// variables (KIOSK_ prefix), flags, or YAML config files. Every field has a
// default, so a bare run needs no configuration at all.
type Config struct {
	CatalogCapacity int    `default:"150" usage:"Maximum number of catalog products" flag:"catalog-capacity"`
	CartMaxLines    int    `default:"100" usage:"Maximum distinct product lines in the cart" flag:"cart-max-lines"`
	MaxOrders       int    `default:"50"  usage:"Maximum orders recorded per session" flag:"max-orders"`
	AuditLogPath    string `default:"order_log.txt" usage:"Append-only order log file" flag:"audit-log-path"`
}

// LoadConfig loads configuration from environment variables and optional
// YAML config files, falling back to defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "KIOSK",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
