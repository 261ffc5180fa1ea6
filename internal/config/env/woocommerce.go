package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type wooCommerceEnv struct {
	BaseURL   string        `env:"WOOCOMMERCE_BASE_URL,required"`
	APIKey    string        `env:"WOOCOMMERCE_API_KEY,required"`
	ProductID int64         `env:"WOOCOMMERCE_PRODUCT_ID,required"`
	Timeout   time.Duration `env:"WOOCOMMERCE_HTTP_TIMEOUT,required"`
}

type wooCommerce struct {
	raw wooCommerceEnv
}

func NewWooCommerceConfig() (*wooCommerce, error) {
	var raw wooCommerceEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &wooCommerce{raw: raw}, nil
}

func (cfg *wooCommerce) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *wooCommerce) APIKey() string         { return cfg.raw.APIKey }
func (cfg *wooCommerce) ProductID() int64       { return cfg.raw.ProductID }
func (cfg *wooCommerce) Timeout() time.Duration { return cfg.raw.Timeout }
