package gateway

import (
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/config"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/usecase/shared"
)

const (
	NameRazorpay = "razorpay"
	NamePayU     = "payu"
)

func NewRazorpayClient(cfg config.GatewayConfig) *Client {
	return NewClient(Config{
		Name:            NameRazorpay,
		BaseURL:         cfg.BaseURL,
		KeyID:           cfg.KeyID,
		KeySecret:       cfg.KeySecret,
		OrderIDPrefix:   "order_",
		PaymentIDPrefix: "pay_",
		Timeout:         cfg.Timeout,
	})
}

func NewPayUClient(cfg config.PayUGatewayConfig) *Client {
	return NewClient(Config{
		Name:            NamePayU,
		BaseURL:         cfg.BaseURL,
		KeyID:           cfg.KeyID,
		KeySecret:       cfg.KeySecret,
		OrderIDPrefix:   "ord_",
		PaymentIDPrefix: "txn_",
		Timeout:         cfg.Timeout,
	})
}

// Registry resolves a gateway by the name the caller selected at order time
// and stored on the payment record.
type Registry struct {
	gateways map[string]shared.PaymentGateway
}

func NewRegistry(gateways ...shared.PaymentGateway) *Registry {
	m := make(map[string]shared.PaymentGateway, len(gateways))
	for _, gw := range gateways {
		m[gw.Name()] = gw
	}
	return &Registry{gateways: m}
}

func (r *Registry) Get(name string) (shared.PaymentGateway, bool) {
	gw, ok := r.gateways[name]
	return gw, ok
}
