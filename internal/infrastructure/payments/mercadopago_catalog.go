package payments

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"repairflow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/paymentmethod"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultCatalogTTL = 10 * time.Minute

// methodLister is the part of paymentmethod.Client the catalog needs.
type methodLister interface {
	List(ctx context.Context) ([]paymentmethod.Response, error)
}

// MercadoPagoCatalog answers whether a payment-method id is offered by Mercado Pago.
// The method list is fetched lazily and cached for ttl.
type MercadoPagoCatalog struct {
	client   methodLister
	mockMode bool
	ttl      time.Duration
	now      func() time.Time

	mu        sync.RWMutex
	methods   map[string]struct{}
	fetchedAt time.Time
}

var _ interfaces.IPaymentMethodCatalog = (*MercadoPagoCatalog)(nil)

func NewMercadoPagoCatalog(accessToken string, mockMode bool) (*MercadoPagoCatalog, error) {
	if mockMode {
		zap.L().Info("[payment][catalog] mock mode enabled")
		return &MercadoPagoCatalog{mockMode: true}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		zap.L().Warn("[payment][catalog] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.L().Error("[payment][catalog] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	zap.L().Info("[payment][catalog] Mercado Pago client initialized")
	return newCatalog(paymentmethod.NewClient(cfg), defaultCatalogTTL), nil
}

func newCatalog(client methodLister, ttl time.Duration) *MercadoPagoCatalog {
	return &MercadoPagoCatalog{client: client, ttl: ttl, now: time.Now}
}

func (c *MercadoPagoCatalog) Exists(ctx context.Context, paymentMethodID string) (bool, error) {
	id := strings.ToLower(strings.TrimSpace(paymentMethodID))
	if id == "" {
		return false, nil
	}
	if c.mockMode {
		return true, nil
	}

	methods, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := methods[id]
	return ok, nil
}

func (c *MercadoPagoCatalog) load(ctx context.Context) (map[string]struct{}, error) {
	c.mu.RLock()
	if c.methods != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		methods := c.methods
		c.mu.RUnlock()
		return methods, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.methods != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.methods, nil
	}

	list, err := c.client.List(ctx)
	if err != nil {
		zap.L().Warn("[payment][catalog] list payment methods failed", zap.Error(err))
		return nil, err
	}

	methods := make(map[string]struct{}, len(list))
	for _, m := range list {
		if m.Status != "" && m.Status != "active" {
			continue
		}
		methods[strings.ToLower(m.ID)] = struct{}{}
	}
	c.methods = methods
	c.fetchedAt = c.now()
	zap.L().Info("[payment][catalog] payment methods refreshed", zap.Int("count", len(methods)))
	return methods, nil
}
