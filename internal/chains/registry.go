package chains

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/AlexZinkM/unified-wallet/internal/model"
)

// Adapter is a chain integration: it reaches key material only through the
// wallet manager and talks to its own node.
type Adapter interface {
	Chain() model.Chain
	PublicKey() (string, error)
	GetBalances(ctx context.Context, address string) (*model.BalanceResponse, error)
	SignMessage(msg []byte) (string, error)
	SignTransaction(ctx context.Context, req model.TxRequest) (string, error)
	SendTransaction(ctx context.Context, req model.TxRequest) (string, error)
	// SendRawTransaction submits the output of SignTransaction unchanged.
	SendRawTransaction(ctx context.Context, signedTx string) (string, error)
}

type Registry struct {
	chains map[model.Chain]Adapter
	mu     sync.RWMutex

	cooldown time.Duration
	payMu    sync.Mutex
	lastPay  time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithSendCooldown enforces a minimum interval between successful sends
// across all chains. Zero disables it.
func WithSendCooldown(d time.Duration) Option {
	return func(r *Registry) { r.cooldown = d }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		chains: make(map[model.Chain]Adapter),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a chain to registry
func (r *Registry) Register(adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[adapter.Chain()] = adapter
}

// Get retrieves a chain adapter
func (r *Registry) Get(chain model.Chain) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.chains[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedChain, chain)
	}
	return adapter, nil
}

// List returns all registered chains, sorted
func (r *Registry) List() []model.Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]model.Chain, 0, len(r.chains))
	for name := range r.chains {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve validates req and returns the adapter for its chain.
func (r *Registry) Resolve(req model.TxRequest) (Adapter, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", model.ErrInvalidTransaction)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return r.Get(req.Chain())
}

// Sign resolves req and signs it without broadcasting.
func (r *Registry) Sign(ctx context.Context, req model.TxRequest) (string, error) {
	adapter, err := r.Resolve(req)
	if err != nil {
		return "", err
	}
	return adapter.SignTransaction(ctx, req)
}

// Send resolves req, signs and broadcasts it, subject to the send cooldown.
func (r *Registry) Send(ctx context.Context, req model.TxRequest) (string, error) {
	adapter, err := r.Resolve(req)
	if err != nil {
		return "", err
	}
	return r.withCooldown(func() (string, error) {
		return adapter.SendTransaction(ctx, req)
	})
}

// Broadcast submits an already signed transaction on chain, subject to the
// same send cooldown as Send.
func (r *Registry) Broadcast(ctx context.Context, chain model.Chain, signedTx string) (string, error) {
	if signedTx == "" {
		return "", fmt.Errorf("%w: signed transaction is required", model.ErrInvalidTransaction)
	}
	adapter, err := r.Get(chain)
	if err != nil {
		return "", err
	}
	return r.withCooldown(func() (string, error) {
		return adapter.SendRawTransaction(ctx, signedTx)
	})
}

// withCooldown runs send unless the cooldown is active and records the time
// of each successful send.
func (r *Registry) withCooldown(send func() (string, error)) (string, error) {
	r.payMu.Lock()
	defer r.payMu.Unlock()

	if r.cooldown > 0 && !r.lastPay.IsZero() {
		if elapsed := time.Since(r.lastPay); elapsed < r.cooldown {
			remaining := r.cooldown - elapsed
			return "", fmt.Errorf("%w, please wait %v", model.ErrSendCooldown, remaining.Round(time.Second))
		}
	}

	txID, err := send()
	if err != nil {
		return "", err
	}

	r.lastPay = time.Now()
	return txID, nil
}
