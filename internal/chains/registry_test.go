package chains

import (
	"context"
	"testing"
	"time"

	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	chain model.Chain
	sent  int
	raw   []string
}

func (s *stubAdapter) Chain() model.Chain { return s.chain }
func (s *stubAdapter) PublicKey() (string, error) { return "addr-" + string(s.chain), nil }

func (s *stubAdapter) GetBalances(context.Context, string) (*model.BalanceResponse, error) {
	return &model.BalanceResponse{Chain: s.chain}, nil
}

func (s *stubAdapter) SignMessage([]byte) (string, error) { return "sig", nil }

func (s *stubAdapter) SignTransaction(context.Context, model.TxRequest) (string, error) {
	return "signed-" + string(s.chain), nil
}

func (s *stubAdapter) SendTransaction(context.Context, model.TxRequest) (string, error) {
	s.sent++
	return "tx-" + string(s.chain), nil
}

func (s *stubAdapter) SendRawTransaction(_ context.Context, signedTx string) (string, error) {
	s.raw = append(s.raw, signedTx)
	return "raw-" + string(s.chain), nil
}

func newTestRegistry(opts ...Option) (*Registry, *stubAdapter, *stubAdapter) {
	sol := &stubAdapter{chain: model.ChainSolana}
	eth := &stubAdapter{chain: model.ChainEthereum}
	r := NewRegistry(opts...)
	r.Register(sol)
	r.Register(eth)
	return r, sol, eth
}

func TestRegistryGetAndList(t *testing.T) {
	r, sol, _ := newTestRegistry()

	a, err := r.Get(model.ChainSolana)
	require.NoError(t, err)
	assert.Same(t, sol, a)

	_, err = r.Get("bitcoin")
	assert.ErrorIs(t, err, model.ErrUnsupportedChain)

	assert.Equal(t, []model.Chain{model.ChainEthereum, model.ChainSolana}, r.List())
}

func TestRegistryResolvesTaggedRequests(t *testing.T) {
	r, _, _ := newTestRegistry()
	ctx := context.Background()

	signed, err := r.Sign(ctx, &model.SolanaTxRequest{To: "a", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-solana", signed)

	signed, err = r.Sign(ctx, &model.EthereumTxRequest{To: "0x1", Value: "1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-ethereum", signed)

	_, err = r.Sign(ctx, nil)
	assert.ErrorIs(t, err, model.ErrInvalidTransaction)
	_, err = r.Sign(ctx, &model.EthereumTxRequest{To: "0x1"})
	assert.ErrorIs(t, err, model.ErrInvalidTransaction)

	solOnly := NewRegistry()
	solOnly.Register(&stubAdapter{chain: model.ChainSolana})
	_, err = solOnly.Send(ctx, &model.EthereumTxRequest{To: "0x1", Value: "1"})
	assert.ErrorIs(t, err, model.ErrUnsupportedChain)
}

func TestRegistrySendCooldown(t *testing.T) {
	r, sol, eth := newTestRegistry(WithSendCooldown(time.Hour))
	ctx := context.Background()

	txID, err := r.Send(ctx, &model.SolanaTxRequest{To: "a", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, "tx-solana", txID)

	// cooldown is shared across chains
	_, err = r.Send(ctx, &model.EthereumTxRequest{To: "0x1", Value: "1"})
	assert.ErrorIs(t, err, model.ErrSendCooldown)
	assert.Equal(t, 1, sol.sent)
	assert.Equal(t, 0, eth.sent)

	// signing is not rate limited
	_, err = r.Sign(ctx, &model.EthereumTxRequest{To: "0x1", Value: "1"})
	assert.NoError(t, err)
}

func TestRegistryNoCooldown(t *testing.T) {
	r, sol, _ := newTestRegistry()
	for i := 0; i < 3; i++ {
		_, err := r.Send(context.Background(), &model.SolanaTxRequest{To: "a", Amount: "1"})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, sol.sent)
}

func TestRegistryBroadcast(t *testing.T) {
	r, sol, eth := newTestRegistry(WithSendCooldown(time.Hour))
	ctx := context.Background()

	txID, err := r.Broadcast(ctx, model.ChainEthereum, "0x02f8")
	require.NoError(t, err)
	assert.Equal(t, "raw-ethereum", txID)
	assert.Equal(t, []string{"0x02f8"}, eth.raw)

	// broadcasting and sending share one cooldown
	_, err = r.Send(ctx, &model.SolanaTxRequest{To: "a", Amount: "1"})
	assert.ErrorIs(t, err, model.ErrSendCooldown)
	_, err = r.Broadcast(ctx, model.ChainSolana, "AQID")
	assert.ErrorIs(t, err, model.ErrSendCooldown)
	assert.Zero(t, sol.sent)
	assert.Empty(t, sol.raw)

	_, err = r.Broadcast(ctx, "bitcoin", "00")
	assert.ErrorIs(t, err, model.ErrUnsupportedChain)
	_, err = NewRegistry().Broadcast(ctx, model.ChainSolana, "")
	assert.ErrorIs(t, err, model.ErrInvalidTransaction)
}
