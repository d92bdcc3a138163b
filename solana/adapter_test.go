package solana

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/storage"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var (
	recipient     = solana.MustPublicKeyFromBase58("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	testBlockhash = solana.MustHashFromBase58("EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N")
)

type fakeRPC struct {
	mint        solana.PublicKey
	usdc, sol   uint64
	destExists  bool
	balanceErr  error
	sent        []*solana.Transaction
	blockhashes int
}

func (f *fakeRPC) USDCMint() solana.PublicKey { return f.mint }

func (f *fakeRPC) GetBalance(context.Context, solana.PublicKey) (uint64, uint64, error) {
	return f.usdc, f.sol, f.balanceErr
}

func (f *fakeRPC) LatestBlockhash(context.Context) (solana.Hash, error) {
	f.blockhashes++
	return testBlockhash, nil
}

func (f *fakeRPC) AccountExists(context.Context, solana.PublicKey) (bool, error) {
	return f.destExists, nil
}

func (f *fakeRPC) SendTransaction(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	f.sent = append(f.sent, tx)
	return tx.Signatures[0], nil
}

type fixedPrice string

func (p fixedPrice) GetUSDRate(context.Context, string) (string, error) {
	if p == "" {
		return "", errors.New("rate limited")
	}
	return string(p), nil
}

func unlockedManager(t *testing.T) *wallet.Manager {
	t.Helper()
	m := wallet.NewManager(wallet.NewStore(storage.NewMemoryStore()))
	_, err := m.Import(context.Background(), abandonMnemonic, []byte("pw"))
	require.NoError(t, err)
	return m
}

func ownAddress(t *testing.T, a *Adapter) solana.PublicKey {
	t.Helper()
	addr, err := a.PublicKey()
	require.NoError(t, err)
	return solana.MustPublicKeyFromBase58(addr)
}

func TestSignMessage(t *testing.T) {
	m := unlockedManager(t)
	a := NewAdapter(m, nil, nil, nil)
	assert.Equal(t, model.ChainSolana, a.Chain())

	msg := []byte("hello solana")
	sigStr, err := a.SignMessage(msg)
	require.NoError(t, err)

	sig, err := solana.SignatureFromBase58(sigStr)
	require.NoError(t, err)
	assert.True(t, sig.Verify(ownAddress(t, a), msg))
	assert.False(t, sig.Verify(ownAddress(t, a), []byte("tampered")))

	m.Lock()
	_, err = a.SignMessage(msg)
	assert.ErrorIs(t, err, model.ErrWalletLocked)
	_, err = a.PublicKey()
	assert.ErrorIs(t, err, model.ErrWalletLocked)
}

func TestSignTransactionOffline(t *testing.T) {
	a := NewAdapter(unlockedManager(t), nil, nil, nil)
	from := ownAddress(t, a)

	b64, err := a.SignTransaction(context.Background(), &model.SolanaTxRequest{
		To:              recipient.String(),
		Amount:          "0.5",
		RecentBlockhash: testBlockhash.String(),
	})
	require.NoError(t, err)

	tx, err := solana.TransactionFromBase64(b64)
	require.NoError(t, err)
	require.NoError(t, tx.VerifySignatures())

	assert.Equal(t, testBlockhash, tx.Message.RecentBlockhash)
	assert.Equal(t, from, tx.Message.AccountKeys[0], "wallet pays the fee")
	require.Len(t, tx.Message.Instructions, 1)

	want, err := system.NewTransferInstruction(500_000_000, from, recipient).Build().Data()
	require.NoError(t, err)
	ix := tx.Message.Instructions[0]
	assert.Equal(t, solana.SystemProgramID, tx.Message.AccountKeys[ix.ProgramIDIndex])
	assert.Equal(t, want, []byte(ix.Data))
}

func TestSignTransactionFetchesBlockhash(t *testing.T) {
	rpc := &fakeRPC{}
	a := NewAdapter(unlockedManager(t), rpc, nil, nil)

	b64, err := a.SignTransaction(context.Background(), &model.SolanaTxRequest{To: recipient.String(), Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, rpc.blockhashes)

	tx, err := solana.TransactionFromBase64(b64)
	require.NoError(t, err)
	assert.Equal(t, testBlockhash, tx.Message.RecentBlockhash)

	// without rpc and without a blockhash there is nothing to sign against
	offline := NewAdapter(unlockedManager(t), nil, nil, nil)
	_, err = offline.SignTransaction(context.Background(), &model.SolanaTxRequest{To: recipient.String(), Amount: "1"})
	assert.Error(t, err)
}

func TestSignTransactionUSDC(t *testing.T) {
	mint := solana.MustPublicKeyFromBase58("4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU")
	req := &model.SolanaTxRequest{To: recipient.String(), Amount: "2.5", Token: "usdc"}

	for _, exists := range []bool{true, false} {
		rpc := &fakeRPC{mint: mint, destExists: exists}
		a := NewAdapter(unlockedManager(t), rpc, nil, nil)

		b64, err := a.SignTransaction(context.Background(), req)
		require.NoError(t, err)
		tx, err := solana.TransactionFromBase64(b64)
		require.NoError(t, err)
		require.NoError(t, tx.VerifySignatures())

		programs := make([]solana.PublicKey, 0, len(tx.Message.Instructions))
		for _, ix := range tx.Message.Instructions {
			programs = append(programs, tx.Message.AccountKeys[ix.ProgramIDIndex])
		}
		if exists {
			assert.Equal(t, []solana.PublicKey{solana.TokenProgramID}, programs)
		} else {
			assert.Equal(t, []solana.PublicKey{solana.SPLAssociatedTokenAccountProgramID, solana.TokenProgramID}, programs,
				"missing recipient token account is created first")
		}
	}
}

func TestSignTransactionRejectsBadRequests(t *testing.T) {
	a := NewAdapter(unlockedManager(t), &fakeRPC{}, nil, nil)
	ctx := context.Background()

	bad := []model.TxRequest{
		&model.EthereumTxRequest{To: "0x0", Value: "1"},
		&model.SolanaTxRequest{Amount: "1"},
		&model.SolanaTxRequest{To: "not-base58!", Amount: "1"},
		&model.SolanaTxRequest{To: recipient.String(), Amount: "abc"},
		&model.SolanaTxRequest{To: recipient.String(), Amount: "0"},
		&model.SolanaTxRequest{To: recipient.String(), Amount: "1", Token: "BONK"},
		&model.SolanaTxRequest{To: recipient.String(), Amount: "1", RecentBlockhash: "??"},
	}
	for _, req := range bad {
		_, err := a.SignTransaction(ctx, req)
		assert.ErrorIs(t, err, model.ErrInvalidTransaction, "%+v", req)
	}
}

func TestSendTransaction(t *testing.T) {
	rpc := &fakeRPC{}
	m := unlockedManager(t)
	a := NewAdapter(m, rpc, nil, nil)

	sig, err := a.SendTransaction(context.Background(), &model.SolanaTxRequest{To: recipient.String(), Amount: "0.1"})
	require.NoError(t, err)
	require.Len(t, rpc.sent, 1)
	assert.Equal(t, rpc.sent[0].Signatures[0].String(), sig)

	m.Lock()
	_, err = a.SendTransaction(context.Background(), &model.SolanaTxRequest{To: recipient.String(), Amount: "0.1"})
	assert.ErrorIs(t, err, model.ErrWalletLocked)
	assert.Len(t, rpc.sent, 1)
}

func TestSendRawTransaction(t *testing.T) {
	ctx := context.Background()
	m := unlockedManager(t)

	signed, err := NewAdapter(m, nil, nil, nil).SignTransaction(ctx, &model.SolanaTxRequest{
		To:              recipient.String(),
		Amount:          "0.25",
		RecentBlockhash: testBlockhash.String(),
	})
	require.NoError(t, err)

	// broadcasting needs no unlocked wallet
	m.Lock()
	rpc := &fakeRPC{}
	a := NewAdapter(m, rpc, nil, nil)
	sig, err := a.SendRawTransaction(ctx, signed)
	require.NoError(t, err)
	require.Len(t, rpc.sent, 1)
	assert.Equal(t, rpc.sent[0].Signatures[0].String(), sig)
	assert.Zero(t, rpc.blockhashes, "the signed transaction is sent as is")

	tampered, err := solana.TransactionFromBase64(signed)
	require.NoError(t, err)
	tampered.Message.RecentBlockhash = solana.Hash{1}
	full, err := tampered.MarshalBinary()
	require.NoError(t, err)

	for _, bad := range []string{"%%%", base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), base64.StdEncoding.EncodeToString(full)} {
		_, err = a.SendRawTransaction(ctx, bad)
		assert.ErrorIs(t, err, model.ErrInvalidTransaction, bad)
	}
	assert.Len(t, rpc.sent, 1)

	_, err = NewAdapter(m, nil, nil, nil).SendRawTransaction(ctx, signed)
	assert.ErrorContains(t, err, "rpc is not configured")
}

func TestGetBalances(t *testing.T) {
	rpc := &fakeRPC{usdc: 12_500_000, sol: 1_500_000_000}
	a := NewAdapter(unlockedManager(t), rpc, fixedPrice("142.456"), nil)

	resp, err := a.GetBalances(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, model.ChainSolana, resp.Chain)
	assert.Equal(t, ownAddress(t, a).String(), resp.Address)
	assert.Equal(t, []model.TokenBalance{
		{Symbol: "SOL", Amount: "1.500000000", Decimals: 9},
		{Symbol: "USDC", Amount: "12.500000", Decimals: 6},
	}, resp.Balances)
	assert.Equal(t, "213.68", resp.USDValue)

	// explicit address, price feed down
	a = NewAdapter(unlockedManager(t), rpc, fixedPrice(""), nil)
	resp, err = a.GetBalances(context.Background(), recipient.String())
	require.NoError(t, err)
	assert.Equal(t, recipient.String(), resp.Address)
	assert.Empty(t, resp.USDValue)

	_, err = a.GetBalances(context.Background(), "bogus!")
	assert.Error(t, err)

	rpc.balanceErr = errors.New("node down")
	_, err = a.GetBalances(context.Background(), "")
	assert.ErrorContains(t, err, "node down")
}
