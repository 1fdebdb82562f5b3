package app

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
)

const testChainID = "swap-test"

// node drives a memory backed application block by block.
type node struct {
	t      testing.TB
	app    app.BaseApp
	height int64
}

func newNode(t testing.TB, appState interface{}) *node {
	t.Helper()
	raw, err := json.Marshal(appState)
	require.NoError(t, err)

	base, err := Application("swapd", Stack(prometheus.NewRegistry()), TxDecoder, "", false)
	require.NoError(t, err)
	base.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: raw})
	n := &node{t: t, app: base}
	n.commit()
	return n
}

func (n *node) commit() {
	n.t.Helper()
	n.app.EndBlock(abci.RequestEndBlock{Height: n.height})
	n.app.Commit()
	n.height++
	n.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: testChainID, Height: n.height, Time: time.Now()},
	})
}

// sign attaches a signature of each key using its next sequence.
func (n *node) sign(tx *Tx, keys ...*crypto.PrivateKey) []byte {
	n.t.Helper()
	for _, key := range keys {
		seq, err := sigs.NextNonce(n.app.DeliverStore(), key.PublicKey().Address())
		require.NoError(n.t, err)
		sig, err := sigs.SignTx(key, tx, testChainID, seq)
		require.NoError(n.t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}
	raw, err := tx.Marshal()
	require.NoError(n.t, err)
	return raw
}

func (n *node) deliver(tx *Tx, keys ...*crypto.PrivateKey) abci.ResponseDeliverTx {
	n.t.Helper()
	return n.app.DeliverTx(n.sign(tx, keys...))
}

func (n *node) account(addr weave.Address) *token.Account {
	n.t.Helper()
	res := n.app.Query(abci.RequestQuery{Path: "/accounts", Data: addr})
	require.Zero(n.t, res.Code, res.Log)
	var acc token.Account
	require.NoError(n.t, app.UnmarshalOneResult(res.Value, &acc))
	return &acc
}

func (n *node) coins(addr weave.Address) uint64 {
	n.t.Helper()
	res := n.app.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
	require.Zero(n.t, res.Code, res.Log)
	var w cash.Wallet
	require.NoError(n.t, app.UnmarshalOneResult(res.Value, &w))
	return w.Amount
}

func meta() *weave.Metadata {
	return &weave.Metadata{Schema: 1}
}

// swapGenesis funds alice with 100 whole units of token A (2 decimals), bob
// and carol with 50 whole units of token B (6 decimals) each.
type swapGenesis struct {
	issuer, alice, bob, carol *crypto.PrivateKey
	mintA, mintB              weave.Address
	state                     map[string]interface{}
}

func newSwapGenesis() *swapGenesis {
	g := &swapGenesis{
		issuer: weavetest.NewKey(),
		alice:  weavetest.NewKey(),
		bob:    weavetest.NewKey(),
		carol:  weavetest.NewKey(),
		mintA:  weavetest.NewCondition().Address(),
		mintB:  weavetest.NewCondition().Address(),
	}
	g.state = map[string]interface{}{
		"cash": []interface{}{
			map[string]interface{}{"address": g.alice.PublicKey().Address(), "amount": 1000},
			map[string]interface{}{"address": g.bob.PublicKey().Address(), "amount": 1000},
			map[string]interface{}{"address": g.carol.PublicKey().Address(), "amount": 1000},
		},
		"token": map[string]interface{}{
			"mints": []interface{}{
				map[string]interface{}{"address": g.mintA, "name": "Token A", "decimals": 2, "mint_authority": g.issuer.PublicKey().Address()},
				map[string]interface{}{"address": g.mintB, "name": "Token B", "decimals": 6, "mint_authority": g.issuer.PublicKey().Address()},
			},
			"accounts": []interface{}{
				map[string]interface{}{"mint": g.mintA, "owner": g.alice.PublicKey().Address(), "amount": 10000},
				map[string]interface{}{"mint": g.mintB, "owner": g.bob.PublicKey().Address(), "amount": 50000000},
				map[string]interface{}{"mint": g.mintB, "owner": g.carol.PublicKey().Address(), "amount": 50000000},
			},
		},
		"conf": map[string]interface{}{
			"token":  map[string]interface{}{"metadata": meta(), "account_deposit": 7},
			"escrow": map[string]interface{}{"metadata": meta(), "record_deposit": 11},
		},
	}
	return g
}

func associated(t testing.TB, owner *crypto.PrivateKey, mint weave.Address) weave.Address {
	t.Helper()
	addr, _, err := token.AssociatedAccountAddress(owner.PublicKey().Address(), mint)
	require.NoError(t, err)
	return addr
}

func TestSwapLifecycle(t *testing.T) {
	g := newSwapGenesis()
	n := newNode(t, g.state)
	alice, bob := g.alice.PublicKey().Address(), g.bob.PublicKey().Address()

	aliceA := associated(t, g.alice, g.mintA)
	bobB := associated(t, g.bob, g.mintB)
	assert.Equal(t, uint64(10000), n.account(aliceA).Amount)
	assert.Equal(t, uint64(50000000), n.account(bobB).Amount)

	// Both parties open the accounts receiving the other token.
	res := n.deliver(&Tx{TokenCreateAccountMsg: &token.CreateAccountMsg{
		Metadata: meta(),
		Mint:     g.mintB,
		Owner:    alice,
		Payer:    alice,
	}}, g.alice)
	require.False(t, res.IsErr(), res.Log)
	aliceB := weave.Address(res.Data)

	res = n.deliver(&Tx{TokenCreateAccountMsg: &token.CreateAccountMsg{
		Metadata: meta(),
		Mint:     g.mintA,
		Owner:    bob,
		Payer:    bob,
	}}, g.bob)
	require.False(t, res.IsErr(), res.Log)
	bobA := weave.Address(res.Data)
	n.commit()

	initialize := &Tx{EscrowInitializeMsg: &escrow.InitializeMsg{
		Metadata:          meta(),
		ID:                "deal-1",
		AmountTokenA:      100,
		AmountTokenB:      50,
		Initializer:       alice,
		InitializerTokenA: aliceA,
		TokenA:            g.mintA,
		TokenB:            g.mintB,
	}}
	raw := n.sign(initialize, g.alice)
	check := n.app.CheckTx(raw)
	require.False(t, check.IsErr(), check.Log)
	res = n.app.DeliverTx(raw)
	require.False(t, res.IsErr(), res.Log)
	recordAddr := weave.Address(res.Data)
	n.commit()

	// The record is visible by its address and by the initializer index.
	q := n.app.Query(abci.RequestQuery{Path: "/escrows", Data: recordAddr})
	require.Zero(t, q.Code, q.Log)
	var record escrow.EscrowRecord
	require.NoError(t, app.UnmarshalOneResult(q.Value, &record))
	assert.Equal(t, uint64(10000), record.AmountTokenA)
	assert.Equal(t, uint64(50000000), record.AmountTokenB)

	q = n.app.Query(abci.RequestQuery{Path: "/escrows/initializer", Data: alice})
	require.Zero(t, q.Code, q.Log)
	var set app.ResultSet
	require.NoError(t, set.Unmarshal(q.Value))
	assert.Len(t, set.Results, 1)

	custodyAddr, _, err := escrow.CustodyAddress(recordAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n.account(aliceA).Amount)
	assert.Equal(t, uint64(10000), n.account(custodyAddr).Amount)

	finalize := &escrow.FinalizeMsg{
		Metadata:          meta(),
		EscrowAddress:     recordAddr,
		CustodyAddress:    custodyAddr,
		Initializer:       alice,
		InitializerTokenB: aliceB,
		Taker:             bob,
		TakerTokenB:       bobB,
		TakerTokenA:       bobA,
	}
	res = n.deliver(&Tx{EscrowFinalizeMsg: finalize}, g.bob)
	require.False(t, res.IsErr(), res.Log)
	n.commit()

	assert.Equal(t, uint64(50000000), n.account(aliceB).Amount)
	assert.Equal(t, uint64(0), n.account(bobB).Amount)
	assert.Equal(t, uint64(10000), n.account(bobA).Amount)

	// Every deposit except the one of the accounts still open is back.
	assert.Equal(t, uint64(1000-7), n.coins(alice))
	assert.Equal(t, uint64(1000-7), n.coins(bob))

	// The escrow is gone, a second finalize cannot pay twice.
	res = n.deliver(&Tx{EscrowFinalizeMsg: finalize}, g.bob)
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)
	n.commit()
	assert.Equal(t, uint64(10000), n.account(bobA).Amount)
	assert.Equal(t, uint64(50000000), n.account(aliceB).Amount)
}

func TestFinalizeWithoutFundsChangesNothing(t *testing.T) {
	g := newSwapGenesis()
	n := newNode(t, g.state)
	alice, bob := g.alice.PublicKey().Address(), g.bob.PublicKey().Address()
	aliceA := associated(t, g.alice, g.mintA)
	bobB := associated(t, g.bob, g.mintB)

	res := n.deliver(&Tx{TokenCreateAccountMsg: &token.CreateAccountMsg{
		Metadata: meta(), Mint: g.mintB, Owner: alice, Payer: alice,
	}}, g.alice)
	require.False(t, res.IsErr(), res.Log)
	aliceB := weave.Address(res.Data)
	res = n.deliver(&Tx{TokenCreateAccountMsg: &token.CreateAccountMsg{
		Metadata: meta(), Mint: g.mintA, Owner: bob, Payer: bob,
	}}, g.bob)
	require.False(t, res.IsErr(), res.Log)
	bobA := weave.Address(res.Data)

	// Bob does not hold enough of token B.
	res = n.deliver(&Tx{EscrowInitializeMsg: &escrow.InitializeMsg{
		Metadata:          meta(),
		ID:                "too-expensive",
		AmountTokenA:      100,
		AmountTokenB:      51,
		Initializer:       alice,
		InitializerTokenA: aliceA,
		TokenA:            g.mintA,
		TokenB:            g.mintB,
	}}, g.alice)
	require.False(t, res.IsErr(), res.Log)
	recordAddr := weave.Address(res.Data)
	custodyAddr, _, err := escrow.CustodyAddress(recordAddr)
	require.NoError(t, err)
	n.commit()

	res = n.deliver(&Tx{EscrowFinalizeMsg: &escrow.FinalizeMsg{
		Metadata:          meta(),
		EscrowAddress:     recordAddr,
		CustodyAddress:    custodyAddr,
		Initializer:       alice,
		InitializerTokenB: aliceB,
		Taker:             bob,
		TakerTokenB:       bobB,
		TakerTokenA:       bobA,
	}}, g.bob)
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), res.Code)
	n.commit()

	assert.Equal(t, uint64(10000), n.account(custodyAddr).Amount)
	assert.Equal(t, uint64(50000000), n.account(bobB).Amount)
	assert.Equal(t, uint64(0), n.account(bobA).Amount)
	assert.Equal(t, uint64(0), n.account(aliceB).Amount)
}

func TestRejectedTransactions(t *testing.T) {
	g := newSwapGenesis()
	n := newNode(t, g.state)
	alice, bob := g.alice.PublicKey().Address(), g.bob.PublicKey().Address()
	send := &cash.SendMsg{Metadata: meta(), Source: alice, Destination: bob, Amount: 5}

	cases := map[string]struct {
		Tx       func() []byte
		WantCode uint32
	}{
		"not a transaction": {
			Tx:       func() []byte { return []byte{0xff, 0xff, 0xff} },
			WantCode: errors.ErrInput.ABCICode(),
		},
		"no signature": {
			Tx: func() []byte {
				raw, err := (&Tx{CashSendMsg: send}).Marshal()
				require.NoError(t, err)
				return raw
			},
			WantCode: errors.ErrUnauthorized.ABCICode(),
		},
		"signed by somebody else": {
			Tx:       func() []byte { return n.sign(&Tx{CashSendMsg: send}, g.bob) },
			WantCode: errors.ErrUnauthorized.ABCICode(),
		},
		"two messages": {
			Tx: func() []byte {
				return n.sign(&Tx{CashSendMsg: send, SigsBumpSequenceMsg: &sigs.BumpSequenceMsg{Metadata: meta(), Increment: 1}}, g.alice)
			},
			WantCode: errors.ErrState.ABCICode(),
		},
		"empty": {
			Tx:       func() []byte { return n.sign(&Tx{}, g.alice) },
			WantCode: errors.ErrState.ABCICode(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res := n.app.DeliverTx(tc.Tx())
			assert.Equal(t, tc.WantCode, res.Code, res.Log)
		})
	}
	n.commit()
	assert.Equal(t, uint64(1000), n.coins(alice))
}

func TestConcurrentDelivery(t *testing.T) {
	const (
		senders = 4
		perUser = 10
	)
	sink := weavetest.NewCondition().Address()
	keys := make([]*crypto.PrivateKey, senders)
	var accounts []interface{}
	for i := range keys {
		keys[i] = weavetest.NewKey()
		accounts = append(accounts, map[string]interface{}{
			"address": keys[i].PublicKey().Address(),
			"amount":  100,
		})
	}
	n := newNode(t, map[string]interface{}{"cash": accounts})

	// Each sender signs its own sequence, the application serializes
	// execution of all of them.
	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key *crypto.PrivateKey) {
			defer wg.Done()
			for seq := int64(0); seq < perUser; seq++ {
				tx := &Tx{CashSendMsg: &cash.SendMsg{
					Metadata:    meta(),
					Source:      key.PublicKey().Address(),
					Destination: sink,
					Amount:      1,
				}}
				sig, err := sigs.SignTx(key, tx, testChainID, seq)
				if err != nil {
					t.Errorf("sign: %s", err)
					return
				}
				tx.Signatures = []*sigs.StdSignature{sig}
				raw, err := tx.Marshal()
				if err != nil {
					t.Errorf("marshal: %s", err)
					return
				}
				if res := n.app.DeliverTx(raw); res.IsErr() {
					t.Errorf("deliver %d: %s", seq, res.Log)
					return
				}
			}
		}(key)
	}
	wg.Wait()
	n.commit()

	assert.Equal(t, uint64(senders*perUser), n.coins(sink))
	for _, key := range keys {
		assert.Equal(t, uint64(100-perUser), n.coins(key.PublicKey().Address()))
	}
}

// openEscrow creates the token B account of alice and the token A accounts
// of the given takers, then escrows 100 A for 50 B. It returns the address
// of alice's token B account, the takers' token A accounts, the record and
// the custody account.
func openEscrow(t testing.TB, n *node, g *swapGenesis, takers ...*crypto.PrivateKey) (weave.Address, []weave.Address, weave.Address, weave.Address) {
	t.Helper()
	alice := g.alice.PublicKey().Address()
	res := n.deliver(&Tx{TokenCreateAccountMsg: &token.CreateAccountMsg{
		Metadata: meta(), Mint: g.mintB, Owner: alice, Payer: alice,
	}}, g.alice)
	require.False(t, res.IsErr(), res.Log)
	aliceB := weave.Address(res.Data)

	var takersA []weave.Address
	for _, key := range takers {
		owner := key.PublicKey().Address()
		res = n.deliver(&Tx{TokenCreateAccountMsg: &token.CreateAccountMsg{
			Metadata: meta(), Mint: g.mintA, Owner: owner, Payer: owner,
		}}, key)
		require.False(t, res.IsErr(), res.Log)
		takersA = append(takersA, weave.Address(res.Data))
	}

	res = n.deliver(&Tx{EscrowInitializeMsg: &escrow.InitializeMsg{
		Metadata:          meta(),
		ID:                "deal",
		AmountTokenA:      100,
		AmountTokenB:      50,
		Initializer:       alice,
		InitializerTokenA: associated(t, g.alice, g.mintA),
		TokenA:            g.mintA,
		TokenB:            g.mintB,
	}}, g.alice)
	require.False(t, res.IsErr(), res.Log)
	recordAddr := weave.Address(res.Data)
	custodyAddr, _, err := escrow.CustodyAddress(recordAddr)
	require.NoError(t, err)
	n.commit()
	return aliceB, takersA, recordAddr, custodyAddr
}

func finalizeBy(t testing.TB, g *swapGenesis, taker *crypto.PrivateKey, takerA, aliceB, recordAddr, custodyAddr weave.Address) *Tx {
	return &Tx{EscrowFinalizeMsg: &escrow.FinalizeMsg{
		Metadata:          meta(),
		EscrowAddress:     recordAddr,
		CustodyAddress:    custodyAddr,
		Initializer:       g.alice.PublicKey().Address(),
		InitializerTokenB: aliceB,
		Taker:             taker.PublicKey().Address(),
		TakerTokenB:       associated(t, taker, g.mintB),
		TakerTokenA:       takerA,
	}}
}

func TestFinalizeSweepsCustody(t *testing.T) {
	g := newSwapGenesis()
	n := newNode(t, g.state)
	alice, bob := g.alice.PublicKey().Address(), g.bob.PublicKey().Address()
	aliceB, takersA, recordAddr, custodyAddr := openEscrow(t, n, g, g.bob)
	bobA := takersA[0]

	// Coins and tokens sent to the custody address after initialize.
	res := n.deliver(&Tx{CashSendMsg: &cash.SendMsg{
		Metadata: meta(), Source: bob, Destination: custodyAddr, Amount: 3,
	}}, g.bob)
	require.False(t, res.IsErr(), res.Log)
	res = n.deliver(&Tx{TokenMintToMsg: &token.MintToMsg{
		Metadata: meta(), Mint: g.mintA, Destination: custodyAddr, Amount: 5,
	}}, g.issuer)
	require.False(t, res.IsErr(), res.Log)
	n.commit()
	assert.Equal(t, uint64(7+3), n.coins(custodyAddr))

	res = n.deliver(finalizeBy(t, g, g.bob, bobA, aliceB, recordAddr, custodyAddr), g.bob)
	require.False(t, res.IsErr(), res.Log)
	n.commit()

	assert.Equal(t, uint64(10005), n.account(bobA).Amount)
	assert.Equal(t, uint64(0), n.coins(custodyAddr))
	assert.Equal(t, uint64(0), n.coins(recordAddr))
	assert.Equal(t, uint64(1000-7+3), n.coins(alice))
	assert.Equal(t, uint64(1000-7-3), n.coins(bob))
}

func TestConcurrentFinalize(t *testing.T) {
	g := newSwapGenesis()
	n := newNode(t, g.state)
	aliceB, takersA, recordAddr, custodyAddr := openEscrow(t, n, g, g.bob, g.carol)
	takers := []*crypto.PrivateKey{g.bob, g.carol}

	raws := make([][]byte, len(takers))
	for i, key := range takers {
		raws[i] = n.sign(finalizeBy(t, g, key, takersA[i], aliceB, recordAddr, custodyAddr), key)
	}

	results := make([]abci.ResponseDeliverTx, len(raws))
	var wg sync.WaitGroup
	for i := range raws {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.app.DeliverTx(raws[i])
		}(i)
	}
	wg.Wait()
	n.commit()

	winner := -1
	for i, res := range results {
		if res.IsErr() {
			continue
		}
		require.Equal(t, -1, winner, "only one taker can finalize")
		winner = i
	}
	require.NotEqual(t, -1, winner, "one taker must finalize")
	loser := 1 - winner
	assert.Equal(t, errors.ErrNotFound.ABCICode(), results[loser].Code, results[loser].Log)

	assert.Equal(t, uint64(50000000), n.account(aliceB).Amount)
	assert.Equal(t, uint64(10000), n.account(takersA[winner]).Amount)
	assert.Equal(t, uint64(0), n.account(associated(t, takers[winner], g.mintB)).Amount)
	assert.Equal(t, uint64(0), n.account(takersA[loser]).Amount)
	assert.Equal(t, uint64(50000000), n.account(associated(t, takers[loser], g.mintB)).Amount)
	assert.Equal(t, uint64(0), n.account(custodyAddr).Amount)
}
