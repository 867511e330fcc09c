// Package eth implements ledger.Client against the CrowdFunding and
// ResourceSharing contracts over an Ethereum JSON-RPC endpoint.
package eth

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/mygive/platform-core/pkg/ledger"
)

//go:embed abi/CrowdFunding.json
var crowdFundingABI []byte

//go:embed abi/ResourceSharing.json
var resourceSharingABI []byte

// Config carries the connection settings for the ledger. Any missing or
// mismatched value leaves the client not-ready instead of failing.
type Config struct {
	RPCURL                 string
	ChainId                int64
	CrowdFundingAddress    string
	ResourceSharingAddress string
	PrivateKey             string
}

// Client is the go-ethereum backed ledger client.
type Client struct {
	rpc          *ethclient.Client
	chainId      *big.Int
	signer       *bind.TransactOpts
	account      common.Address
	crowdfunding *boundContract
	resources    *boundContract
	ready        bool
	log          *slog.Logger
}

// Make sure we conform to the interface
var _ ledger.Client = (*Client)(nil)

// Dial connects to the configured endpoint and verifies it serves the
// expected network. It fails closed: every problem is logged and leaves
// the returned client permanently not-ready, it never panics and never
// returns nil.
func Dial(ctx context.Context, cfg Config, log *slog.Logger) *Client {
	c := &Client{log: log}

	if cfg.RPCURL == "" {
		log.Warn("ledger RPC endpoint not configured, ledger client disabled")
		return c
	}
	if cfg.CrowdFundingAddress == "" || cfg.ResourceSharingAddress == "" {
		log.Warn("contract addresses not configured, ledger client disabled")
		return c
	}

	rpc, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		log.Warn("failed to dial ledger RPC endpoint", "url", cfg.RPCURL, "error", err)
		return c
	}

	chainId, err := rpc.ChainID(ctx)
	if err != nil {
		log.Warn("failed to read chain id from ledger RPC endpoint", "error", err)
		return c
	}
	if cfg.ChainId != 0 && chainId.Int64() != cfg.ChainId {
		log.Warn("connected to unexpected network, ledger client disabled",
			"want_chain_id", cfg.ChainId, "got_chain_id", chainId.Int64())
		return c
	}

	crowdfunding, err := newBoundContract(rpc, "CrowdFunding", cfg.CrowdFundingAddress, crowdFundingABI)
	if err != nil {
		log.Warn("failed to bind CrowdFunding contract", "error", err)
		return c
	}
	resources, err := newBoundContract(rpc, "ResourceSharing", cfg.ResourceSharingAddress, resourceSharingABI)
	if err != nil {
		log.Warn("failed to bind ResourceSharing contract", "error", err)
		return c
	}

	c.rpc = rpc
	c.chainId = chainId
	c.crowdfunding = crowdfunding
	c.resources = resources

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			log.Warn("failed to parse signing key, ledger client is read-only", "error", err)
		} else {
			signer, err := bind.NewKeyedTransactorWithChainID(key, chainId)
			if err != nil {
				log.Warn("failed to build transactor, ledger client is read-only", "error", err)
			} else {
				c.signer = signer
				c.account = crypto.PubkeyToAddress(key.PublicKey)
			}
		}
	}

	c.ready = true
	log.Info("ledger client connected", "chain_id", chainId.Int64(), "account", c.Account())
	return c
}

// Ready reports whether the client reached the expected network.
func (c *Client) Ready() bool { return c.ready }

// Account returns the connected signing identity, or "" for a
// read-only client.
func (c *Client) Account() string {
	if c.signer == nil {
		return ""
	}
	return c.account.Hex()
}

func (c *Client) guardRead() error {
	if !c.ready {
		return ledger.ErrNotReady
	}
	return nil
}

// transact submits one contract transaction and blocks until the ledger
// confirms it. Failures are surfaced verbatim as *ledger.TxError and
// never retried here.
func (c *Client) transact(ctx context.Context, bc *boundContract, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	if !c.ready || c.signer == nil {
		return nil, ledger.ErrNotReady
	}

	opts := *c.signer
	opts.Context = ctx
	opts.Value = value

	tx, err := bc.bound.Transact(&opts, method, args...)
	if err != nil {
		return nil, &ledger.TxError{Reason: fmt.Sprintf("%s.%s submission rejected", bc.name, method), Err: err}
	}

	receipt, err := bind.WaitMined(ctx, c.rpc, tx)
	if err != nil {
		return nil, &ledger.TxError{Reason: fmt.Sprintf("%s.%s confirmation failed", bc.name, method), Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &ledger.TxError{Reason: fmt.Sprintf("%s.%s reverted in transaction %s", bc.name, method, tx.Hash().Hex())}
	}

	return receipt, nil
}
