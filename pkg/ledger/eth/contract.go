package eth

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// boundContract wraps one deployed contract with its parsed ABI.
type boundContract struct {
	name    string
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

func newBoundContract(client *ethclient.Client, name, address string, abiJSON []byte) (*boundContract, error) {
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s ABI: %w", name, err)
	}

	addr := common.HexToAddress(address)
	return &boundContract{
		name:    name,
		address: addr,
		abi:     parsed,
		bound:   bind.NewBoundContract(addr, parsed, client, client, client),
	}, nil
}

// call executes a read-only contract method and returns the raw output
// values for the caller to convert.
func (c *boundContract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%s.%s call failed: %w", c.name, method, err)
	}
	return out, nil
}

// eventId scans a receipt for the named event emitted by this contract
// and returns its first indexed topic as an integer.
func (c *boundContract) eventId(receipt *types.Receipt, event string) (int64, bool) {
	ev, ok := c.abi.Events[event]
	if !ok {
		return 0, false
	}
	for _, lg := range receipt.Logs {
		if lg.Address == c.address && len(lg.Topics) > 1 && lg.Topics[0] == ev.ID {
			return new(big.Int).SetBytes(lg.Topics[1].Bytes()).Int64(), true
		}
	}
	return 0, false
}

// Conversion helpers for multi-output calls, in the shape the binding
// generator produces.

func asAddress(v interface{}) common.Address {
	return *abi.ConvertType(v, new(common.Address)).(*common.Address)
}

func asBigInt(v interface{}) *big.Int {
	return *abi.ConvertType(v, new(*big.Int)).(**big.Int)
}

func asString(v interface{}) string {
	return *abi.ConvertType(v, new(string)).(*string)
}

func asBool(v interface{}) bool {
	return *abi.ConvertType(v, new(bool)).(*bool)
}
