// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package game

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// Errors for gas policy validation.
var (
	ErrNegativeGasPrice = errors.New("game: gas price cannot be negative")
	ErrMixedPricing     = errors.New("game: gas price cannot be combined with fee cap or tip cap")
	ErrTipAboveFeeCap   = errors.New("game: tip cap exceeds fee cap")
)

// GasPolicy holds the gas settings applied to every transaction of a run.
// Unset fields are left to the backend's estimation: gas limit by
// eth_estimateGas, pricing by the node's suggestion.
type GasPolicy struct {
	GasLimit  uint64   // fixed gas limit, 0 to estimate
	GasPrice  *big.Int // legacy pricing in wei
	GasFeeCap *big.Int // EIP-1559 max fee per gas in wei
	GasTipCap *big.Int // EIP-1559 priority fee per gas in wei
}

// NewGasPolicy validates and returns a gas policy. Any of the price
// arguments may be nil.
func NewGasPolicy(gasLimit uint64, gasPrice, feeCap, tipCap *big.Int) (*GasPolicy, error) {
	for _, v := range []*big.Int{gasPrice, feeCap, tipCap} {
		if v != nil && v.Sign() < 0 {
			return nil, ErrNegativeGasPrice
		}
	}
	if gasPrice != nil && (feeCap != nil || tipCap != nil) {
		return nil, ErrMixedPricing
	}
	if feeCap != nil && tipCap != nil && tipCap.Cmp(feeCap) > 0 {
		return nil, ErrTipAboveFeeCap
	}
	return &GasPolicy{
		GasLimit:  gasLimit,
		GasPrice:  copyBig(gasPrice),
		GasFeeCap: copyBig(feeCap),
		GasTipCap: copyBig(tipCap),
	}, nil
}

// Apply copies the policy onto transaction options.
func (g *GasPolicy) Apply(opts *bind.TransactOpts) {
	if g == nil {
		return
	}
	opts.GasLimit = g.GasLimit
	opts.GasPrice = copyBig(g.GasPrice)
	opts.GasFeeCap = copyBig(g.GasFeeCap)
	opts.GasTipCap = copyBig(g.GasTipCap)
}

// ParseWei parses a decimal wei amount. The empty string yields nil.
func ParseWei(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("game: invalid wei amount %q", s)
	}
	return v, nil
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
