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

// Package epicgame provides Go bindings for the MyEpicGame contract, an
// ERC-721 game where players mint character NFTs and attack a shared boss.
package epicgame

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/epicgame/epicgame/contracts/epicgame/contract"
)

// ParsedABI returns the embedded MyEpicGame ABI.
func ParsedABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(contract.MyEpicGameABI))
}

// MyEpicGame is a high-level wrapper around a deployed MyEpicGame contract.
type MyEpicGame struct {
	abi          abi.ABI
	address      common.Address
	contract     *bind.BoundContract
	transactOpts *bind.TransactOpts
}

// NewMyEpicGame connects to an already-deployed MyEpicGame contract using
// the embedded ABI.
func NewMyEpicGame(opts *bind.TransactOpts, addr common.Address, backend bind.ContractBackend) (*MyEpicGame, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, err
	}
	return BindMyEpicGame(parsed, opts, addr, backend), nil
}

// BindMyEpicGame wraps a deployed contract using the given ABI, usually the
// one shipped in its build artifact.
func BindMyEpicGame(parsed abi.ABI, opts *bind.TransactOpts, addr common.Address, backend bind.ContractBackend) *MyEpicGame {
	return &MyEpicGame{
		abi:          parsed,
		address:      addr,
		contract:     bind.NewBoundContract(addr, parsed, backend, backend, backend),
		transactOpts: opts,
	}
}

// DeployMyEpicGame submits the creation transaction for the artifact's
// bytecode. The constructor arguments are packed against the artifact ABI,
// so a tuple that does not match the constructor is rejected here.
func DeployMyEpicGame(opts *bind.TransactOpts, art *Artifact, backend bind.ContractBackend, params ...interface{}) (common.Address, *types.Transaction, *MyEpicGame, error) {
	addr, tx, bound, err := bind.DeployContract(opts, art.ABI, art.Bytecode, backend, params...)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return addr, tx, &MyEpicGame{
		abi:          art.ABI,
		address:      addr,
		contract:     bound,
		transactOpts: opts,
	}, nil
}

// Address returns the contract address.
func (g *MyEpicGame) Address() common.Address {
	return g.address
}

// ──────────────────────────────────────────────
//  Write methods
// ──────────────────────────────────────────────

// MintCharacterNFT mints the default character at the given index to the sender.
func (g *MyEpicGame) MintCharacterNFT(ctx context.Context, characterIndex *big.Int) (*types.Transaction, error) {
	return g.contract.Transact(g.opts(ctx), "mintCharacterNFT", characterIndex)
}

// AttackBoss makes the sender's character attack the boss.
func (g *MyEpicGame) AttackBoss(ctx context.Context) (*types.Transaction, error) {
	return g.contract.Transact(g.opts(ctx), "attackBoss")
}

func (g *MyEpicGame) opts(ctx context.Context) *bind.TransactOpts {
	opts := *g.transactOpts
	opts.Context = ctx
	return &opts
}

// ──────────────────────────────────────────────
//  Read methods
// ──────────────────────────────────────────────

// TokenURI returns the metadata URI of a minted token.
func (g *MyEpicGame) TokenURI(ctx context.Context, tokenId *big.Int) (string, error) {
	var out []interface{}
	err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// OwnerOf returns the current owner of a token.
func (g *MyEpicGame) OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	var out []interface{}
	err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
