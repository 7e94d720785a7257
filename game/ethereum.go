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
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/epicgame/epicgame/contracts/epicgame"
)

// Errors returned by the Ethereum facility.
var (
	ErrReverted       = errors.New("game: transaction reverted")
	ErrInvalidAddress = errors.New("game: invalid contract address")
)

// Backend is the node access the Ethereum facility needs. Both
// *ethclient.Client and the simulated backend satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// EthereumFacility deploys and drives contracts from Hardhat artifacts on an
// Ethereum chain.
type EthereumFacility struct {
	backend   Backend
	chainID   *big.Int
	artifacts string
	gas       *GasPolicy
	timeout   time.Duration
}

// NewEthereumFacility creates a facility reading artifacts from dir. A
// positive timeout bounds every confirmation wait; gas may be nil.
func NewEthereumFacility(backend Backend, chainID *big.Int, dir string, gas *GasPolicy, timeout time.Duration) *EthereumFacility {
	return &EthereumFacility{
		backend:   backend,
		chainID:   chainID,
		artifacts: dir,
		gas:       gas,
		timeout:   timeout,
	}
}

func (f *EthereumFacility) ContractFactory(ctx context.Context, name string, signer Signer) (Factory, error) {
	art, err := epicgame.FindArtifact(f.artifacts, name)
	if err != nil {
		if errors.Is(err, epicgame.ErrArtifactNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrEnvironment, err)
		}
		return nil, err
	}
	return &ethFactory{facility: f, artifact: art, opts: f.transactOpts(signer)}, nil
}

// Attach binds an already deployed contract through the embedded ABI. The
// signer may be nil when only read-only queries will be made.
func (f *EthereumFacility) Attach(address string, signer Signer) (Contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	g, err := epicgame.NewMyEpicGame(f.transactOpts(signer), common.HexToAddress(address), f.backend)
	if err != nil {
		return nil, err
	}
	return &ethContract{facility: f, game: g}, nil
}

// transactOpts builds transaction options authorized by signer.
func (f *EthereumFacility) transactOpts(signer Signer) *bind.TransactOpts {
	opts := new(bind.TransactOpts)
	if signer != nil {
		from := common.HexToAddress(signer.Address())
		opts.From = from
		opts.Signer = func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, bind.ErrNotAuthorized
			}
			return signer.SignTx(tx, f.chainID)
		}
	}
	f.gas.Apply(opts)
	return opts
}

func (f *EthereumFacility) waitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout > 0 {
		return context.WithTimeout(ctx, f.timeout)
	}
	return context.WithCancel(ctx)
}

type ethFactory struct {
	facility *EthereumFacility
	artifact *epicgame.Artifact
	opts     *bind.TransactOpts
}

func (fa *ethFactory) Deploy(ctx context.Context, params *DeployParams) (PendingDeployment, error) {
	if params == nil {
		return nil, ErrNoParams
	}
	opts := *fa.opts
	opts.Context = ctx
	_, tx, g, err := epicgame.DeployMyEpicGame(&opts, fa.artifact, fa.facility.backend, params.Args()...)
	if err != nil {
		return nil, err
	}
	return &ethPending{facility: fa.facility, tx: tx, game: g}, nil
}

type ethPending struct {
	facility *EthereumFacility
	tx       *types.Transaction
	game     *epicgame.MyEpicGame
}

func (p *ethPending) TxHash() string { return p.tx.Hash().Hex() }

func (p *ethPending) WaitDeployed(ctx context.Context) (Contract, error) {
	ctx, cancel := p.facility.waitContext(ctx)
	defer cancel()

	if _, err := bind.WaitDeployed(ctx, p.facility.backend, p.tx); err != nil {
		return nil, err
	}
	return &ethContract{facility: p.facility, game: p.game}, nil
}

type ethContract struct {
	facility *EthereumFacility
	game     *epicgame.MyEpicGame
}

func (c *ethContract) Address() string { return c.game.Address().Hex() }

func (c *ethContract) MintCharacterNFT(ctx context.Context, index uint64) (Transaction, error) {
	tx, err := c.game.MintCharacterNFT(ctx, new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	return &ethTransaction{facility: c.facility, tx: tx}, nil
}

func (c *ethContract) AttackBoss(ctx context.Context) (Transaction, error) {
	tx, err := c.game.AttackBoss(ctx)
	if err != nil {
		return nil, err
	}
	return &ethTransaction{facility: c.facility, tx: tx}, nil
}

func (c *ethContract) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	return c.game.TokenURI(ctx, new(big.Int).SetUint64(tokenID))
}

func (c *ethContract) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	owner, err := c.game.OwnerOf(ctx, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}
	return owner.Hex(), nil
}

type ethTransaction struct {
	facility *EthereumFacility
	tx       *types.Transaction
}

func (t *ethTransaction) Hash() string { return t.tx.Hash().Hex() }

func (t *ethTransaction) Wait(ctx context.Context) error {
	ctx, cancel := t.facility.waitContext(ctx)
	defer cancel()

	receipt, err := bind.WaitMined(ctx, t.facility.backend, t.tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s (gas used %d)", ErrReverted, t.Hash(), receipt.GasUsed)
	}
	return nil
}
