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

//go:generate mockgen -destination=mock/mock_chain.go -package=gamemock github.com/epicgame/epicgame/game Facility,Factory,PendingDeployment,Contract,Transaction,SignerProvider,Signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// Signer is an identity able to authorize transactions. Addresses are
// 0x-prefixed hex strings.
type Signer interface {
	// Address returns the account address of the signer.
	Address() string

	// SignTx signs a transaction for the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// SignerProvider lists the signers configured in the environment. The first
// one deploys the contract and sends every call.
type SignerProvider interface {
	Signers(ctx context.Context) ([]Signer, error)
}

// Facility resolves compiled contracts into deployable factories.
type Facility interface {
	// ContractFactory returns a factory for the named contract whose
	// transactions are authorized by signer.
	ContractFactory(ctx context.Context, name string, signer Signer) (Factory, error)
}

// Factory submits creation transactions for one contract.
type Factory interface {
	// Deploy submits the creation transaction. It does not wait for it to
	// be included.
	Deploy(ctx context.Context, params *DeployParams) (PendingDeployment, error)
}

// PendingDeployment is a submitted, unconfirmed contract creation.
type PendingDeployment interface {
	TxHash() string

	// WaitDeployed blocks until the creation is included and the code is
	// live, then returns the contract handle.
	WaitDeployed(ctx context.Context) (Contract, error)
}

// Contract is a handle to a deployed game contract.
type Contract interface {
	Address() string

	MintCharacterNFT(ctx context.Context, index uint64) (Transaction, error)
	AttackBoss(ctx context.Context) (Transaction, error)

	TokenURI(ctx context.Context, tokenID uint64) (string, error)
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)
}

// Transaction is a submitted state-changing call.
type Transaction interface {
	Hash() string

	// Wait blocks until the transaction is included. A reverted
	// transaction is an error.
	Wait(ctx context.Context) error
}
