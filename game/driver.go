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

// Package game drives the MyEpicGame contract: it deploys the game with a
// fixed roster, plays a fixed sequence of transactions against it and reads
// back the resulting token state.
//
// A run is strictly sequential. Every transaction is confirmed before the
// next one is sent and the first failure aborts the run. Nothing is retried
// and nothing is rolled back; a contract deployed before a failure stays on
// chain.
package game

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"
)

// DefaultContract is the artifact name deployed when a scenario names none.
const DefaultContract = "MyEpicGame"

// Driver runs scenarios against a deployment facility.
type Driver struct {
	facility Facility
	signers  SignerProvider
	out      io.Writer
}

// NewDriver creates a driver printing its report lines to out.
func NewDriver(facility Facility, signers SignerProvider, out io.Writer) *Driver {
	return &Driver{facility: facility, signers: signers, out: out}
}

// Run executes the scenario once. The returned report is never nil; on
// error it holds what was gathered before the failing step.
func (d *Driver) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	r := &Report{Phase: PhaseStart}

	owner, err := d.owner(ctx)
	if err != nil {
		return r, stepError(ErrEnvironment, r.Phase, "getSigners", err)
	}
	r.Deployer = owner.Address()
	r.advance(PhaseSignerAcquired)

	contract, err := d.deploy(ctx, sc, owner, r)
	if err != nil {
		return r, err
	}

	for _, call := range sc.Calls {
		if err := d.call(ctx, contract, call, r); err != nil {
			return r, err
		}
	}

	results, err := d.query(ctx, contract, sc.Queries, r.Phase)
	r.Queries = results
	if err != nil {
		return r, err
	}
	r.advance(PhaseReported)
	if sc.Done {
		d.printf("Done!\n")
	}
	return r, nil
}

// Inspect runs read-only queries against a deployed contract and prints
// each value. It stops at the first failing query.
func (d *Driver) Inspect(ctx context.Context, contract Contract, queries []Query) ([]QueryResult, error) {
	return d.query(ctx, contract, queries, PhaseDeployed)
}

func (d *Driver) query(ctx context.Context, contract Contract, queries []Query, phase Phase) ([]QueryResult, error) {
	var results []QueryResult
	for _, q := range queries {
		var (
			value string
			err   error
		)
		switch q.Kind {
		case QueryTokenURI:
			value, err = contract.TokenURI(ctx, q.TokenID)
		case QueryOwnerOf:
			value, err = contract.OwnerOf(ctx, q.TokenID)
		default:
			err = fmt.Errorf("game: unknown query kind %d", q.Kind)
		}
		if err != nil {
			return results, stepError(ErrQuery, phase, q.String(), err)
		}
		log.Debug("Query answered", "query", q, "value", value)
		d.printf("%s: %s\n", q.label(), value)
		results = append(results, QueryResult{Query: q, Value: value})
	}
	return results, nil
}

func (d *Driver) owner(ctx context.Context) (Signer, error) {
	signers, err := d.signers.Signers(ctx)
	if err != nil {
		return nil, err
	}
	if len(signers) == 0 {
		return nil, ErrNoSigner
	}
	return signers[0], nil
}

func (d *Driver) deploy(ctx context.Context, sc *Scenario, owner Signer, r *Report) (Contract, error) {
	name := sc.Contract
	if name == "" {
		name = DefaultContract
	}
	if sc.Params == nil {
		return nil, stepError(ErrDeployment, r.Phase, "deploy", ErrNoParams)
	}
	factory, err := d.facility.ContractFactory(ctx, name, owner)
	if err != nil {
		return nil, stepError(ErrDeployment, r.Phase, "getContractFactory("+name+")", err)
	}
	pending, err := factory.Deploy(ctx, sc.Params)
	if err != nil {
		return nil, stepError(ErrDeployment, r.Phase, "deploy", err)
	}
	r.DeployTx = pending.TxHash()
	log.Info("Contract creation submitted", "contract", name, "tx", r.DeployTx)

	contract, err := pending.WaitDeployed(ctx)
	if err != nil {
		return nil, stepError(ErrDeployment, r.Phase, "deployed", err)
	}
	r.Address = contract.Address()
	r.advance(PhaseDeployed)
	log.Info("Contract deployed", "contract", name, "address", r.Address, "deployer", r.Deployer)

	d.printf("Contract deployed to: %s\n", r.Address)
	d.printf("Contract deployed by: %s\n", r.Deployer)
	return contract, nil
}

func (d *Driver) call(ctx context.Context, contract Contract, call Call, r *Report) error {
	var (
		tx  Transaction
		err error
	)
	switch call.Kind {
	case CallMintCharacter:
		tx, err = contract.MintCharacterNFT(ctx, call.Index)
	case CallAttackBoss:
		tx, err = contract.AttackBoss(ctx)
	default:
		err = fmt.Errorf("game: unknown call kind %d", call.Kind)
	}
	if err != nil {
		return stepError(ErrCall, r.Phase, call.String(), err)
	}
	r.advance(PhaseCallIssued)
	log.Debug("Call submitted", "call", call, "tx", tx.Hash())

	if err := tx.Wait(ctx); err != nil {
		return stepError(ErrCall, r.Phase, call.String(), err)
	}
	r.advance(PhaseCallConfirmed)
	r.Calls = append(r.Calls, CallReceipt{Call: call, TxHash: tx.Hash()})
	log.Info("Call confirmed", "call", call, "tx", tx.Hash())
	return nil
}

func (d *Driver) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format, args...)
}
