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
	"fmt"
	"math/big"
)

// CharacterSpec describes one playable character variant.
type CharacterSpec struct {
	Name         string `yaml:"name"`
	ImageURI     string `yaml:"image"`
	HP           uint64 `yaml:"hp"`
	AttackDamage uint64 `yaml:"attack"`
}

// BossSpec describes the boss every player fights.
type BossSpec struct {
	Name         string `yaml:"name"`
	ImageURI     string `yaml:"image"`
	HP           uint64 `yaml:"hp"`
	AttackDamage uint64 `yaml:"attack"`
}

// DeployParams is the constructor tuple of the game contract. Index i of the
// character slices describes character variant i. Lengths are not checked
// here: the contract owns that rule.
type DeployParams struct {
	Names         []string
	ImageURIs     []string
	HPs           []uint64
	AttackDamages []uint64

	// Boss is nil for contract revisions without a boss.
	Boss *BossSpec
}

// NewDeployParams lays out a character roster as a constructor tuple.
func NewDeployParams(chars []CharacterSpec, boss *BossSpec) *DeployParams {
	p := &DeployParams{Boss: boss}
	for _, c := range chars {
		p.Names = append(p.Names, c.Name)
		p.ImageURIs = append(p.ImageURIs, c.ImageURI)
		p.HPs = append(p.HPs, c.HP)
		p.AttackDamages = append(p.AttackDamages, c.AttackDamage)
	}
	return p
}

// Args returns the constructor arguments in ABI order.
func (p *DeployParams) Args() []interface{} {
	args := []interface{}{
		p.Names,
		p.ImageURIs,
		bigInts(p.HPs),
		bigInts(p.AttackDamages),
	}
	if p.Boss != nil {
		args = append(args,
			p.Boss.Name,
			p.Boss.ImageURI,
			new(big.Int).SetUint64(p.Boss.HP),
			new(big.Int).SetUint64(p.Boss.AttackDamage),
		)
	}
	return args
}

func bigInts(vals []uint64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = new(big.Int).SetUint64(v)
	}
	return out
}

// CallKind enumerates the state-changing entry points the driver can invoke.
type CallKind uint8

const (
	CallMintCharacter CallKind = iota // mintCharacterNFT(index)
	CallAttackBoss                    // attackBoss()
)

// Call is one state-changing transaction of a scenario.
type Call struct {
	Kind  CallKind
	Index uint64 // character index, only for CallMintCharacter
}

// MintCharacter returns a call minting the character variant at index.
func MintCharacter(index uint64) Call {
	return Call{Kind: CallMintCharacter, Index: index}
}

// AttackBoss returns a call attacking the boss.
func AttackBoss() Call {
	return Call{Kind: CallAttackBoss}
}

func (c Call) String() string {
	switch c.Kind {
	case CallMintCharacter:
		return fmt.Sprintf("mintCharacterNFT(%d)", c.Index)
	case CallAttackBoss:
		return "attackBoss()"
	default:
		return fmt.Sprintf("call(%d)", c.Kind)
	}
}

// QueryKind enumerates the read-only entry points.
type QueryKind uint8

const (
	QueryTokenURI QueryKind = iota
	QueryOwnerOf
)

// Query is one read-only lookup keyed by token id.
type Query struct {
	Kind    QueryKind
	TokenID uint64
}

// TokenURIQuery looks up the metadata URI of a token.
func TokenURIQuery(tokenID uint64) Query {
	return Query{Kind: QueryTokenURI, TokenID: tokenID}
}

// OwnerOfQuery looks up the owner of a token.
func OwnerOfQuery(tokenID uint64) Query {
	return Query{Kind: QueryOwnerOf, TokenID: tokenID}
}

func (q Query) String() string {
	switch q.Kind {
	case QueryTokenURI:
		return fmt.Sprintf("tokenURI(%d)", q.TokenID)
	case QueryOwnerOf:
		return fmt.Sprintf("ownerOf(%d)", q.TokenID)
	default:
		return fmt.Sprintf("query(%d)", q.Kind)
	}
}

// label is the console caption for a query result.
func (q Query) label() string {
	if q.Kind == QueryOwnerOf {
		return "NFT Owner"
	}
	return "Token URI"
}

// Scenario is one complete driver run: what to deploy, which calls to make
// afterwards and what to read back.
type Scenario struct {
	// Contract is the artifact name handed to the deployment facility.
	Contract string
	Params   *DeployParams
	Calls    []Call
	Queries  []Query

	// Done prints a closing "Done!" line after a successful run.
	Done bool
}

// CallReceipt records a confirmed call.
type CallReceipt struct {
	Call   Call
	TxHash string
}

// QueryResult records a read-back value.
type QueryResult struct {
	Query Query
	Value string
}

// Report is everything a run learned. On failure it holds what was
// gathered up to the failing step.
type Report struct {
	Phase    Phase
	Address  string
	Deployer string
	DeployTx string
	Calls    []CallReceipt
	Queries  []QueryResult
}
