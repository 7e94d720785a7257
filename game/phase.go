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

import "fmt"

// Phase is the position of a run in its workflow:
//
//	Start → SignerAcquired → Deployed → (CallIssued → CallConfirmed)* → Reported
type Phase uint8

const (
	PhaseStart          Phase = iota // nothing done yet
	PhaseSignerAcquired              // deployer identity known
	PhaseDeployed                    // creation confirmed, contract live
	PhaseCallIssued                  // a follow-up call is in flight
	PhaseCallConfirmed               // the last call was included
	PhaseReported                    // read-back done, results printed
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseSignerAcquired:
		return "signer_acquired"
	case PhaseDeployed:
		return "deployed"
	case PhaseCallIssued:
		return "call_issued"
	case PhaseCallConfirmed:
		return "call_confirmed"
	case PhaseReported:
		return "reported"
	default:
		return "unknown"
	}
}

// CanAdvance reports whether to is a legal successor of p. A call is only
// issued once the previous one is confirmed.
func (p Phase) CanAdvance(to Phase) bool {
	switch to {
	case PhaseSignerAcquired:
		return p == PhaseStart
	case PhaseDeployed:
		return p == PhaseSignerAcquired
	case PhaseCallIssued:
		return p == PhaseDeployed || p == PhaseCallConfirmed
	case PhaseCallConfirmed:
		return p == PhaseCallIssued
	case PhaseReported:
		return p == PhaseDeployed || p == PhaseCallConfirmed
	}
	return false
}

// advance moves the report to the next phase.
func (r *Report) advance(to Phase) {
	if !r.Phase.CanAdvance(to) {
		panic(fmt.Sprintf("game: invalid phase transition %s -> %s", r.Phase, to))
	}
	r.Phase = to
}
