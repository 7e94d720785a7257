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
)

// Error kinds. Every error returned by Driver.Run is a *StepError wrapping
// exactly one of them.
var (
	ErrEnvironment = errors.New("game: environment error")
	ErrDeployment  = errors.New("game: deployment error")
	ErrCall        = errors.New("game: call error")
	ErrQuery       = errors.New("game: query error")
)

// Errors for malformed runs.
var (
	ErrNoSigner = errors.New("game: no signer configured")
	ErrNoParams = errors.New("game: scenario has no deployment parameters")
)

// StepError is a failure of one workflow step.
type StepError struct {
	Kind  error  // ErrEnvironment, ErrDeployment, ErrCall or ErrQuery
	Phase Phase  // last phase reached before the failure
	Step  string // e.g. "mintCharacterNFT(2)"
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Step, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// stepError builds a StepError. A cause that already carries an
// environment error keeps that kind.
func stepError(kind error, phase Phase, step string, err error) *StepError {
	var se *StepError
	if errors.As(err, &se) {
		return se
	}
	if errors.Is(err, ErrEnvironment) {
		kind = ErrEnvironment
	}
	return &StepError{Kind: kind, Phase: phase, Step: step, Err: err}
}

// ExitCode maps the outcome of a run to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
