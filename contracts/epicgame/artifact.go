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

package epicgame

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Errors returned while resolving build artifacts.
var (
	ErrArtifactNotFound = errors.New("epicgame: artifact not found")
	ErrNoBytecode       = errors.New("epicgame: artifact has no creation bytecode")
)

// Artifact is a compiled contract as written by the Hardhat build into
// artifacts/<sourceName>/<contractName>.json.
type Artifact struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	RawABI       json.RawMessage `json:"abi"`
	Bytecode     hexutil.Bytes   `json:"bytecode"`

	ABI abi.ABI `json:"-"`
}

// LoadArtifact reads and parses a single artifact file.
func LoadArtifact(path string) (*Artifact, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var art Artifact
	if err := json.Unmarshal(blob, &art); err != nil {
		return nil, fmt.Errorf("epicgame: invalid artifact %s: %w", path, err)
	}
	if len(art.Bytecode) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBytecode, path)
	}
	if art.ABI, err = abi.JSON(bytes.NewReader(art.RawABI)); err != nil {
		return nil, fmt.Errorf("epicgame: invalid ABI in %s: %w", path, err)
	}
	return &art, nil
}

// FindArtifact walks an artifacts directory looking for the artifact of the
// named contract. Debug companions (*.dbg.json) are skipped.
func FindArtifact(dir, name string) (*Artifact, error) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}
		if filepath.Base(path) == name+".json" {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if found == "" {
		return nil, fmt.Errorf("%w: %s in %s", ErrArtifactNotFound, name, dir)
	}
	return LoadArtifact(found)
}
