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
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Errors returned while loading scenario files.
var (
	ErrUnknownScenario = errors.New("game: unknown scenario")
	ErrUnknownMethod   = errors.New("game: unknown contract method")
	ErrMissingIndex    = errors.New("game: mintCharacterNFT requires an index")
	ErrMissingToken    = errors.New("game: query requires a token id")
)

// The default character roster.
var crew = []string{"ZORO", "NAMI", "USSOP"}

func roster(images []string) []CharacterSpec {
	hp := []uint64{100, 200, 300}
	atk := []uint64{100, 50, 25}
	chars := make([]CharacterSpec, len(crew))
	for i, name := range crew {
		chars[i] = CharacterSpec{Name: name, ImageURI: images[i], HP: hp[i], AttackDamage: atk[i]}
	}
	return chars
}

var (
	imgurImages = []string{
		"https://i.imgur.com/TZEhCTX.png",
		"https://i.imgur.com/WVAaMPA.png",
		"https://i.imgur.com/pCMZeiM.png",
	}
	ipfsImages = []string{
		"QmPNEmaiWSaQhWYkjKBWctX5jwZ4t9WEPgssDNFwUT1RBx",
		"QmNSa7MR5hcbJS1sHzx5AJ3HhHubChMYJhGGve7kJupii3",
		"QmQ59urX6G91McKCha59vL7j9JsACCx9ofZKWJ5CT5cEYd",
	}
)

func crocodile(hp uint64) *BossSpec {
	return &BossSpec{Name: "CROCODILE", ImageURI: "https://i.imgur.com/BehawOh.png", HP: hp, AttackDamage: 50}
}

// DeployScenario deploys the game with IPFS-hosted character images and
// makes no further calls.
func DeployScenario() *Scenario {
	return &Scenario{
		Contract: DefaultContract,
		Params:   NewDeployParams(roster(ipfsImages), crocodile(10000)),
		Done:     true,
	}
}

// BattleScenario deploys the game, mints the third character and attacks
// the boss twice.
func BattleScenario() *Scenario {
	return &Scenario{
		Contract: DefaultContract,
		Params:   NewDeployParams(roster(imgurImages), crocodile(1000)),
		Calls:    []Call{MintCharacter(2), AttackBoss(), AttackBoss()},
	}
}

// MintScenario deploys the boss-less revision of the game, mints the third
// character and reads back token #1.
func MintScenario() *Scenario {
	return &Scenario{
		Contract: DefaultContract,
		Params:   NewDeployParams(roster(imgurImages), nil),
		Calls:    []Call{MintCharacter(2)},
		Queries:  []Query{TokenURIQuery(1), OwnerOfQuery(1)},
	}
}

var builtins = map[string]func() *Scenario{
	"deploy": DeployScenario,
	"run":    BattleScenario,
	"mint":   MintScenario,
}

// BuiltinScenario returns a fresh copy of a named built-in scenario.
func BuiltinScenario(name string) (*Scenario, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return fn(), nil
}

// BuiltinScenarios lists the names of the built-in scenarios.
func BuiltinScenarios() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scenarioFile is the YAML layout of a scenario:
//
//	contract: MyEpicGame
//	done: true
//	characters:
//	  - {name: ZORO, image: https://..., hp: 100, attack: 100}
//	boss: {name: CROCODILE, image: https://..., hp: 1000, attack: 50}
//	calls:
//	  - {method: mintCharacterNFT, index: 2}
//	  - {method: attackBoss}
//	queries:
//	  - {method: tokenURI, token: 1}
type scenarioFile struct {
	Contract   string          `yaml:"contract"`
	Done       bool            `yaml:"done"`
	Characters []CharacterSpec `yaml:"characters"`
	Boss       *BossSpec       `yaml:"boss"`
	Calls      []struct {
		Method string  `yaml:"method"`
		Index  *uint64 `yaml:"index"`
	} `yaml:"calls"`
	Queries []struct {
		Method string  `yaml:"method"`
		Token  *uint64 `yaml:"token"`
	} `yaml:"queries"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(blob)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a YAML scenario.
func ParseScenario(blob []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(blob, &f); err != nil {
		return nil, err
	}
	sc := &Scenario{
		Contract: f.Contract,
		Params:   NewDeployParams(f.Characters, f.Boss),
		Done:     f.Done,
	}
	if sc.Contract == "" {
		sc.Contract = DefaultContract
	}
	for i, c := range f.Calls {
		switch c.Method {
		case "mintCharacterNFT":
			if c.Index == nil {
				return nil, fmt.Errorf("calls[%d]: %w", i, ErrMissingIndex)
			}
			sc.Calls = append(sc.Calls, MintCharacter(*c.Index))
		case "attackBoss":
			sc.Calls = append(sc.Calls, AttackBoss())
		default:
			return nil, fmt.Errorf("calls[%d]: %w: %q", i, ErrUnknownMethod, c.Method)
		}
	}
	for i, q := range f.Queries {
		if q.Token == nil {
			return nil, fmt.Errorf("queries[%d]: %w", i, ErrMissingToken)
		}
		switch q.Method {
		case "tokenURI":
			sc.Queries = append(sc.Queries, TokenURIQuery(*q.Token))
		case "ownerOf":
			sc.Queries = append(sc.Queries, OwnerOfQuery(*q.Token))
		default:
			return nil, fmt.Errorf("queries[%d]: %w: %q", i, ErrUnknownMethod, q.Method)
		}
	}
	return sc, nil
}
