// Copyright 2018 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// epicgame deploys the MyEpicGame contract and plays a scripted sequence of
// transactions against it.
//
// Usage:
//
//	epicgame [--rpc <endpoint>] [run|deploy|mint] --privatekey <hex> [--artifacts <dir>]
//	epicgame play --scenario <file.yaml> --keyfile <path> --password <pass>
//	epicgame inspect --contract <address> --token 1 [--token 2 ...]
//
// Flags given before the command apply to it unless the command sets them
// again.
package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/epicgame/epicgame/game"
)

var (
	// Flags
	rpcFlag = cli.StringFlag{
		Name:   "rpc",
		Usage:  "Ethereum JSON-RPC endpoint",
		Value:  "http://localhost:8545",
		EnvVar: "EPICGAME_RPC",
	}
	keyfileFlag = cli.StringFlag{
		Name:   "keyfile",
		Usage:  "Path to an encrypted JSON keyfile used as signer",
		EnvVar: "EPICGAME_KEYFILE",
	}
	passwordFlag = cli.StringFlag{
		Name:   "password",
		Usage:  "Password of the keyfile",
		EnvVar: "EPICGAME_PASSWORD",
	}
	privateKeyFlag = cli.StringFlag{
		Name:   "privatekey",
		Usage:  "Comma separated hex private keys, in signer order",
		EnvVar: "PRIVATE_KEY",
	}
	artifactsFlag = cli.StringFlag{
		Name:   "artifacts",
		Usage:  "Hardhat artifacts directory",
		Value:  "artifacts",
		EnvVar: "EPICGAME_ARTIFACTS",
	}
	contractNameFlag = cli.StringFlag{
		Name:  "contract-name",
		Usage: "Name of the contract artifact to deploy",
		Value: game.DefaultContract,
	}
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "Maximum wait for each transaction confirmation (0 = no limit)",
		Value: 2 * time.Minute,
	}
	gasLimitFlag = cli.Uint64Flag{
		Name:  "gaslimit",
		Usage: "Fixed gas limit per transaction (0 = estimate)",
	}
	gasPriceFlag = cli.StringFlag{
		Name:  "gasprice",
		Usage: "Legacy gas price in wei",
	}
	gasFeeCapFlag = cli.StringFlag{
		Name:  "gasfeecap",
		Usage: "EIP-1559 max fee per gas in wei",
	}
	gasTipCapFlag = cli.StringFlag{
		Name:  "gastipcap",
		Usage: "EIP-1559 priority fee per gas in wei",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
	scenarioFlag = cli.StringFlag{
		Name:  "scenario",
		Usage: "YAML scenario file",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "Address of a deployed MyEpicGame contract",
	}
	tokenFlag = cli.StringSliceFlag{
		Name:  "token",
		Usage: "Token id to look up (repeatable)",
	}

	networkFlags = []cli.Flag{
		rpcFlag,
		keyfileFlag,
		passwordFlag,
		privateKeyFlag,
		timeoutFlag,
		gasLimitFlag,
		gasPriceFlag,
		gasFeeCapFlag,
		gasTipCapFlag,
		verbosityFlag,
	}
	deployFlags = append([]cli.Flag{artifactsFlag, contractNameFlag}, networkFlags...)
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "epicgame"
	app.Usage = "Deploy and play the MyEpicGame NFT contract"
	app.Version = "0.1.0"
	app.Action = scenarioAction("run")
	app.Flags = deployFlags
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Deploy, mint character #2 and attack the boss twice",
			Action: scenarioAction("run"),
			Flags:  deployFlags,
		},
		{
			Name:   "deploy",
			Usage:  "Deploy the game with IPFS character images",
			Action: scenarioAction("deploy"),
			Flags:  deployFlags,
		},
		{
			Name:   "mint",
			Usage:  "Deploy the boss-less game, mint character #2 and read token #1",
			Action: scenarioAction("mint"),
			Flags:  deployFlags,
		},
		{
			Name:   "play",
			Usage:  "Run a scenario from a YAML file",
			Action: scenarioAction(""),
			Flags:  append([]cli.Flag{scenarioFlag}, deployFlags...),
		},
		{
			Name:   "inspect",
			Usage:  "Print token URI and owner of tokens of a deployed contract",
			Action: inspectCmd,
			Flags:  append([]cli.Flag{contractFlag, tokenFlag}, networkFlags...),
		},
	}
	return app
}

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run executes the command line and returns the process exit code. The
// report and any error are written to stdout.
func run(args []string, stdout io.Writer) int {
	app := newApp()
	app.Writer = stdout
	if err := app.Run(args); err != nil {
		fmt.Fprintln(stdout, err)
		return game.ExitCode(err)
	}
	return 0
}

// Commands accept the same flags as the app. A flag given only before the
// command name is read from the parent context; flagString and friends
// prefer the command's own value.
func isSet(ctx *cli.Context, name string) bool {
	return ctx.IsSet(name) || ctx.GlobalIsSet(name)
}

func flagString(ctx *cli.Context, name string) string {
	if !ctx.IsSet(name) && ctx.GlobalIsSet(name) {
		return ctx.GlobalString(name)
	}
	return ctx.String(name)
}

func flagInt(ctx *cli.Context, name string) int {
	if !ctx.IsSet(name) && ctx.GlobalIsSet(name) {
		return ctx.GlobalInt(name)
	}
	return ctx.Int(name)
}

func flagUint64(ctx *cli.Context, name string) uint64 {
	if !ctx.IsSet(name) && ctx.GlobalIsSet(name) {
		return ctx.GlobalUint64(name)
	}
	return ctx.Uint64(name)
}

func flagDuration(ctx *cli.Context, name string) time.Duration {
	if !ctx.IsSet(name) && ctx.GlobalIsSet(name) {
		return ctx.GlobalDuration(name)
	}
	return ctx.Duration(name)
}

// config holds the resolved settings of one invocation.
type config struct {
	rpc       string
	artifacts string
	contract  string
	timeout   time.Duration
	gas       *game.GasPolicy
	signers   game.StaticSigners
}

func loadConfig(ctx *cli.Context) (*config, error) {
	gas, err := gasPolicy(ctx)
	if err != nil {
		return nil, err
	}
	signers, err := loadSigners(ctx)
	if err != nil {
		return nil, err
	}
	cfg := &config{
		rpc:       flagString(ctx, rpcFlag.Name),
		artifacts: flagString(ctx, artifactsFlag.Name),
		timeout:   flagDuration(ctx, timeoutFlag.Name),
		gas:       gas,
		signers:   signers,
	}
	if isSet(ctx, contractNameFlag.Name) {
		cfg.contract = flagString(ctx, contractNameFlag.Name)
	}
	return cfg, nil
}

func setupLogging(ctx *cli.Context) {
	lvl := log.Lvl(flagInt(ctx, verbosityFlag.Name))
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat(true))))
}

// scenarioAction runs the named built-in scenario, or the --scenario file
// when name is empty.
func scenarioAction(name string) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		setupLogging(ctx)

		sc, err := loadScenario(ctx, name)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		if cfg.contract != "" {
			sc.Contract = cfg.contract
		}

		bg := context.Background()
		client, facility, err := connect(bg, cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		log.Info("Running scenario", "rpc", cfg.rpc, "contract", sc.Contract,
			"calls", len(sc.Calls), "queries", len(sc.Queries))

		_, err = game.NewDriver(facility, cfg.signers, ctx.App.Writer).Run(bg, sc)
		return err
	}
}

func loadScenario(ctx *cli.Context, name string) (*game.Scenario, error) {
	if name != "" {
		return game.BuiltinScenario(name)
	}
	if !ctx.IsSet(scenarioFlag.Name) {
		return nil, fmt.Errorf("--%s flag is required", scenarioFlag.Name)
	}
	return game.LoadScenario(ctx.String(scenarioFlag.Name))
}

func inspectCmd(ctx *cli.Context) error {
	setupLogging(ctx)

	if !ctx.IsSet(contractFlag.Name) {
		return fmt.Errorf("--%s flag is required", contractFlag.Name)
	}
	var queries []game.Query
	for _, s := range ctx.StringSlice(tokenFlag.Name) {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid token id %q: %v", s, err)
		}
		queries = append(queries, game.TokenURIQuery(id), game.OwnerOfQuery(id))
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	bg := context.Background()
	client, facility, err := connect(bg, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	contract, err := facility.Attach(ctx.String(contractFlag.Name), nil)
	if err != nil {
		return err
	}
	log.Info("MyEpicGame contract info", "address", contract.Address(), "rpc", cfg.rpc)

	_, err = game.NewDriver(facility, cfg.signers, ctx.App.Writer).Inspect(bg, contract, queries)
	return err
}

// connect dials the node and builds the deployment facility for its chain.
func connect(bg context.Context, cfg *config) (*ethclient.Client, *game.EthereumFacility, error) {
	client, err := ethclient.DialContext(bg, cfg.rpc)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", game.ErrEnvironment, err)
	}
	chainID, err := client.ChainID(bg)
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("%w: no network at %s: %v", game.ErrEnvironment, cfg.rpc, err)
	}
	log.Debug("Connected to network", "rpc", cfg.rpc, "chainid", chainID)

	facility := game.NewEthereumFacility(client, chainID, cfg.artifacts, cfg.gas, cfg.timeout)
	return client, facility, nil
}

// loadSigners collects the configured accounts: private keys first, then
// the keyfile. An empty list is left for the driver to reject.
func loadSigners(ctx *cli.Context) (game.StaticSigners, error) {
	var signers game.StaticSigners
	for _, hexkey := range strings.Split(flagString(ctx, privateKeyFlag.Name), ",") {
		if strings.TrimSpace(hexkey) == "" {
			continue
		}
		signer, err := game.ParsePrivateKey(hexkey)
		if err != nil {
			return nil, err
		}
		signers = append(signers, signer)
	}
	if path := flagString(ctx, keyfileFlag.Name); path != "" {
		signer, err := game.LoadKeyfile(path, flagString(ctx, passwordFlag.Name))
		if err != nil {
			return nil, err
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

func gasPolicy(ctx *cli.Context) (*game.GasPolicy, error) {
	var prices [3]*big.Int
	for i, name := range []string{gasPriceFlag.Name, gasFeeCapFlag.Name, gasTipCapFlag.Name} {
		v, err := game.ParseWei(flagString(ctx, name))
		if err != nil {
			return nil, err
		}
		prices[i] = v
	}
	return game.NewGasPolicy(flagUint64(ctx, gasLimitFlag.Name), prices[0], prices[1], prices[2])
}
