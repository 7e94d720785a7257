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

package game_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/epicgame/epicgame/game"
	gamemock "github.com/epicgame/epicgame/game/mock"
)

const (
	contractAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	ownerAddr    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	deployTx     = "0x1111111111111111111111111111111111111111111111111111111111111111"
)

type DriverTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	signers  *gamemock.MockSignerProvider
	owner    *gamemock.MockSigner
	facility *gamemock.MockFacility
	factory  *gamemock.MockFactory
	pending  *gamemock.MockPendingDeployment
	contract *gamemock.MockContract
	out      *bytes.Buffer
	driver   *game.Driver
	ctx      context.Context
}

func (s *DriverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.signers = gamemock.NewMockSignerProvider(s.ctrl)
	s.owner = gamemock.NewMockSigner(s.ctrl)
	s.facility = gamemock.NewMockFacility(s.ctrl)
	s.factory = gamemock.NewMockFactory(s.ctrl)
	s.pending = gamemock.NewMockPendingDeployment(s.ctrl)
	s.contract = gamemock.NewMockContract(s.ctrl)
	s.out = new(bytes.Buffer)
	s.driver = game.NewDriver(s.facility, s.signers, s.out)
	s.ctx = context.Background()

	s.owner.EXPECT().Address().Return(ownerAddr).AnyTimes()
	s.contract.EXPECT().Address().Return(contractAddr).AnyTimes()
}

func (s *DriverTestSuite) expectDeployment(params *game.DeployParams) {
	s.signers.EXPECT().Signers(gomock.Any()).Return([]game.Signer{s.owner}, nil)
	s.facility.EXPECT().ContractFactory(gomock.Any(), game.DefaultContract, s.owner).Return(s.factory, nil)
	s.factory.EXPECT().Deploy(gomock.Any(), params).Return(s.pending, nil)
	s.pending.EXPECT().TxHash().Return(deployTx)
	s.pending.EXPECT().WaitDeployed(gomock.Any()).Return(s.contract, nil)
}

func (s *DriverTestSuite) newTx(hash string) *gamemock.MockTransaction {
	tx := gamemock.NewMockTransaction(s.ctrl)
	tx.EXPECT().Hash().Return(hash).AnyTimes()
	return tx
}

func threeCharacters() *game.DeployParams {
	return game.NewDeployParams([]game.CharacterSpec{
		{Name: "ZORO", ImageURI: "https://i.imgur.com/TZEhCTX.png", HP: 100, AttackDamage: 100},
		{Name: "NAMI", ImageURI: "https://i.imgur.com/WVAaMPA.png", HP: 200, AttackDamage: 50},
		{Name: "USSOP", ImageURI: "https://i.imgur.com/pCMZeiM.png", HP: 300, AttackDamage: 25},
	}, &game.BossSpec{Name: "CROCODILE", ImageURI: "https://i.imgur.com/BehawOh.png", HP: 1000, AttackDamage: 50})
}

func (s *DriverTestSuite) TestRun_DeployOnly() {
	params := threeCharacters()
	s.expectDeployment(params)

	report, err := s.driver.Run(s.ctx, &game.Scenario{Contract: game.DefaultContract, Params: params, Done: true})

	s.Require().NoError(err)
	s.Equal(0, game.ExitCode(err))
	s.Equal(contractAddr, report.Address)
	s.Equal(ownerAddr, report.Deployer)
	s.Equal(deployTx, report.DeployTx)
	s.Equal(game.PhaseReported, report.Phase)
	s.Equal("Contract deployed to: "+contractAddr+"\n"+
		"Contract deployed by: "+ownerAddr+"\n"+
		"Done!\n", s.out.String())
}

func (s *DriverTestSuite) TestRun_DefaultsContractName() {
	params := threeCharacters()
	s.expectDeployment(params)

	_, err := s.driver.Run(s.ctx, &game.Scenario{Params: params})
	s.Require().NoError(err)
}

func (s *DriverTestSuite) TestRun_DoneOnlyWhenRequested() {
	params := threeCharacters()
	s.expectDeployment(params)

	_, err := s.driver.Run(s.ctx, &game.Scenario{Params: params})

	s.Require().NoError(err)
	s.Equal("Contract deployed to: "+contractAddr+"\n"+
		"Contract deployed by: "+ownerAddr+"\n", s.out.String())
}

func (s *DriverTestSuite) TestRun_MissingParams() {
	s.signers.EXPECT().Signers(gomock.Any()).Return([]game.Signer{s.owner}, nil)

	report, err := s.driver.Run(s.ctx, &game.Scenario{Contract: game.DefaultContract})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrDeployment)
	s.ErrorIs(err, game.ErrNoParams)
	s.Equal(1, game.ExitCode(err))
	s.Equal(game.PhaseSignerAcquired, report.Phase)
	s.Empty(s.out.String())
}

func (s *DriverTestSuite) TestRun_LengthMismatchIsForwarded() {
	params := threeCharacters()
	params.AttackDamages = params.AttackDamages[:2]

	s.signers.EXPECT().Signers(gomock.Any()).Return([]game.Signer{s.owner}, nil)
	s.facility.EXPECT().ContractFactory(gomock.Any(), game.DefaultContract, s.owner).Return(s.factory, nil)
	s.factory.EXPECT().Deploy(gomock.Any(), params).
		DoAndReturn(func(_ context.Context, p *game.DeployParams) (game.PendingDeployment, error) {
			s.Len(p.HPs, 3)
			s.Len(p.AttackDamages, 2)
			return nil, errors.New("execution reverted")
		})

	report, err := s.driver.Run(s.ctx, &game.Scenario{Contract: game.DefaultContract, Params: params})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrDeployment)
	s.Equal(1, game.ExitCode(err))
	s.Equal(game.PhaseSignerAcquired, report.Phase)
	s.Empty(report.Address)
	s.Empty(s.out.String())
}

func (s *DriverTestSuite) TestRun_CallsAreConfirmedInOrder() {
	params := threeCharacters()
	s.expectDeployment(params)

	mint := s.newTx("0xaa")
	first := s.newTx("0xbb")
	second := s.newTx("0xcc")
	gomock.InOrder(
		s.contract.EXPECT().MintCharacterNFT(gomock.Any(), uint64(2)).Return(mint, nil),
		mint.EXPECT().Wait(gomock.Any()).Return(nil),
		s.contract.EXPECT().AttackBoss(gomock.Any()).Return(first, nil),
		first.EXPECT().Wait(gomock.Any()).Return(nil),
		s.contract.EXPECT().AttackBoss(gomock.Any()).Return(second, nil),
		second.EXPECT().Wait(gomock.Any()).Return(nil),
	)

	report, err := s.driver.Run(s.ctx, &game.Scenario{
		Params: params,
		Calls:  []game.Call{game.MintCharacter(2), game.AttackBoss(), game.AttackBoss()},
	})

	s.Require().NoError(err)
	s.Equal([]game.CallReceipt{
		{Call: game.MintCharacter(2), TxHash: "0xaa"},
		{Call: game.AttackBoss(), TxHash: "0xbb"},
		{Call: game.AttackBoss(), TxHash: "0xcc"},
	}, report.Calls)
	s.Equal(game.PhaseReported, report.Phase)
}

func (s *DriverTestSuite) TestRun_FirstCallFailureShortCircuits() {
	params := threeCharacters()
	s.expectDeployment(params)
	s.contract.EXPECT().AttackBoss(gomock.Any()).Return(nil, errors.New("insufficient funds for gas"))

	report, err := s.driver.Run(s.ctx, &game.Scenario{
		Params: params,
		Calls:  []game.Call{game.AttackBoss(), game.AttackBoss(), game.MintCharacter(0)},
	})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrCall)
	s.Equal(1, game.ExitCode(err))
	s.Empty(report.Calls)
	s.Equal(game.PhaseDeployed, report.Phase)

	var se *game.StepError
	s.Require().ErrorAs(err, &se)
	s.Equal("attackBoss()", se.Step)
	s.Equal(game.PhaseDeployed, se.Phase)

	// The contract stays deployed, so its address was still reported.
	s.Contains(s.out.String(), "Contract deployed to: "+contractAddr)
	s.NotContains(s.out.String(), "Done!")
}

func (s *DriverTestSuite) TestRun_RevertedCallShortCircuits() {
	params := threeCharacters()
	s.expectDeployment(params)

	mint := s.newTx("0xaa")
	gomock.InOrder(
		s.contract.EXPECT().MintCharacterNFT(gomock.Any(), uint64(7)).Return(mint, nil),
		mint.EXPECT().Wait(gomock.Any()).Return(game.ErrReverted),
	)

	report, err := s.driver.Run(s.ctx, &game.Scenario{
		Params:  params,
		Calls:   []game.Call{game.MintCharacter(7), game.AttackBoss()},
		Queries: []game.Query{game.TokenURIQuery(1)},
	})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrCall)
	s.ErrorIs(err, game.ErrReverted)
	s.Equal(game.PhaseCallIssued, report.Phase)
	s.Empty(report.Queries)
}

func (s *DriverTestSuite) TestRun_ReadBackAfterCalls() {
	params := threeCharacters()
	s.expectDeployment(params)

	mint := s.newTx("0xaa")
	gomock.InOrder(
		s.contract.EXPECT().MintCharacterNFT(gomock.Any(), uint64(2)).Return(mint, nil),
		mint.EXPECT().Wait(gomock.Any()).Return(nil),
		s.contract.EXPECT().TokenURI(gomock.Any(), uint64(1)).Return("data:application/json;base64,eyJuYW1lIjoiVVNTT1AifQ==", nil),
		s.contract.EXPECT().OwnerOf(gomock.Any(), uint64(1)).Return(ownerAddr, nil),
	)

	report, err := s.driver.Run(s.ctx, &game.Scenario{
		Params:  params,
		Calls:   []game.Call{game.MintCharacter(2)},
		Queries: []game.Query{game.TokenURIQuery(1), game.OwnerOfQuery(1)},
	})

	s.Require().NoError(err)
	s.Equal([]game.QueryResult{
		{Query: game.TokenURIQuery(1), Value: "data:application/json;base64,eyJuYW1lIjoiVVNTT1AifQ=="},
		{Query: game.OwnerOfQuery(1), Value: ownerAddr},
	}, report.Queries)
	s.Contains(s.out.String(), "Token URI: data:application/json;base64,eyJuYW1lIjoiVVNTT1AifQ==\n")
	s.Contains(s.out.String(), "NFT Owner: "+ownerAddr+"\n")
}

func (s *DriverTestSuite) TestRun_QueryOfUnmintedToken() {
	params := threeCharacters()
	s.expectDeployment(params)

	mint := s.newTx("0xaa")
	gomock.InOrder(
		s.contract.EXPECT().MintCharacterNFT(gomock.Any(), uint64(0)).Return(mint, nil),
		mint.EXPECT().Wait(gomock.Any()).Return(nil),
		s.contract.EXPECT().TokenURI(gomock.Any(), uint64(1)).Return("ipfs://token-1", nil),
		s.contract.EXPECT().TokenURI(gomock.Any(), uint64(2)).Return("", errors.New("execution reverted: ERC721: invalid token ID")),
	)

	report, err := s.driver.Run(s.ctx, &game.Scenario{
		Params:  params,
		Calls:   []game.Call{game.MintCharacter(0)},
		Queries: []game.Query{game.TokenURIQuery(1), game.TokenURIQuery(2), game.OwnerOfQuery(1)},
	})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrQuery)
	s.Equal(1, game.ExitCode(err))
	s.Len(report.Queries, 1)

	var se *game.StepError
	s.Require().ErrorAs(err, &se)
	s.Equal("tokenURI(2)", se.Step)
	s.Equal(game.PhaseCallConfirmed, se.Phase)
}

func (s *DriverTestSuite) TestRun_NoSigner() {
	s.signers.EXPECT().Signers(gomock.Any()).Return(nil, nil)

	report, err := s.driver.Run(s.ctx, &game.Scenario{Params: threeCharacters()})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrEnvironment)
	s.ErrorIs(err, game.ErrNoSigner)
	s.Equal(game.PhaseStart, report.Phase)
}

func (s *DriverTestSuite) TestRun_MissingArtifactIsEnvironmentError() {
	s.signers.EXPECT().Signers(gomock.Any()).Return([]game.Signer{s.owner}, nil)
	s.facility.EXPECT().ContractFactory(gomock.Any(), "Missing", s.owner).
		Return(nil, errors.Join(game.ErrEnvironment, errors.New("artifact not found")))

	_, err := s.driver.Run(s.ctx, &game.Scenario{Contract: "Missing", Params: threeCharacters()})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrEnvironment)
	s.NotErrorIs(err, game.ErrDeployment)
}

func (s *DriverTestSuite) TestRun_ConfirmationTimeout() {
	params := threeCharacters()
	s.signers.EXPECT().Signers(gomock.Any()).Return([]game.Signer{s.owner}, nil)
	s.facility.EXPECT().ContractFactory(gomock.Any(), game.DefaultContract, s.owner).Return(s.factory, nil)
	s.factory.EXPECT().Deploy(gomock.Any(), params).Return(s.pending, nil)
	s.pending.EXPECT().TxHash().Return(deployTx)
	s.pending.EXPECT().WaitDeployed(gomock.Any()).Return(nil, context.DeadlineExceeded)

	report, err := s.driver.Run(s.ctx, &game.Scenario{Params: params, Calls: []game.Call{game.AttackBoss()}})

	s.Require().Error(err)
	s.ErrorIs(err, game.ErrDeployment)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Equal(deployTx, report.DeployTx)
	s.Equal(game.PhaseSignerAcquired, report.Phase)
}

func (s *DriverTestSuite) TestInspect() {
	s.contract.EXPECT().OwnerOf(gomock.Any(), uint64(3)).Return(ownerAddr, nil)

	results, err := s.driver.Inspect(s.ctx, s.contract, []game.Query{game.OwnerOfQuery(3)})

	s.Require().NoError(err)
	s.Equal([]game.QueryResult{{Query: game.OwnerOfQuery(3), Value: ownerAddr}}, results)
	s.Equal("NFT Owner: "+ownerAddr+"\n", s.out.String())
}

func TestDriverTestSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

// runBattle plays the battle scenario against fresh mocks.
func runBattle(t *testing.T, failAttack bool) (string, int) {
	ctrl := gomock.NewController(t)
	signers := gamemock.NewMockSignerProvider(ctrl)
	owner := gamemock.NewMockSigner(ctrl)
	facility := gamemock.NewMockFacility(ctrl)
	factory := gamemock.NewMockFactory(ctrl)
	pending := gamemock.NewMockPendingDeployment(ctrl)
	contract := gamemock.NewMockContract(ctrl)
	tx := gamemock.NewMockTransaction(ctrl)

	sc := game.BattleScenario()
	owner.EXPECT().Address().Return(ownerAddr).AnyTimes()
	contract.EXPECT().Address().Return(contractAddr).AnyTimes()
	signers.EXPECT().Signers(gomock.Any()).Return([]game.Signer{owner}, nil)
	facility.EXPECT().ContractFactory(gomock.Any(), game.DefaultContract, owner).Return(factory, nil)
	factory.EXPECT().Deploy(gomock.Any(), sc.Params).Return(pending, nil)
	pending.EXPECT().TxHash().Return(deployTx)
	pending.EXPECT().WaitDeployed(gomock.Any()).Return(contract, nil)
	tx.EXPECT().Hash().Return("0xaa").AnyTimes()
	contract.EXPECT().MintCharacterNFT(gomock.Any(), uint64(2)).Return(tx, nil)
	if failAttack {
		tx.EXPECT().Wait(gomock.Any()).Return(nil)
		contract.EXPECT().AttackBoss(gomock.Any()).Return(nil, errors.New("boss is already dead"))
	} else {
		tx.EXPECT().Wait(gomock.Any()).Return(nil).Times(3)
		contract.EXPECT().AttackBoss(gomock.Any()).Return(tx, nil).Times(2)
	}

	var out bytes.Buffer
	_, err := game.NewDriver(facility, signers, &out).Run(context.Background(), sc)
	return out.String(), game.ExitCode(err)
}

func TestRun_Deterministic(t *testing.T) {
	for _, fail := range []bool{false, true} {
		out1, code1 := runBattle(t, fail)
		out2, code2 := runBattle(t, fail)
		if out1 != out2 || code1 != code2 {
			t.Fatalf("fail=%v: runs differ: %q (%d) vs %q (%d)", fail, out1, code1, out2, code2)
		}
	}
}
