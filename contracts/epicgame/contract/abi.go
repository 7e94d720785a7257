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

// Package contract contains the ABI of the MyEpicGame contract.
// Regenerate from the Hardhat build with:
//
//	jq .abi artifacts/contracts/MyEpicGame.sol/MyEpicGame.json
package contract

// MyEpicGameABI is the ABI of the MyEpicGame contract.
const MyEpicGameABI = `[
	{
		"inputs": [
			{"internalType": "string[]",  "name": "characterNames",     "type": "string[]"},
			{"internalType": "string[]",  "name": "characterImageURIs", "type": "string[]"},
			{"internalType": "uint256[]", "name": "characterHp",        "type": "uint256[]"},
			{"internalType": "uint256[]", "name": "characterAttackDmg", "type": "uint256[]"},
			{"internalType": "string",    "name": "bossName",           "type": "string"},
			{"internalType": "string",    "name": "bossImageURI",       "type": "string"},
			{"internalType": "uint256",   "name": "bossHp",             "type": "uint256"},
			{"internalType": "uint256",   "name": "bossAttackDamage",   "type": "uint256"}
		],
		"stateMutability": "nonpayable",
		"type": "constructor"
	},
	{
		"inputs": [
			{"internalType": "uint256", "name": "_characterIndex", "type": "uint256"}
		],
		"name": "mintCharacterNFT",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "attackBoss",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "uint256", "name": "_tokenId", "type": "uint256"}
		],
		"name": "tokenURI",
		"outputs": [
			{"internalType": "string", "name": "", "type": "string"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "uint256", "name": "tokenId", "type": "uint256"}
		],
		"name": "ownerOf",
		"outputs": [
			{"internalType": "address", "name": "", "type": "address"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": false, "internalType": "address", "name": "sender",         "type": "address"},
			{"indexed": false, "internalType": "uint256", "name": "tokenId",        "type": "uint256"},
			{"indexed": false, "internalType": "uint256", "name": "characterIndex", "type": "uint256"}
		],
		"name": "CharacterNFTMinted",
		"type": "event"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": false, "internalType": "uint256", "name": "newBossHp",   "type": "uint256"},
			{"indexed": false, "internalType": "uint256", "name": "newPlayerHp", "type": "uint256"}
		],
		"name": "AttackComplete",
		"type": "event"
	}
]`
