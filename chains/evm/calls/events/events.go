// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	SwapIntentSig EventSig = "SwapIntent(uint256,address,string,string,string,string,address,uint256,string,uint256,bytes)"
)

// SwapIntent holds the non-indexed fields of a created order
type SwapIntent struct {
	Emitter            common.Address
	SrcNID             string
	DstNID             string
	Creator            string
	DestinationAddress string
	Token              common.Address
	Amount             *big.Int
	ToToken            string
	ToAmount           *big.Int
	Data               []byte
}
