package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var IntentABI, _ = abi.JSON(strings.NewReader(`[
  {
    "name": "swap",
    "type": "function",
    "stateMutability": "payable",
    "inputs": [
      {
        "name": "order",
        "type": "tuple",
        "internalType": "struct Types.SwapOrder",
        "components": [
          {"name": "id", "type": "uint256"},
          {"name": "emitter", "type": "address"},
          {"name": "srcNID", "type": "string"},
          {"name": "dstNID", "type": "string"},
          {"name": "creator", "type": "string"},
          {"name": "destinationAddress", "type": "string"},
          {"name": "token", "type": "address"},
          {"name": "amount", "type": "uint256"},
          {"name": "toToken", "type": "string"},
          {"name": "toAmount", "type": "uint256"},
          {"name": "data", "type": "bytes"}
        ]
      }
    ],
    "outputs": []
  },
  {
    "name": "cancel",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "id", "type": "uint256"}
    ],
    "outputs": []
  },
  {
    "name": "SwapIntent",
    "type": "event",
    "anonymous": false,
    "inputs": [
      {"name": "id", "type": "uint256", "indexed": true},
      {"name": "emitter", "type": "address", "indexed": false},
      {"name": "srcNID", "type": "string", "indexed": false},
      {"name": "dstNID", "type": "string", "indexed": false},
      {"name": "creator", "type": "string", "indexed": false},
      {"name": "destinationAddress", "type": "string", "indexed": false},
      {"name": "token", "type": "address", "indexed": false},
      {"name": "amount", "type": "uint256", "indexed": false},
      {"name": "toToken", "type": "string", "indexed": false},
      {"name": "toAmount", "type": "uint256", "indexed": false},
      {"name": "data", "type": "bytes", "indexed": false}
    ]
  }
]`))
