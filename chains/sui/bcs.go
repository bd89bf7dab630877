package sui

import (
	"fmt"
	"math/big"

	"github.com/fardream/go-bcs/bcs"
)

// BCS encodings of the pure argument types the intent package takes.

func PureBytes(b []byte) []byte {
	// vectors of bytes always encode
	out, _ := bcs.Marshal(b)
	return out
}

func PureString(s string) []byte {
	out, _ := bcs.Marshal(s)
	return out
}

func PureU64(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return nil, fmt.Errorf("value %v does not fit u64", v)
	}
	return bcs.Marshal(v.Uint64())
}

func PureU128(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return nil, fmt.Errorf("value %v does not fit u128", v)
	}

	u, err := bcs.NewUint128FromBigInt(v)
	if err != nil {
		return nil, err
	}
	return bcs.Marshal(u)
}
