package common

import (
	"math/big"
	"strconv"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

func ParseBlockNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	var (
		n   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = hexutil.DecodeUint64(strings.ToLower(s))
	} else {
		n, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, NewInvalidArgumentError("parse block number", "%q is not a block number", s)
	}
	return n, nil
}

func ParseAddress(s string) (gethCommon.Address, error) {
	s = strings.TrimSpace(s)
	if !gethCommon.IsHexAddress(s) {
		return gethCommon.Address{}, NewInvalidArgumentError("parse address", "%q is not a 20-byte hex address", s)
	}
	return gethCommon.HexToAddress(s), nil
}

func ParseHash(s string) (gethCommon.Hash, error) {
	s = strings.TrimSpace(s)
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != gethCommon.HashLength {
		return gethCommon.Hash{}, NewInvalidArgumentError("parse hash", "%q is not a 32-byte hex hash", s)
	}
	return gethCommon.BytesToHash(b), nil
}

// ParseStorageSlot accepts a 32-byte hex key or a decimal/hex slot index.
func ParseStorageSlot(s string) (gethCommon.Hash, error) {
	s = strings.TrimSpace(s)
	if h, err := ParseHash(s); err == nil {
		return h, nil
	}
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok || b.Sign() < 0 {
		return gethCommon.Hash{}, NewInvalidArgumentError("parse storage slot", "%q is not a storage slot", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return gethCommon.Hash{}, NewInvalidArgumentError("parse storage slot", "%q is not a storage slot", s)
	}
	return gethCommon.Hash(v.Bytes32()), nil
}
