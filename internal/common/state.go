package common

import (
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type AccountState struct {
	Address     gethCommon.Address `json:"address"`
	Balance     *uint256.Int       `json:"balance"`
	Nonce       uint64             `json:"nonce"`
	CodePresent bool               `json:"code_present"`
}

// StorageSlot is only materialised for slots the store reports as found.
type StorageSlot struct {
	Key   gethCommon.Hash `json:"key"`
	Value gethCommon.Hash `json:"value"`
}
