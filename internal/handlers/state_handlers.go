package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/chainscan/api"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

// GetAccount reads the latest state of an account. With ?slots=N the first N storage slots
// are read from the same snapshot, up to Limits.MaxStateSlots.
func (h *Handler) GetAccount(c *gin.Context) {
	addr, err := common.ParseAddress(c.Param("address"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	params, err := api.ParseQueryParams(c.Request.URL.Query())
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	if params.Slots > 0 {
		report, err := h.db.StateOf(addr, min(params.Slots, h.limits.MaxStateSlots))
		if err != nil {
			api.ErrorHandler(c, err)
			return
		}
		if report.Account == nil {
			api.NotFoundErrorHandler(c, fmt.Sprintf("account %s not found", addr.Hex()))
			return
		}
		api.OK(c, report)
		return
	}

	account, err := h.db.GetAccount(addr)
	if err != nil {
		api.ErrorHandler(c, err)
		return
	}
	if account == nil {
		api.NotFoundErrorHandler(c, fmt.Sprintf("account %s not found", addr.Hex()))
		return
	}
	api.OK(c, account)
}

func (h *Handler) GetStorage(c *gin.Context) {
	addr, err := common.ParseAddress(c.Param("address"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	slot, err := common.ParseStorageSlot(c.Param("slot"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	value, err := h.db.GetStorage(addr, slot)
	if err != nil {
		api.ErrorHandler(c, err)
		return
	}
	if value == nil {
		api.NotFoundErrorHandler(c, fmt.Sprintf("storage slot %s of %s not found", slot.Hex(), addr.Hex()))
		return
	}
	api.OK(c, value)
}
