package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stabilitydao/host/internal/host"
	"github.com/stabilitydao/host/internal/validation"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{host.ErrDAONotFound, http.StatusNotFound},
		{host.ErrFundingNotFound, http.StatusNotFound},
		{host.ErrProposalNotFound, http.StatusNotFound},

		{host.ErrNotOwner, http.StatusForbidden},

		{host.ErrAlreadyReceived, http.StatusConflict},
		{host.ErrForeverLive, http.StatusConflict},
		{host.ErrSolveTasksFirst, http.StatusConflict},
		{host.ErrWaitFundingStart, http.StatusConflict},
		{host.ErrWaitFundingEnd, http.StatusConflict},
		{host.ErrTooLateSetupFunding, http.StatusConflict},
		{host.ErrWaitVestingStart, http.StatusConflict},
		{host.ErrWaitVestingEnd, http.StatusConflict},
		{host.ErrNotFundingPhase, http.StatusConflict},
		{host.ErrRaiseMaxExceeded, http.StatusConflict},
		{host.ErrTimeBackwards, http.StatusConflict},

		{host.ErrSymbolNotUnique, http.StatusBadRequest},
		{host.ErrNeedFunding, http.StatusBadRequest},
		{validation.ErrSingleBuilderActivity, http.StatusBadRequest},
		{validation.ErrTotalAllocationTooHigh, http.StatusBadRequest},
		{validation.ErrIncorrectVestingStart, http.StatusBadRequest},

		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, statusOf(tc.err), tc.err.Error())
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	// 引擎返回的错误总是包装过的哨兵错误
	wrapped := fmt.Errorf("%w: seed of TST", host.ErrWaitFundingStart)
	assert.Equal(t, http.StatusConflict, statusOf(wrapped))

	doubleWrapped := fmt.Errorf("update failed: %w", fmt.Errorf("%w: 21", host.ErrVePeriod))
	assert.Equal(t, http.StatusBadRequest, statusOf(doubleWrapped))
}
