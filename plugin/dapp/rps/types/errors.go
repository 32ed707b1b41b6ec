// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

// 在错误的阶段调用
var (
	ErrRoundNotFound    = types.NewError(types.ErrProtocolViolation, "ErrRoundNotFound")
	ErrRoundClosed      = types.NewError(types.ErrProtocolViolation, "ErrRoundClosed")
	ErrRoundExpired     = types.NewError(types.ErrProtocolViolation, "ErrRoundExpired")
	ErrRoundNotExpired  = types.NewError(types.ErrProtocolViolation, "ErrRoundNotExpired")
	ErrAlreadyCommitted = types.NewError(types.ErrProtocolViolation, "You've already played. Wait for the other player.")
	ErrCapacityExceeded = types.NewError(types.ErrProtocolViolation, "Can't accept more than 2 players")
	ErrNotCommittedYet  = types.NewError(types.ErrProtocolViolation, "You should commit a move first")
	ErrOpponentNotReady = types.NewError(types.ErrProtocolViolation, "Wait for the other player to commit their move.")
	ErrAlreadyRevealed  = types.NewError(types.ErrProtocolViolation, "ErrAlreadyRevealed")
	ErrNotParticipant   = types.NewError(types.ErrProtocolViolation, "ErrNotParticipant")
	ErrNoPendingPayout  = types.NewError(types.ErrProtocolViolation, "ErrNoPendingPayout")
)

// 参数校验失败
var (
	ErrInvalidMove        = types.NewError(types.ErrValidation, "Your move is not valid! Only 1, 2, or 3")
	ErrInvalidCommitment  = types.NewError(types.ErrValidation, "ErrInvalidCommitment")
	ErrCommitmentMismatch = types.NewError(types.ErrValidation, "ErrCommitmentMismatch")
	ErrRoundDuration      = types.NewError(types.ErrValidation, "ErrRoundDuration")
	ErrBetAmount          = types.NewError(types.ErrValidation, "ErrBetAmount")
	ErrTimeoutPolicy      = types.NewError(types.ErrValidation, "ErrTimeoutPolicy")
)

// 押金或者转账失败
var (
	ErrInsufficientStake = types.NewError(types.ErrFunds, "ErrInsufficientStake")
	ErrValueNotAccepted  = types.NewError(types.ErrFunds, "ErrValueNotAccepted")
)
