// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

var (
	// ErrTokenNotExist error token symbol not exist
	ErrTokenNotExist = types.NewError(types.ErrValidation, "ErrTokenNotExist")
	// ErrTokenExist error token symbol exist already
	ErrTokenExist = types.NewError(types.ErrValidation, "ErrTokenSymbolExistAlready")
	// ErrTokenSymbol error token symbol, only upper case letters and digits
	ErrTokenSymbol = types.NewError(types.ErrValidation, "ErrTokenSymbol")
	// ErrTokenOwner only the token owner can do this
	ErrTokenOwner = types.NewError(types.ErrProtocolViolation, "ErrTokenOwner")
	// ErrTokenFrozen the account is frozen by the token owner
	ErrTokenFrozen = types.NewError(types.ErrFunds, "ErrTokenAccountFrozen")
	// ErrInsufficientAllowance spender allowance is not enough
	ErrInsufficientAllowance = types.NewError(types.ErrFunds, "ErrInsufficientAllowance")
)
