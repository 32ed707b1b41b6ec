// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// TokenX 执行器名称
const TokenX = "token"

// action for token
const (
	TokenActionCreate       = 1
	TokenActionTransfer     = 2
	TokenActionApprove      = 3
	TokenActionTransferFrom = 4
	TokenActionFreeze       = 5
)

// log for token
const (
	TyLogTokenCreate  = 211
	TyLogTokenApprove = 212
	TyLogTokenFreeze  = 213
)

// 符号长度限制
const (
	SymbolMinLen = 1
	SymbolMaxLen = 16
)
