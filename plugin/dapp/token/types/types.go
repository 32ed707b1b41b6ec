// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types token 执行器的交易以及状态定义
package types

import (
	"reflect"

	"github.com/33cn/rps/types"
)

var (
	actionName = map[string]int32{
		"Create":       TokenActionCreate,
		"Transfer":     TokenActionTransfer,
		"Approve":      TokenActionApprove,
		"TransferFrom": TokenActionTransferFrom,
		"Freeze":       TokenActionFreeze,
	}
	logmap = map[int64]*types.LogInfo{
		TyLogTokenCreate:  {Ty: reflect.TypeOf(ReceiptTokenCreate{}), Name: "LogTokenCreate"},
		TyLogTokenApprove: {Ty: reflect.TypeOf(ReceiptTokenApprove{}), Name: "LogTokenApprove"},
		TyLogTokenFreeze:  {Ty: reflect.TypeOf(ReceiptTokenFreeze{}), Name: "LogTokenFreeze"},
	}
)

func init() {
	types.RegistorExecutor(TokenX, NewType())
}

// TokenType token 执行器类型
type TokenType struct {
	types.ExecTypeBase
}

// NewType new token type
func NewType() *TokenType {
	t := &TokenType{}
	t.SetChild(t)
	return t
}

// GetName 执行器名称
func (t *TokenType) GetName() string {
	return TokenX
}

// GetPayload 返回 TokenAction
func (t *TokenType) GetPayload() types.Message {
	return &TokenAction{}
}

// GetTypeMap action 名称和类型
func (t *TokenType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 日志类型
func (t *TokenType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}

// ValidSymbol 只允许大写字母和数字
func ValidSymbol(symbol string) bool {
	if len(symbol) < SymbolMinLen || len(symbol) > SymbolMaxLen {
		return false
	}
	for _, c := range symbol {
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// NewCreate 创建 token
func NewCreate(symbol, name string, total int64) *TokenAction {
	return &TokenAction{Ty: TokenActionCreate, Create: &TokenCreate{Symbol: symbol, Name: name, Total: total}}
}

// NewTransfer token 转账
func NewTransfer(symbol, to string, amount int64) *TokenAction {
	return &TokenAction{Ty: TokenActionTransfer, Transfer: &TokenTransfer{Symbol: symbol, To: to, Amount: amount}}
}

// NewApprove 授权 spender 使用 amount
func NewApprove(symbol, spender string, amount int64) *TokenAction {
	return &TokenAction{Ty: TokenActionApprove, Approve: &TokenApprove{Symbol: symbol, Spender: spender, Amount: amount}}
}

// NewTransferFrom spender 从 from 转给 to
func NewTransferFrom(symbol, from, to string, amount int64) *TokenAction {
	return &TokenAction{Ty: TokenActionTransferFrom, TransferFrom: &TokenTransferFrom{Symbol: symbol, From: from, To: to, Amount: amount}}
}

// NewFreeze 冻结或者解冻账户
func NewFreeze(symbol, addr string, frozen bool) *TokenAction {
	return &TokenAction{Ty: TokenActionFreeze, Freeze: &TokenFreeze{Symbol: symbol, Addr: addr, Frozen: frozen}}
}
