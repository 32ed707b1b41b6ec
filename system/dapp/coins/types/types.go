// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

// action 类型
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
	CoinsActionWithdraw = 3
)

var (
	// CoinsX 执行器名称
	CoinsX = types.CoinsX
	// ExecerCoins coins 执行器
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Withdraw": CoinsActionWithdraw,
		"Genesis":  CoinsActionGenesis,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType coins 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new coins type
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName 执行器名称
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload 返回 CoinsAction
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetTypeMap action 名称和类型
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// NewTransfer 构造转账 action
func NewTransfer(to string, amount int64, note string) *CoinsAction {
	return &CoinsAction{
		Ty:       CoinsActionTransfer,
		Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note},
	}
}

// NewWithdraw 构造从执行器取款 action
func NewWithdraw(execName string, amount int64) *CoinsAction {
	return &CoinsAction{
		Ty:       CoinsActionWithdraw,
		Withdraw: &CoinsWithdraw{ExecName: execName, Amount: amount},
	}
}

// NewGenesis 构造创世 action
func NewGenesis(to string, amount int64) *CoinsAction {
	return &CoinsAction{
		Ty:      CoinsActionGenesis,
		Genesis: &CoinsGenesis{To: to, Amount: amount},
	}
}
