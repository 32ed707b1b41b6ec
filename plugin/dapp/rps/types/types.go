// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rps 执行器的交易, 状态以及错误定义
package types

import (
	"bytes"
	"reflect"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
)

var (
	actionName = map[string]int32{
		"Create":   RpsActionCreate,
		"Commit":   RpsActionCommit,
		"Reveal":   RpsActionReveal,
		"Claim":    RpsActionClaim,
		"Withdraw": RpsActionWithdraw,
	}
	logmap = map[int64]*types.LogInfo{
		TyLogRpsCreate:        {Ty: reflect.TypeOf(ReceiptRps{}), Name: "LogRpsCreate"},
		TyLogRpsCommit:        {Ty: reflect.TypeOf(ReceiptRps{}), Name: "LogRpsCommit"},
		TyLogRpsReveal:        {Ty: reflect.TypeOf(ReceiptRps{}), Name: "LogRpsReveal"},
		TyLogRpsResolve:       {Ty: reflect.TypeOf(ReceiptRps{}), Name: "LogRpsResolve"},
		TyLogRpsExpire:        {Ty: reflect.TypeOf(ReceiptRps{}), Name: "LogRpsExpire"},
		TyLogRpsPendingPayout: {Ty: reflect.TypeOf(PendingPayout{}), Name: "LogRpsPendingPayout"},
		TyLogRpsWithdraw:      {Ty: reflect.TypeOf(ReceiptRps{}), Name: "LogRpsWithdraw"},
	}
)

func init() {
	types.RegistorExecutor(RpsX, NewType())
}

// RpsType rps 执行器类型
type RpsType struct {
	types.ExecTypeBase
}

// NewType new rps type
func NewType() *RpsType {
	t := &RpsType{}
	t.SetChild(t)
	return t
}

// GetName 执行器名称
func (t *RpsType) GetName() string {
	return RpsX
}

// GetPayload 返回 RpsAction
func (t *RpsType) GetPayload() types.Message {
	return &RpsAction{}
}

// GetTypeMap action 名称和类型
func (t *RpsType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap 日志类型
func (t *RpsType) GetLogMap() map[int64]*types.LogInfo {
	return logmap
}

// Commitment 承诺哈希 keccak256(uint8(move) || salt), 和以太坊上的 abi.encodePacked 一致
func Commitment(move int32, salt string) []byte {
	return common.Keccak256([]byte{uint8(move)}, []byte(salt))
}

// CheckCommitment 校验公开的出拳和盐是否匹配承诺
func CheckCommitment(commitment []byte, move int32, salt string) bool {
	return bytes.Equal(commitment, Commitment(move, salt))
}

// NewCreate 创建游戏
func NewCreate(duration, bet int64, asset string, policy int32) *RpsAction {
	return &RpsAction{Ty: RpsActionCreate, Create: &RpsCreate{
		RoundDuration: duration,
		BetAmount:     bet,
		StakeAsset:    asset,
		TimeoutPolicy: policy,
	}}
}

// NewCommit 提交承诺
func NewCommit(roundID string, commitment []byte) *RpsAction {
	return &RpsAction{Ty: RpsActionCommit, Commit: &RpsCommit{RoundID: roundID, Commitment: commitment}}
}

// NewReveal 公开出拳
func NewReveal(roundID string, move int32, salt string) *RpsAction {
	return &RpsAction{Ty: RpsActionReveal, Reveal: &RpsReveal{RoundID: roundID, Move: move, Salt: salt}}
}

// NewClaim 超时结束
func NewClaim(roundID string) *RpsAction {
	return &RpsAction{Ty: RpsActionClaim, Claim: &RpsClaim{RoundID: roundID}}
}

// NewWithdraw 领取待付款
func NewWithdraw(roundID string) *RpsAction {
	return &RpsAction{Ty: RpsActionWithdraw, Withdraw: &RpsWithdraw{RoundID: roundID}}
}
