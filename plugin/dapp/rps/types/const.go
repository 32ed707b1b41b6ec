// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RpsX 执行器名称
const RpsX = "rps"

// action
const (
	RpsActionCreate   = 1
	RpsActionCommit   = 2
	RpsActionReveal   = 3
	RpsActionClaim    = 4
	RpsActionWithdraw = 5
)

// log
const (
	TyLogRpsCreate        = 801
	TyLogRpsCommit        = 802
	TyLogRpsReveal        = 803
	TyLogRpsResolve       = 804
	TyLogRpsExpire        = 805
	TyLogRpsPendingPayout = 806
	TyLogRpsWithdraw      = 807
)

// Move 出拳
const (
	MoveNone     = int32(0)
	MoveRock     = int32(1)
	MovePaper    = int32(2)
	MoveScissors = int32(3)
)

// 玩家状态
const (
	StatusNotJoined = int32(0)
	StatusCommitted = int32(1)
	StatusRevealed  = int32(2)
)

// 一局游戏的阶段
const (
	PhaseEmpty         = int32(0)
	PhaseOneCommitted  = int32(1)
	PhaseBothCommitted = int32(2)
	PhaseOneRevealed   = int32(3)
	PhaseResolved      = int32(4)
	PhaseExpired       = int32(5)
)

// 结果
const (
	OutcomeNone        = int32(0)
	OutcomePlayerAWins = int32(1)
	OutcomePlayerBWins = int32(2)
	OutcomeTie         = int32(3)
)

// 超时处理策略, 0 表示使用配置中的默认值
const (
	PolicyDefault = int32(0)
	PolicyForfeit = int32(1)
	PolicyRefund  = int32(2)
)

// MaxPlayers 每局最多两个玩家
const MaxPlayers = 2

// CommitmentLen 承诺哈希的长度
const CommitmentLen = 32

// 查询
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

var moveName = map[int32]string{
	MoveNone:     "none",
	MoveRock:     "rock",
	MovePaper:    "paper",
	MoveScissors: "scissors",
}

var phaseName = map[int32]string{
	PhaseEmpty:         "Empty",
	PhaseOneCommitted:  "OneCommitted",
	PhaseBothCommitted: "BothCommitted",
	PhaseOneRevealed:   "OneRevealed",
	PhaseResolved:      "Resolved",
	PhaseExpired:       "Expired",
}

var policyName = map[int32]string{
	PolicyForfeit: "forfeit",
	PolicyRefund:  "refund",
}

// MoveName 出拳名称
func MoveName(move int32) string {
	if name, ok := moveName[move]; ok {
		return name
	}
	return "unknown"
}

// ParseMove 解析出拳, 支持数字以及名称
func ParseMove(s string) int32 {
	for move, name := range moveName {
		if name == s && move != MoveNone {
			return move
		}
	}
	switch s {
	case "1":
		return MoveRock
	case "2":
		return MovePaper
	case "3":
		return MoveScissors
	}
	return MoveNone
}

// ValidMove 只有 1, 2, 3 是合法的出拳
func ValidMove(move int32) bool {
	return move == MoveRock || move == MovePaper || move == MoveScissors
}

// PhaseName 阶段名称
func PhaseName(phase int32) string {
	if name, ok := phaseName[phase]; ok {
		return name
	}
	return "unknown"
}

// ResolutionState 由阶段推导出的结算状态
func ResolutionState(phase int32) string {
	switch phase {
	case PhaseEmpty, PhaseOneCommitted:
		return "Open"
	case PhaseBothCommitted, PhaseOneRevealed:
		return "AwaitingReveal"
	case PhaseResolved:
		return "Resolved"
	case PhaseExpired:
		return "Expired"
	}
	return "unknown"
}

// IsClosed 结算或者超时后不再接受任何操作
func IsClosed(phase int32) bool {
	return phase == PhaseResolved || phase == PhaseExpired
}

// PolicyName 策略名称
func PolicyName(policy int32) string {
	if name, ok := policyName[policy]; ok {
		return name
	}
	return "default"
}

// ParsePolicy 解析策略名称, 空字符串表示默认
func ParsePolicy(s string) (int32, error) {
	switch s {
	case "":
		return PolicyDefault, nil
	case "forfeit":
		return PolicyForfeit, nil
	case "refund":
		return PolicyRefund, nil
	}
	return PolicyDefault, ErrTimeoutPolicy
}
