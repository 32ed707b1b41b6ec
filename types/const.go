// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

const (
	// Coin 1个币对应的最小单位
	Coin int64 = 1e8
	// MaxCoin 最大币数量
	MaxCoin int64 = 1e17
	// MaxTxsPerBlock 每个区块最多的交易数, 用于计算本地索引
	MaxTxsPerBlock = 100000
	// TokenPrecision token 的精度
	TokenPrecision int64 = 1e8
)

// 执行结果
const (
	// ExecErr 执行失败, 不打包
	ExecErr = 0
	// ExecPack 打包但是执行失败
	ExecPack = 1
	// ExecOk 执行成功
	ExecOk = 2
)

// 系统日志类型
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//coins
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

// 本地数据库查询方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

// 执行器名称
const (
	CoinsX = "coins"
	// BTY 原生币符号
	BTY = "bty"
)
