// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/account"
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	tokenexec "github.com/33cn/rps/plugin/dapp/token/executor"
	"github.com/33cn/rps/types"
)

// StakeLedger 押金账本, 每局游戏根据 StakeAsset 选择一个实现
// Release 失败时不能留下任何写入
type StakeLedger interface {
	Asset() string
	Escrow(from string, amount int64) (*types.Receipt, error)
	Release(from, to string, amount int64) (*types.Receipt, error)
}

// newLedger 测试中可以替换
var newLedger = loadLedger

func loadLedger(a *action, asset string) (StakeLedger, error) {
	if asset == "" {
		return &coinsLedger{acc: a.coinsAccount, execaddr: a.execaddr, attached: a.amount}, nil
	}
	tokendb, err := tokenexec.NewTokenDB(a.db, asset)
	if err != nil {
		return nil, err
	}
	return &tokenLedger{token: tokendb, execaddr: a.execaddr, attached: a.amount}, nil
}

// coinsLedger 原生币押金, 交易附带的原生币已经由执行环境转入玩家在 rps 下的子账户
type coinsLedger struct {
	acc      *account.DB
	execaddr string
	attached int64
}

func (l *coinsLedger) Asset() string {
	return types.BTY
}

// Escrow 附带的金额必须正好等于押金, 然后冻结
func (l *coinsLedger) Escrow(from string, amount int64) (*types.Receipt, error) {
	if l.attached != amount {
		return nil, rpsty.ErrInsufficientStake
	}
	return l.acc.ExecFrozen(from, l.execaddr, amount)
}

// Release 解冻或者把冻结的押金转给 to, 再取回到 to 的主账户
func (l *coinsLedger) Release(from, to string, amount int64) (*types.Receipt, error) {
	if l.acc.LoadExecAccount(from, l.execaddr).GetFrozen() < amount {
		return nil, types.ErrNoBalance
	}
	if err := l.acc.CheckTransfer(l.execaddr, to, amount); err != nil {
		return nil, err
	}
	var receipt *types.Receipt
	var err error
	if from == to {
		receipt, err = l.acc.ExecActive(from, l.execaddr, amount)
	} else {
		receipt, err = l.acc.ExecTransferFrozen(from, to, l.execaddr, amount)
	}
	if err != nil {
		return nil, err
	}
	receipt2, err := l.acc.TransferWithdraw(to, l.execaddr, amount)
	if err != nil {
		//前面已经检查过
		panic(err)
	}
	return types.MergeReceipt(receipt, receipt2), nil
}

// tokenLedger token 押金, 玩家需要先授权 rps 执行器地址
type tokenLedger struct {
	token    *tokenexec.TokenDB
	execaddr string
	attached int64
}

func (l *tokenLedger) Asset() string {
	return l.token.Symbol()
}

func (l *tokenLedger) Escrow(from string, amount int64) (*types.Receipt, error) {
	if l.attached != 0 {
		return nil, rpsty.ErrValueNotAccepted
	}
	if l.token.BalanceOf(from) < amount || l.token.Allowance(from, l.execaddr) < amount {
		return nil, rpsty.ErrInsufficientStake
	}
	return l.token.TransferFrom(l.execaddr, from, l.execaddr, amount)
}

// Release 押金由执行器地址持有, from 只用于记录
func (l *tokenLedger) Release(from, to string, amount int64) (*types.Receipt, error) {
	return l.token.Transfer(l.execaddr, to, amount)
}
