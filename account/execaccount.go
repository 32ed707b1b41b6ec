// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/types"
)

// 执行器子账户: 用户转到执行器地址的资产记在 (addr, execaddr) 子账户下
// Balance 为可用部分, Frozen 为执行器托管的部分

// LoadExecAccount 读取 addr 在 execaddr 下的子账户
func (acc *DB) LoadExecAccount(addr, execaddr string) *types.Account {
	value, err := acc.db.Get(acc.execAccountKey(addr, execaddr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	if err := types.Decode(value, &acc1); err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// SaveExecAccount 保存子账户
func (acc *DB) SaveExecAccount(execaddr string, acc1 *types.Account) {
	for _, kv := range acc.GetExecKVSet(execaddr, acc1) {
		if err := acc.db.Set(kv.Key, kv.Value); err != nil {
			panic(err)
		}
	}
}

// GetExecKVSet 子账户对应的 kv
func (acc *DB) GetExecKVSet(execaddr string, acc1 *types.Account) []*types.KeyValue {
	return []*types.KeyValue{{Key: acc.execAccountKey(acc1.Addr, execaddr), Value: types.Encode(acc1)}}
}

func (acc *DB) execAccountKey(addr, execaddr string) []byte {
	return []byte(string(acc.execAccountKeyPerfix) + execaddr + ":" + addr)
}

// TransferToExec 主账户转到执行器地址, 同时记入 from 在该执行器下的子账户
func (acc *DB) TransferToExec(from, execaddr string, amount int64) (*types.Receipt, error) {
	receipt, err := acc.Transfer(from, execaddr, amount)
	if err != nil {
		return nil, err
	}
	deposit, err := acc.ExecDeposit(from, execaddr, amount)
	if err != nil {
		panic(err)
	}
	return types.MergeReceipt(receipt, deposit), nil
}

// TransferWithdraw 子账户的可用余额取回到主账户
func (acc *DB) TransferWithdraw(from, execaddr string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(execaddr, from, amount); err != nil {
		return nil, err
	}
	withdraw, err := acc.ExecWithdraw(execaddr, from, amount)
	if err != nil {
		return nil, err
	}
	receipt, err := acc.Transfer(execaddr, from, amount)
	if err != nil {
		panic(err)
	}
	return types.MergeReceipt(withdraw, receipt), nil
}

// ExecDeposit 子账户可用余额增加
func (acc *DB) ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.updateExec(types.TyLogExecDeposit, addr, execaddr, amount, func(a *types.Account) bool {
		a.Balance += amount
		return true
	})
}

// ExecWithdraw 子账户可用余额减少
func (acc *DB) ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error) {
	return acc.updateExec(types.TyLogExecWithdraw, addr, execaddr, amount, func(a *types.Account) bool {
		if a.Balance < amount {
			return false
		}
		a.Balance -= amount
		return true
	})
}

// ExecFrozen 可用余额转为冻结
func (acc *DB) ExecFrozen(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.updateExec(types.TyLogExecFrozen, addr, execaddr, amount, func(a *types.Account) bool {
		if a.Balance < amount {
			alog.Error("ExecFrozen", "addr", addr, "balance", a.Balance, "amount", amount)
			return false
		}
		a.Balance -= amount
		a.Frozen += amount
		return true
	})
}

// ExecActive 冻结转为可用余额
func (acc *DB) ExecActive(addr, execaddr string, amount int64) (*types.Receipt, error) {
	return acc.updateExec(types.TyLogExecActive, addr, execaddr, amount, func(a *types.Account) bool {
		if a.Frozen < amount {
			return false
		}
		a.Balance += amount
		a.Frozen -= amount
		return true
	})
}

// updateExec 修改一个子账户, change 返回 false 表示余额不足
func (acc *DB) updateExec(ty int32, addr, execaddr string, amount int64, change func(*types.Account) bool) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadExecAccount(addr, execaddr)
	prev := types.CloneAccount(acc1)
	if !change(acc1) {
		return nil, types.ErrNoBalance
	}
	acc.SaveExecAccount(execaddr, acc1)
	r := &types.ReceiptExecAccountTransfer{ExecAddr: execaddr, Prev: prev, Current: acc1}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetExecKVSet(execaddr, acc1),
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(r)}},
	}, nil
}

// ExecTransferFrozen from 冻结的资金转到 to 的可用余额, 用于托管资金的结算
func (acc *DB) ExecTransferFrozen(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadExecAccount(from, execaddr)
	if accFrom.Frozen < amount {
		return nil, types.ErrNoBalance
	}
	accTo := acc.LoadExecAccount(to, execaddr)
	prevFrom := types.CloneAccount(accFrom)
	prevTo := types.CloneAccount(accTo)
	accFrom.Frozen -= amount
	accTo.Balance += amount
	acc.SaveExecAccount(execaddr, accFrom)
	acc.SaveExecAccount(execaddr, accTo)

	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, r := range []*types.ReceiptExecAccountTransfer{
		{ExecAddr: execaddr, Prev: prevFrom, Current: accFrom},
		{ExecAddr: execaddr, Prev: prevTo, Current: accTo},
	} {
		receipt.KV = append(receipt.KV, acc.GetExecKVSet(execaddr, r.Current)...)
		receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: types.TyLogExecTransfer, Log: types.Encode(r)})
	}
	return receipt, nil
}
