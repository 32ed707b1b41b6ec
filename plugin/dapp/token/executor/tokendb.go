// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/types"
)

func calcTokenKey(symbol string) []byte {
	return []byte(fmt.Sprintf("mavl-token-info-%s", symbol))
}

func calcAllowanceKey(symbol, owner, spender string) []byte {
	return []byte(fmt.Sprintf("mavl-token-%s-allowance-%s:%s", symbol, owner, spender))
}

func calcFreezeKey(symbol, addr string) []byte {
	return []byte(fmt.Sprintf("mavl-token-%s-freeze-%s", symbol, addr))
}

// TokenDB 一个 token 的账户, 授权以及冻结状态. 其他执行器通过它调用 token
type TokenDB struct {
	db   dbm.KV
	info *tokenty.TokenInfo
	acc  *account.DB
}

// NewTokenDB 加载已经存在的 token
func NewTokenDB(db dbm.KV, symbol string) (*TokenDB, error) {
	value, err := db.Get(calcTokenKey(symbol))
	if err != nil {
		return nil, tokenty.ErrTokenNotExist
	}
	var info tokenty.TokenInfo
	if err := types.Decode(value, &info); err != nil {
		return nil, err
	}
	acc, err := account.NewAccountDB(tokenty.TokenX, symbol, db)
	if err != nil {
		return nil, err
	}
	return &TokenDB{db: db, info: &info, acc: acc}, nil
}

// createToken 保存 token 信息, 创建者持有全部发行量
func createToken(db dbm.KV, info *tokenty.TokenInfo) (*types.Receipt, error) {
	if !tokenty.ValidSymbol(info.Symbol) {
		return nil, tokenty.ErrTokenSymbol
	}
	if _, err := db.Get(calcTokenKey(info.Symbol)); err == nil {
		return nil, tokenty.ErrTokenExist
	}
	acc, err := account.NewAccountDB(tokenty.TokenX, info.Symbol, db)
	if err != nil {
		return nil, err
	}
	receipt, err := acc.GenesisInit(info.Owner, info.Total)
	if err != nil {
		return nil, err
	}
	kv := &types.KeyValue{Key: calcTokenKey(info.Symbol), Value: types.Encode(info)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	log := &types.ReceiptLog{
		Ty:  tokenty.TyLogTokenCreate,
		Log: types.Encode(&tokenty.ReceiptTokenCreate{Symbol: info.Symbol, Owner: info.Owner, Total: info.Total}),
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, log)
	return receipt, nil
}

// Info token 信息
func (t *TokenDB) Info() *tokenty.TokenInfo {
	return t.info
}

// Symbol token 符号
func (t *TokenDB) Symbol() string {
	return t.info.Symbol
}

// BalanceOf 账户余额
func (t *TokenDB) BalanceOf(addr string) int64 {
	return t.acc.LoadAccount(addr).Balance
}

// Allowance owner 授权给 spender 的额度
func (t *TokenDB) Allowance(owner, spender string) int64 {
	value, err := t.db.Get(calcAllowanceKey(t.info.Symbol, owner, spender))
	if err != nil {
		return 0
	}
	var allowance types.Int64
	if err := types.Decode(value, &allowance); err != nil {
		panic(err)
	}
	return allowance.Data
}

// IsFrozen 账户是否被冻结
func (t *TokenDB) IsFrozen(addr string) bool {
	_, err := t.db.Get(calcFreezeKey(t.info.Symbol, addr))
	return err == nil
}

func (t *TokenDB) checkFrozen(addrs ...string) error {
	for _, addr := range addrs {
		if t.IsFrozen(addr) {
			tokenlog.Debug("account frozen", "symbol", t.info.Symbol, "addr", addr)
			return tokenty.ErrTokenFrozen
		}
	}
	return nil
}

// Approve 设置授权额度, 覆盖原来的额度
func (t *TokenDB) Approve(owner, spender string, amount int64) (*types.Receipt, error) {
	if amount < 0 || amount >= types.MaxCoin {
		return nil, types.ErrAmount
	}
	if owner == spender {
		return nil, types.ErrSendSameToRecv
	}
	prev := t.Allowance(owner, spender)
	kv := t.setAllowance(owner, spender, amount)
	log := &types.ReceiptLog{
		Ty: tokenty.TyLogTokenApprove,
		Log: types.Encode(&tokenty.ReceiptTokenApprove{
			Symbol:  t.info.Symbol,
			Owner:   owner,
			Spender: spender,
			Prev:    prev,
			Current: amount,
		}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}, nil
}

func (t *TokenDB) setAllowance(owner, spender string, amount int64) *types.KeyValue {
	kv := &types.KeyValue{Key: calcAllowanceKey(t.info.Symbol, owner, spender)}
	if amount > 0 {
		kv.Value = types.Encode(&types.Int64{Data: amount})
	}
	if err := t.db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

// Transfer 转账, 双方都不能是冻结账户
func (t *TokenDB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := t.checkFrozen(from, to); err != nil {
		return nil, err
	}
	return t.acc.Transfer(from, to, amount)
}

// TransferFrom spender 使用 from 的授权额度转账给 to
func (t *TokenDB) TransferFrom(spender, from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	allowance := t.Allowance(from, spender)
	if allowance < amount {
		return nil, tokenty.ErrInsufficientAllowance
	}
	if err := t.checkFrozen(from, to); err != nil {
		return nil, err
	}
	if err := t.acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	receipt, err := t.acc.Transfer(from, to, amount)
	if err != nil {
		return nil, err
	}
	kv := t.setAllowance(from, spender, allowance-amount)
	log := &types.ReceiptLog{
		Ty: tokenty.TyLogTokenApprove,
		Log: types.Encode(&tokenty.ReceiptTokenApprove{
			Symbol:  t.info.Symbol,
			Owner:   from,
			Spender: spender,
			Prev:    allowance,
			Current: allowance - amount,
		}),
	}
	receipt.KV = append(receipt.KV, kv)
	receipt.Logs = append(receipt.Logs, log)
	return receipt, nil
}

// SetFrozen 冻结或者解冻账户, 只有 owner 可以操作
func (t *TokenDB) SetFrozen(caller, addr string, frozen bool) (*types.Receipt, error) {
	if caller != t.info.Owner {
		return nil, tokenty.ErrTokenOwner
	}
	kv := &types.KeyValue{Key: calcFreezeKey(t.info.Symbol, addr)}
	if frozen {
		kv.Value = types.Encode(&types.Int64{Data: 1})
	}
	if err := t.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	log := &types.ReceiptLog{
		Ty:  tokenty.TyLogTokenFreeze,
		Log: types.Encode(&tokenty.ReceiptTokenFreeze{Symbol: t.info.Symbol, Addr: addr, Frozen: frozen}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}, nil
}
