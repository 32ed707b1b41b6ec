// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account 实现资产账户的读写, 转账以及执行器子账户的冻结和解冻
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. exec account deposit/withdraw/frozen/active

import (
	"fmt"
	"strings"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB 某一种资产的账户数据库, 资产由 execer 和 symbol 确定
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

// NewCoinsAccount 原生币账户
func NewCoinsAccount(db dbm.KV) *DB {
	acc, err := NewAccountDB(types.CoinsX, types.BTY, db)
	if err != nil {
		panic(err)
	}
	return acc
}

// NewAccountDB 创建资产账户数据库
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	prefix := SymbolPrefix(execer, symbol)
	acc := &DB{
		db:                   db,
		accountKeyPerfix:     []byte(prefix),
		execAccountKeyPerfix: append([]byte(prefix), []byte("exec-")...),
		execer:               execer,
		symbol:               symbol,
	}
	return acc, nil
}

// SetDB 切换底层数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// Symbol 资产符号
func (acc *DB) Symbol() string {
	return acc.symbol
}

// Execer 资产所属执行器
func (acc *DB) Execer() string {
	return acc.execer
}

// LoadAccount 读取账户, 不存在时返回空账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// CheckTransfer 检查是否可以转账, 不修改数据
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer 主账户之间转账
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := types.CloneAccount(accFrom)
	copyto := types.CloneAccount(accTo)

	accFrom.Balance -= amount
	balance, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	accTo.Balance = balance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    copyto,
		Current: accTo,
	}
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 将账户数据转为数据库存储kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey 账户的存储 key
func (acc *DB) AccountKey(addr string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(addr))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(addr)...)
	return key
}

// ExecAddress 根据执行器名称获取执行器地址
func (acc *DB) ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// SymbolPrefix 资产账户 key 的前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount >= types.MaxCoin {
		alog.Error("safeAdd", "balance", balance, "amount", amount)
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}
