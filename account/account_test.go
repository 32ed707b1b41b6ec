// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV 测试用的状态数据库, 不支持事务
type memKV struct {
	db *dbm.GoMemDB
}

func newMemKV() *memKV {
	db, _ := dbm.NewGoMemDB("test", "", 0)
	return &memKV{db: db}
}

func (m *memKV) Get(key []byte) ([]byte, error) { return m.db.Get(key) }
func (m *memKV) Set(key, value []byte) error    { return m.db.Set(key, value) }
func (m *memKV) Begin()                         {}
func (m *memKV) Rollback()                      {}
func (m *memKV) Commit() error                  { return nil }

var (
	addr1    = address.LabelAddress("alice")
	addr2    = address.LabelAddress("bob")
	execAddr = address.ExecAddress("rps")
)

func newCoins(t *testing.T) *DB {
	acc := NewCoinsAccount(newMemKV())
	_, err := acc.GenesisInit(addr1, 100*types.Coin)
	require.NoError(t, err)
	return acc
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("to-ken", "FZM", newMemKV())
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("token", "F-ZM", newMemKV())
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	acc, err := NewAccountDB("token", "FZM", newMemKV())
	require.NoError(t, err)
	assert.Equal(t, "mavl-token-FZM-"+addr1, string(acc.AccountKey(addr1)))
	assert.Equal(t, "FZM", acc.Symbol())
	assert.Equal(t, "token", acc.Execer())
}

func TestTransfer(t *testing.T) {
	acc := newCoins(t)
	receipt, err := acc.Transfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, 90*types.Coin, acc.LoadAccount(addr1).Balance)
	assert.Equal(t, 10*types.Coin, acc.LoadAccount(addr2).Balance)

	_, err = acc.Transfer(addr2, addr1, 11*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.Transfer(addr1, addr1, types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
	// 失败的转账不修改余额
	assert.Equal(t, 90*types.Coin, acc.LoadAccount(addr1).Balance)
}

func TestExecFrozenActive(t *testing.T) {
	acc := newCoins(t)
	_, err := acc.TransferToExec(addr1, execAddr, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 90*types.Coin, acc.LoadAccount(addr1).Balance)
	assert.Equal(t, 10*types.Coin, acc.LoadAccount(execAddr).Balance)
	assert.Equal(t, 10*types.Coin, acc.LoadExecAccount(addr1, execAddr).Balance)

	_, err = acc.ExecFrozen(addr1, execAddr, 4*types.Coin)
	require.NoError(t, err)
	exec := acc.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, 6*types.Coin, exec.Balance)
	assert.Equal(t, 4*types.Coin, exec.Frozen)

	_, err = acc.ExecFrozen(addr1, execAddr, 7*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.ExecActive(addr1, execAddr, 5*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.ExecActive(addr1, execAddr, 4*types.Coin)
	require.NoError(t, err)
	exec = acc.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, 10*types.Coin, exec.Balance)
	assert.Equal(t, int64(0), exec.Frozen)
}

func TestExecTransferFrozenAndWithdraw(t *testing.T) {
	acc := newCoins(t)
	_, err := acc.TransferToExec(addr1, execAddr, 10*types.Coin)
	require.NoError(t, err)
	_, err = acc.ExecFrozen(addr1, execAddr, 10*types.Coin)
	require.NoError(t, err)

	_, err = acc.ExecTransferFrozen(addr1, addr2, execAddr, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.LoadExecAccount(addr1, execAddr).Frozen)
	assert.Equal(t, 10*types.Coin, acc.LoadExecAccount(addr2, execAddr).Balance)

	_, err = acc.TransferWithdraw(addr2, execAddr, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 10*types.Coin, acc.LoadAccount(addr2).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(execAddr).Balance)

	_, err = acc.TransferWithdraw(addr2, execAddr, types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransferFrozenErrors(t *testing.T) {
	acc := newCoins(t)
	_, err := acc.TransferToExec(addr1, execAddr, 10*types.Coin)
	require.NoError(t, err)
	_, err = acc.ExecFrozen(addr1, execAddr, 3*types.Coin)
	require.NoError(t, err)

	_, err = acc.ExecTransferFrozen(addr1, addr2, execAddr, 4*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.ExecTransferFrozen(addr1, addr1, execAddr, types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.ExecTransferFrozen(addr1, addr2, execAddr, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.ExecActive(addr1, execAddr, 4*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	exec := acc.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, 7*types.Coin, exec.Balance)
	assert.Equal(t, 3*types.Coin, exec.Frozen)
}

func TestGenesisOverflow(t *testing.T) {
	acc := newCoins(t)
	_, err := acc.GenesisInit(addr1, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, 100*types.Coin, acc.LoadAccount(addr1).Balance)
}
