// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	coinsexec "github.com/33cn/rps/system/dapp/coins/executor"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addrA = address.LabelAddress("a")
	addrB = address.LabelAddress("b")
)

const blocktime = int64(1539918074)

func newTestDB(t *testing.T) (dbm.DB, dbm.DB) {
	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	return state, local
}

func newTestExecutor(t *testing.T) (*Executor, dbm.DB, dbm.DB) {
	cfg, _ := types.MustInitCfgString(types.DefaultConfig)
	coinsexec.Init(cty.CoinsX, cfg, nil)
	state, local := newTestDB(t)
	exec, err := New(cfg, state, local)
	require.NoError(t, err)
	results, err := exec.ExecBlock(exec.NextBlock(blocktime, types.CreateTx(cty.CoinsX, addrA, cty.NewGenesis(addrA, 10*types.Coin), 0, 1)))
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	return exec, state, local
}

func balance(t *testing.T, exec *Executor, addr string) int64 {
	reply, err := exec.Query(cty.CoinsX, "GetBalance", &types.ReqBalance{Addr: addr})
	require.NoError(t, err)
	return reply.(*types.ReplyBalance).Main.Balance
}

func TestCheckBlock(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	header := exec.LastHeader()
	require.NotNil(t, header)
	assert.Equal(t, int64(0), header.Height)
	assert.Equal(t, blocktime, header.BlockTime)

	_, err := exec.ExecBlock(&types.Block{Height: 2, BlockTime: blocktime})
	assert.Equal(t, ErrBlockHeight, errors.Cause(err))
	_, err = exec.ExecBlock(&types.Block{Height: 1, BlockTime: blocktime - 1})
	assert.Equal(t, ErrBlockTime, errors.Cause(err))

	// 区块时间不能倒退
	block := exec.NextBlock(blocktime - 100)
	assert.Equal(t, int64(1), block.Height)
	assert.Equal(t, blocktime, block.BlockTime)
	_, err = exec.ExecBlock(block)
	require.NoError(t, err)
	assert.Equal(t, int64(1), exec.LastHeader().Height)
}

func TestExecTxResult(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	ok1 := types.CreateTx(cty.CoinsX, addrA, cty.NewTransfer(addrB, types.Coin, ""), 0, 2)
	bad := types.CreateTx(cty.CoinsX, "bad address", cty.NewTransfer(addrB, types.Coin, ""), 0, 3)
	pack := types.CreateTx(cty.CoinsX, addrB, cty.NewTransfer(addrA, 5*types.Coin, ""), 0, 4)
	noexec := types.CreateTx("none", addrA, nil, 0, 5)
	ok2 := types.CreateTx(cty.CoinsX, addrA, cty.NewTransfer(addrB, types.Coin, ""), 0, 6)

	results, err := exec.ExecBlock(exec.NextBlock(blocktime, ok1, bad, pack, noexec, ok2))
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, int32(types.ExecOk), results[0].Receipt.Ty)
	assert.Equal(t, 0, results[0].Index)

	assert.Equal(t, types.ErrInvalidAddress, errors.Cause(results[1].Err))
	assert.Equal(t, int32(types.ExecErr), results[1].Receipt.Ty)

	// 执行失败的交易也会打包, 占用一个位置
	assert.Equal(t, types.ErrNoBalance, results[2].Err)
	assert.Equal(t, int32(types.ExecPack), results[2].Receipt.Ty)
	assert.Equal(t, 1, results[2].Index)
	require.Len(t, results[2].Receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogErr), results[2].Receipt.Logs[0].Ty)

	assert.Equal(t, types.ErrExecNotFound, results[3].Err)
	assert.Equal(t, int32(types.ExecErr), results[3].Receipt.Ty)

	assert.NoError(t, results[4].Err)
	assert.Equal(t, 2, results[4].Index)

	assert.Equal(t, 8*types.Coin, balance(t, exec, addrA))
	assert.Equal(t, 2*types.Coin, balance(t, exec, addrB))

	receipt, err := exec.GetTxReceipt(pack.Hash())
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecPack), receipt.Ty)
	_, err = exec.GetTxReceipt(bad.Hash())
	assert.Equal(t, types.ErrNotFound, err)
}

func TestDuplicateTx(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	tx := types.CreateTx(cty.CoinsX, addrA, cty.NewTransfer(addrB, types.Coin, ""), 0, 2)
	results, err := exec.ExecBlock(exec.NextBlock(blocktime, tx))
	require.NoError(t, err)
	require.NoError(t, results[0].Err)

	results, err = exec.ExecBlock(exec.NextBlock(blocktime, tx))
	require.NoError(t, err)
	assert.Equal(t, types.ErrTxExist, results[0].Err)
	assert.Equal(t, int32(types.ExecErr), results[0].Receipt.Ty)
	assert.Equal(t, types.Coin, balance(t, exec, addrB))
}

func TestAttachedAmount(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	tx := types.CreateTx(cty.CoinsX, addrA, cty.NewTransfer(addrB, types.Coin, ""), -1, 2)
	results, err := exec.ExecBlock(exec.NextBlock(blocktime, tx))
	require.NoError(t, err)
	assert.Equal(t, types.ErrAmount, results[0].Err)
	assert.Equal(t, int32(types.ExecErr), results[0].Receipt.Ty)
}

func TestReopen(t *testing.T) {
	exec, state, local := newTestExecutor(t)
	_, err := exec.ExecBlock(exec.NextBlock(blocktime + 5))
	require.NoError(t, err)

	cfg, _ := types.MustInitCfgString(types.DefaultConfig)
	exec2, err := New(cfg, state, local)
	require.NoError(t, err)
	header := exec2.LastHeader()
	require.NotNil(t, header)
	assert.Equal(t, int64(1), header.Height)
	assert.Equal(t, blocktime+5, header.BlockTime)
	assert.Equal(t, 10*types.Coin, balance(t, exec2, addrA))
}

func TestStat(t *testing.T) {
	exec, _, _ := newTestExecutor(t)
	_, err := exec.ExecBlock(exec.NextBlock(blocktime))
	require.NoError(t, err)
	found := map[string]bool{}
	for _, s := range Stat() {
		found[s.Name] = s.Count > 0
	}
	assert.True(t, found["rps.exec.tx.ok"])
	assert.True(t, found["rps.exec.block"])
}

func TestStateDB(t *testing.T) {
	mem, _ := newTestDB(t)
	require.NoError(t, mem.Set([]byte("k0"), []byte("v0")))
	s := NewStateDB(mem)

	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, s.Set([]byte("k0"), nil))
	assert.Equal(t, []string{"k1", "k0"}, s.GetSetKeys())
	value, err := s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
	_, err = s.Get([]byte("k0"))
	assert.Equal(t, types.ErrNotFound, err)
	s.Rollback()

	_, err = s.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)
	value, err = s.Get([]byte("k0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v0"), value)

	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, s.Set([]byte("k0"), nil))
	require.NoError(t, s.Commit())
	_, err = mem.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	require.NoError(t, s.Flush())
	value, err = mem.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
	_, err = mem.Get([]byte("k0"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestLocalDB(t *testing.T) {
	_, mem := newTestDB(t)
	l := NewLocalDB(mem)
	_, err := l.Get([]byte("none"))
	assert.Equal(t, types.ErrNotFound, err)
	_, err = l.List([]byte("p-"), nil, 10, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)

	set := &types.LocalDBSet{KV: []*types.KeyValue{
		{Key: []byte("p-1"), Value: []byte("1")},
		{Key: []byte("p-2"), Value: []byte("2")},
		{Key: []byte("p-3"), Value: []byte("3")},
	}}
	require.NoError(t, l.ApplyLocalDBSet(set))
	require.NoError(t, l.Set([]byte("p-2"), nil))
	values, err := l.List([]byte("p-"), nil, 10, dbm.ListDESC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("3"), []byte("1")}, values)
}
