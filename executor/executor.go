// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 按顺序执行区块中的交易, 每笔交易要么全部生效要么全部回滚
package executor

import (
	"sync"
	"time"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// 区块检查错误
var (
	ErrBlockHeight = errors.New("ErrBlockHeight")
	ErrBlockTime   = errors.New("ErrBlockTime")
	ErrTxTooMany   = errors.New("ErrTxTooMany")
)

var (
	lastHeaderKey = []byte("LastHeader")
	txHashPrefix  = []byte("TxHash:")
)

// TxResult 单笔交易的执行结果, Err 不为 nil 时 Receipt 记录了失败信息
type TxResult struct {
	Hash    []byte
	Index   int
	Receipt *types.ReceiptData
	Err     error
}

// Executor 本地执行环境
type Executor struct {
	mu      sync.Mutex
	cfg     *types.Config
	statedb *StateDB
	localdb *LocalDB
	header  *types.Header
}

// New 创建执行环境, 从本地数据库中恢复最新的区块头
func New(cfg *types.Config, state, local dbm.DB) (*Executor, error) {
	if cfg == nil {
		cfg, _ = types.MustInitCfgString(types.DefaultConfig)
	}
	exec := &Executor{
		cfg:     cfg,
		statedb: NewStateDB(state),
		localdb: NewLocalDB(local),
	}
	value, err := exec.localdb.Get(lastHeaderKey)
	if err != nil && err != types.ErrNotFound {
		return nil, errors.Wrap(err, "load last header")
	}
	if err == nil {
		var header types.Header
		if err := types.Decode(value, &header); err != nil {
			return nil, errors.Wrap(err, "decode last header")
		}
		exec.header = &header
	}
	return exec, nil
}

// LastHeader 最新执行的区块头, 还没有执行任何区块时返回 nil
func (exec *Executor) LastHeader() *types.Header {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.header == nil {
		return nil
	}
	header := *exec.header
	return &header
}

// NextBlock 在最新区块之后构造新区块, blocktime 为0时使用当前时间
func (exec *Executor) NextBlock(blocktime int64, txs ...*types.Transaction) *types.Block {
	header := exec.LastHeader()
	block := &types.Block{Txs: txs, BlockTime: blocktime}
	if header != nil {
		block.Height = header.Height + 1
		if block.BlockTime == 0 {
			block.BlockTime = header.BlockTime
		}
	}
	if block.BlockTime == 0 {
		block.BlockTime = time.Now().Unix()
	}
	if header != nil && block.BlockTime < header.BlockTime {
		block.BlockTime = header.BlockTime
	}
	return block
}

func (exec *Executor) checkBlock(block *types.Block) error {
	if len(block.Txs) > types.MaxTxsPerBlock {
		return ErrTxTooMany
	}
	if exec.header == nil {
		if block.Height != 0 {
			return errors.Wrapf(ErrBlockHeight, "want 0 got %d", block.Height)
		}
		return nil
	}
	if block.Height != exec.header.Height+1 {
		return errors.Wrapf(ErrBlockHeight, "want %d got %d", exec.header.Height+1, block.Height)
	}
	if block.BlockTime < exec.header.BlockTime {
		return errors.Wrapf(ErrBlockTime, "last %d got %d", exec.header.BlockTime, block.BlockTime)
	}
	return nil
}

// ExecBlock 执行一个区块, 返回每笔交易的结果
// 单笔交易失败不影响其他交易, 区块执行完成后状态一次性写入数据库
func (exec *Executor) ExecBlock(block *types.Block) ([]*TxResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if err := exec.checkBlock(block); err != nil {
		return nil, err
	}
	beg := time.Now()
	defer func() {
		blockTimer.UpdateSince(beg)
	}()
	results := make([]*TxResult, 0, len(block.Txs))
	index := 0
	for i, tx := range block.Txs {
		result := exec.execTx(block, tx, index)
		if result.Receipt.Ty != types.ExecErr {
			index++
		}
		elog.Debug("exec tx", "i", i, "execer", string(tx.Execer), "ty", result.Receipt.Ty, "err", result.Err)
		results = append(results, result)
	}
	if err := exec.statedb.Flush(); err != nil {
		exec.statedb.Discard()
		return nil, errors.Wrap(err, "flush state")
	}
	header := &types.Header{
		Height:    block.Height,
		BlockTime: block.BlockTime,
		TxCount:   int64(len(block.Txs)),
		Hash:      common.Sha256(types.Encode(block)),
	}
	if err := exec.localdb.Set(lastHeaderKey, types.Encode(header)); err != nil {
		return nil, errors.Wrap(err, "save last header")
	}
	exec.header = header
	if exec.cfg.Exec != nil && exec.cfg.Exec.EnableStat {
		logStat()
	}
	return results, nil
}

func (exec *Executor) execTx(block *types.Block, tx *types.Transaction, index int) *TxResult {
	result := &TxResult{Hash: tx.Hash(), Index: index}
	driver, err := exec.prepare(block, tx, index)
	if err != nil {
		txFailCounter.Inc(1)
		result.Err = err
		result.Receipt = &types.ReceiptData{Ty: types.ExecErr, Logs: []*types.ReceiptLog{errLog(err)}}
		return result
	}
	exec.statedb.Begin()
	receipt, err := exec.execDriver(driver, tx, index)
	if err != nil {
		exec.statedb.Rollback()
		txFailCounter.Inc(1)
		elog.Error("exec tx error", "err", err, "exec", string(tx.Execer), "action", driver.GetExecutorType().ActionName(tx))
		result.Err = err
		result.Receipt = &types.ReceiptData{Ty: types.ExecPack, Logs: []*types.ReceiptLog{errLog(err)}}
	} else {
		if err := exec.statedb.Commit(); err != nil {
			panic(err)
		}
		txOkCounter.Inc(1)
		result.Receipt = &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	}
	exec.execLocal(driver, tx, result)
	return result
}

// prepare 交易的基本检查, 失败的交易不会被打包
func (exec *Executor) prepare(block *types.Block, tx *types.Transaction, index int) (dapp.Driver, error) {
	if err := address.CheckAddress(tx.From); err != nil {
		return nil, errors.Wrap(types.ErrInvalidAddress, tx.From)
	}
	if tx.Amount < 0 {
		return nil, types.ErrAmount
	}
	if _, err := exec.localdb.Get(txKey(tx.Hash())); err == nil {
		return nil, types.ErrTxExist
	}
	driver, err := dapp.LoadDriver(string(tx.Execer), block.Height)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(exec.statedb)
	driver.SetLocalDB(exec.localdb)
	driver.SetEnv(block.Height, block.BlockTime)
	if err := driver.CheckTx(tx, index); err != nil {
		return nil, err
	}
	return driver, nil
}

// execDriver 先把交易附带的原生币转入执行器子账户, 再执行 action
func (exec *Executor) execDriver(driver dapp.Driver, tx *types.Transaction, index int) (*types.Receipt, error) {
	var attached *types.Receipt
	execer := string(tx.Execer)
	if tx.Amount > 0 && execer != types.CoinsX {
		var err error
		attached, err = driver.GetCoinsAccount().TransferToExec(tx.From, dapp.ExecAddress(execer), tx.Amount)
		if err != nil {
			return nil, err
		}
	}
	receipt, err := driver.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if attached != nil {
		ty := receipt.Ty
		receipt = types.MergeReceipt(attached, receipt)
		receipt.Ty = ty
	}
	return receipt, nil
}

// execLocal 打包的交易记录交易哈希, 执行成功的交易写入执行器的本地索引
func (exec *Executor) execLocal(driver dapp.Driver, tx *types.Transaction, result *TxResult) {
	set, err := driver.ExecLocal(tx, result.Receipt, result.Index)
	if err != nil {
		elog.Error("exec local error", "err", err, "exec", string(tx.Execer))
		set = &types.LocalDBSet{}
	}
	set.KV = append(set.KV, &types.KeyValue{Key: txKey(result.Hash), Value: types.Encode(result.Receipt)})
	if err := exec.localdb.ApplyLocalDBSet(set); err != nil {
		elog.Error("save local error", "err", err)
	}
}

// GetTxReceipt 查询已打包交易的执行结果
func (exec *Executor) GetTxReceipt(hash []byte) (*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	value, err := exec.localdb.Get(txKey(hash))
	if err != nil {
		return nil, err
	}
	var receipt types.ReceiptData
	if err := types.Decode(value, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Query 调用执行器的 Query_ 方法
func (exec *Executor) Query(driverName, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	driver, err := dapp.LoadDriver(driverName, -1)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(exec.statedb)
	driver.SetLocalDB(exec.localdb)
	if exec.header != nil {
		driver.SetEnv(exec.header.Height, exec.header.BlockTime)
	}
	var data []byte
	if param != nil {
		data = types.Encode(param)
	}
	return driver.Query(funcName, data)
}

func txKey(hash []byte) []byte {
	return append(append([]byte{}, txHashPrefix...), []byte(common.ToHex(hash))...)
}

func errLog(err error) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: types.TyLogErr, Log: types.Encode(&types.ReceiptLogErr{Err: err.Error()})}
}
