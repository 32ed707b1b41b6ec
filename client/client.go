// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 打开本地状态目录, 以一个交易一个区块的方式执行交易并提供查询
package client

import (
	"sync/atomic"
	"time"

	dbm "github.com/33cn/rps/common/db"
	clog "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var qlog = log.New("module", "client")

// Client 本地执行环境的客户端
type Client struct {
	cfg   *types.Config
	sub   *types.ConfigSubModule
	state dbm.DB
	local dbm.DB
	exec  *executor.Executor
	nonce int64
	// 测试以及命令行可以指定区块时间
	blocktime int64
}

// New 初始化日志, 执行器插件以及数据库
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Client, error) {
	if cfg == nil {
		cfg, sub = types.MustInitCfgString(types.DefaultConfig)
	}
	clog.SetFileLog(cfg.Log)
	pluginmgr.InitExec(cfg, sub)
	state, err := dbm.NewDB("state", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open state db")
	}
	localPath := cfg.Store.LocalPath
	if localPath == "" {
		localPath = cfg.Store.DbPath
	}
	local, err := dbm.NewDB("local", cfg.Store.Driver, localPath, cfg.Store.DbCache)
	if err != nil {
		state.Close()
		return nil, errors.Wrap(err, "open local db")
	}
	exec, err := executor.New(cfg, state, local)
	if err != nil {
		state.Close()
		local.Close()
		return nil, err
	}
	qlog.Debug("client open", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	return &Client{cfg: cfg, sub: sub, state: state, local: local, exec: exec, nonce: time.Now().UnixNano()}, nil
}

// NewFromFile 从配置文件创建客户端, path 为空时使用默认配置
func NewFromFile(path string) (*Client, error) {
	if path == "" {
		return New(nil, nil)
	}
	cfg, sub, err := types.InitCfg(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, sub)
}

// Config 配置
func (c *Client) Config() *types.Config {
	return c.cfg
}

// SetBlockTime 指定后续区块的时间, 0 表示使用当前时间
func (c *Client) SetBlockTime(blocktime int64) {
	c.blocktime = blocktime
}

// CreateTx 构造交易, nonce 保证相同内容的交易哈希不同
func (c *Client) CreateTx(execer, from string, action types.Message, amount int64) *types.Transaction {
	return types.CreateTx(execer, from, action, amount, atomic.AddInt64(&c.nonce, 1))
}

// SendTx 在一个新区块中执行交易. 交易执行失败时返回执行结果以及错误
func (c *Client) SendTx(tx *types.Transaction) (*executor.TxResult, error) {
	results, err := c.ExecTxs(tx)
	if err != nil {
		return nil, err
	}
	return results[0], results[0].Err
}

// ExecTxs 在一个新区块中执行多笔交易
func (c *Client) ExecTxs(txs ...*types.Transaction) ([]*executor.TxResult, error) {
	block := c.exec.NextBlock(c.blocktime, txs...)
	return c.exec.ExecBlock(block)
}

// Query 查询执行器
func (c *Client) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return c.exec.Query(execer, funcName, param)
}

// LastHeader 最新区块
func (c *Client) LastHeader() *types.Header {
	return c.exec.LastHeader()
}

// GetTxReceipt 交易执行结果
func (c *Client) GetTxReceipt(hash []byte) (*types.ReceiptData, error) {
	return c.exec.GetTxReceipt(hash)
}

// Close 关闭数据库
func (c *Client) Close() {
	c.state.Close()
	c.local.Close()
}
