// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// DefaultCliConfig 命令行没有配置文件时使用的配置, 状态保存在 datadir 目录
const DefaultCliConfig = `
Title="local"

[log]
loglevel = "info"
logConsoleLevel = "error"
logFile = "logs/rps.log"

[store]
driver = "leveldb"
dbPath = "datadir"
dbCache = 16

[exec.sub.rps]
roundDuration = 600
betAmount = 100000000
timeoutPolicy = "forfeit"
minBetAmount = 1
maxBetAmount = 10000000000000
`

// Ctx 命令行的执行上下文
type Ctx struct {
	cmd *cobra.Command
}

// NewCtx 读取命令的 conf 以及 blocktime 参数
func NewCtx(cmd *cobra.Command) *Ctx {
	return &Ctx{cmd: cmd}
}

func (c *Ctx) open() (*Client, error) {
	conf, _ := c.cmd.Flags().GetString("conf")
	var cli *Client
	var err error
	if _, serr := os.Stat(conf); conf == "" || serr != nil {
		cli, err = New(types.MustInitCfgString(DefaultCliConfig))
	} else {
		cli, err = NewFromFile(conf)
	}
	if err != nil {
		return nil, err
	}
	blocktime, _ := c.cmd.Flags().GetInt64("blocktime")
	cli.SetBlockTime(blocktime)
	return cli, nil
}

// TxReply 交易执行结果的命令行输出
type TxReply struct {
	Hash   string          `json:"hash"`
	Height int64           `json:"height,omitempty"`
	Ty     int32           `json:"ty"`
	Error  string          `json:"error,omitempty"`
	Logs   []*ReceiptLogCli `json:"logs,omitempty"`
}

// ReceiptLogCli 解析后的日志
type ReceiptLogCli struct {
	Ty   int32           `json:"ty"`
	Name string          `json:"name,omitempty"`
	Log  json.RawMessage `json:"log,omitempty"`
	Raw  string          `json:"raw,omitempty"`
}

// SendTx 构造并执行交易, 打印执行结果
func (c *Ctx) SendTx(execer string, action types.Message, amount int64) {
	from, _ := c.cmd.Flags().GetString("from")
	cli, err := c.open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer cli.Close()
	tx := cli.CreateTx(execer, from, action, amount)
	result, err := cli.SendTx(tx)
	if result == nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(NewTxReply(execer, result.Hash, cli.LastHeader().Height, result.Receipt))
}

// NewTxReply 解析交易执行结果, execer 用来解析执行器自己的日志
func NewTxReply(execer string, hash []byte, height int64, receipt *types.ReceiptData) *TxReply {
	reply := &TxReply{
		Hash:   common.ToHex(hash),
		Height: height,
		Ty:     receipt.Ty,
	}
	for _, l := range receipt.Logs {
		item := decodeLog(execer, l)
		if l.Ty == types.TyLogErr && reply.Error == "" {
			var logerr types.ReceiptLogErr
			if types.Decode(l.Log, &logerr) == nil {
				reply.Error = logerr.Err
			}
		}
		reply.Logs = append(reply.Logs, item)
	}
	return reply
}

// Run 打开本地状态目录执行 fn, 打印 fn 的返回值
func (c *Ctx) Run(fn func(cli *Client) (interface{}, error)) {
	cli, err := c.open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer cli.Close()
	result, err := fn(cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(result)
}

func decodeLog(execer string, l *types.ReceiptLog) *ReceiptLogCli {
	item := &ReceiptLogCli{Ty: l.Ty}
	name, msg, err := types.DecodeLog(execer, l)
	if err != nil {
		item.Raw = common.ToHex(l.Log)
		return item
	}
	item.Name = name
	data, err := types.PBToJSON(msg)
	if err != nil {
		item.Raw = common.ToHex(l.Log)
		return item
	}
	item.Log = data
	return item
}

// Query 查询执行器, cb 不为空时用来转换输出
func (c *Ctx) Query(execer, funcName string, param types.Message, cb func(types.Message) (interface{}, error)) {
	cli, err := c.open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer cli.Close()
	reply, err := cli.Query(execer, funcName, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if cb == nil {
		data, err := types.PBToJSON(reply)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(string(data))
		return
	}
	result, err := cb(reply)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(result)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// FormatAmount 按精度格式化金额, 1e8 -> "1.0000"
func FormatAmount(amount int64, precision int64) string {
	return decimal.New(amount, 0).Div(decimal.New(precision, 0)).StringFixed(4)
}

// ParseAmount 把命令行输入的金额转换成最小单位
func ParseAmount(amount string, precision int64) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, types.ErrAmount
	}
	return d.Mul(decimal.New(precision, 0)).Truncate(0).IntPart(), nil
}
