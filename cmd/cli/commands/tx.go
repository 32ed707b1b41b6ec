// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common"
	"github.com/spf13/cobra"
)

// TxCmd 交易命令
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(QueryTxByHashCmd())
	return cmd
}

// QueryTxByHashCmd 按哈希查询交易执行结果
func QueryTxByHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_hash",
		Short: "Query transaction receipt by hash",
		Run:   queryTxByHash,
	}
	cmd.Flags().StringP("hash", "x", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	cmd.Flags().StringP("exec", "e", "", "executor name, used to decode the executor logs")
	return cmd
}

func queryTxByHash(cmd *cobra.Command, args []string) {
	hexhash, _ := cmd.Flags().GetString("hash")
	execer, _ := cmd.Flags().GetString("exec")
	client.NewCtx(cmd).Run(func(cli *client.Client) (interface{}, error) {
		hash, err := common.FromHex(hexhash)
		if err != nil {
			return nil, err
		}
		receipt, err := cli.GetTxReceipt(hash)
		if err != nil {
			return nil, err
		}
		return client.NewTxReply(execer, hash, 0, receipt), nil
	})
}
