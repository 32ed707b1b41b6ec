// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// HeaderResult 区块头
type HeaderResult struct {
	Height    int64  `json:"height"`
	BlockTime int64  `json:"blockTime"`
	TxCount   int64  `json:"txCount"`
	Hash      string `json:"hash"`
}

// BlockCmd 区块命令
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Get block header",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(GetLastHeaderCmd())
	return cmd
}

// GetLastHeaderCmd 最新区块头
func GetLastHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last_header",
		Short: "View last block header",
		Run:   lastHeader,
	}
}

func lastHeader(cmd *cobra.Command, args []string) {
	client.NewCtx(cmd).Run(func(cli *client.Client) (interface{}, error) {
		header := cli.LastHeader()
		if header == nil {
			return nil, types.ErrNotFound
		}
		return &HeaderResult{
			Height:    header.Height,
			BlockTime: header.BlockTime,
			TxCount:   header.TxCount,
			Hash:      common.ToHex(header.Hash),
		}, nil
	})
}
