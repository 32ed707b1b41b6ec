// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 公共命令: 地址, 区块以及交易查询
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/address"
	"github.com/spf13/cobra"
)

// AccountCmd 地址相关的命令
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account address tools",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		LabelAddrCmd(),
		ExecAddrCmd(),
		CheckAddrCmd(),
	)
	return cmd
}

// LabelAddrCmd 根据名字生成地址, 本地环境不需要私钥
func LabelAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get the address of a label",
		Run: func(cmd *cobra.Command, args []string) {
			label, _ := cmd.Flags().GetString("label")
			fmt.Println(address.LabelAddress(label))
		},
	}
	cmd.Flags().StringP("label", "l", "", "account label, eg. alice")
	cmd.MarkFlagRequired("label")
	return cmd
}

// ExecAddrCmd 执行器地址, token 授权时使用
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get the address of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			execer, _ := cmd.Flags().GetString("exec")
			fmt.Println(address.ExecAddress(execer))
		},
	}
	cmd.Flags().StringP("exec", "e", "", "executor name, eg. rps")
	cmd.MarkFlagRequired("exec")
	return cmd
}

// CheckAddrCmd 检查地址格式
func CheckAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			if err := address.CheckAddress(addr); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println("ok")
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}
