// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands coins 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// CoinsCmd coins 命令
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native coins management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenesisCmd(),
		TransferCmd(),
		WithdrawCmd(),
		BalanceCmd(),
	)
	return cmd
}

func addAmountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().StringP("amount", "a", "0", "amount in coins")
	cmd.MarkFlagRequired("amount")
}

func parseAmount(cmd *cobra.Command) (int64, bool) {
	s, _ := cmd.Flags().GetString("amount")
	amount, err := client.ParseAmount(s, types.Coin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0, false
	}
	return amount, true
}

// GenesisCmd 创世发行
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Issue coins to an address, genesis address only",
		Run:   genesis,
	}
	addAmountFlags(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	client.NewCtx(cmd).SendTx(cty.CoinsX, cty.NewGenesis(to, amount), 0)
}

// TransferCmd 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins, to an executor address deposits into it",
		Run:   transfer,
	}
	addAmountFlags(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	client.NewCtx(cmd).SendTx(cty.CoinsX, cty.NewTransfer(to, amount, note), 0)
}

// WithdrawCmd 从执行器取回
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from an executor",
		Run:   withdraw,
	}
	addAmountFlags(cmd)
	cmd.Flags().StringP("exec", "e", "", "execer withdrawn from")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	exec, _ := cmd.Flags().GetString("exec")
	amount, ok := parseAmount(cmd)
	if !ok {
		return
	}
	client.NewCtx(cmd).SendTx(cty.CoinsX, cty.NewWithdraw(exec, amount), 0)
}

// BalanceCmd 查询余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get coins balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "also show the sub-account under this executor")
	return cmd
}

type accountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	exec, _ := cmd.Flags().GetString("exec")
	req := &types.ReqBalance{Addr: addr, Execer: exec}
	client.NewCtx(cmd).Query(cty.CoinsX, "GetBalance", req, func(msg types.Message) (interface{}, error) {
		reply := msg.(*types.ReplyBalance)
		result := map[string]*accountResult{"main": toResult(reply.Main)}
		if reply.Exec != nil {
			result[exec] = toResult(reply.Exec)
		}
		return result, nil
	})
}

func toResult(acc *types.Account) *accountResult {
	return &accountResult{
		Addr:    acc.Addr,
		Balance: client.FormatAmount(acc.Balance, types.Coin),
		Frozen:  client.FormatAmount(acc.Frozen, types.Coin),
	}
}
