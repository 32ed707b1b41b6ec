// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands token 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// TokenCmd token 命令
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateTokenCmd(),
		TransferCmd(),
		ApproveCmd(),
		FreezeCmd(),
		BalanceCmd(),
		AllowanceCmd(),
		InfoCmd(),
		ListCmd(),
	)
	return cmd
}

func addSymbolFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("symbol", "s", "", "token symbol")
	cmd.MarkFlagRequired("symbol")
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
}

func getAmount(cmd *cobra.Command, name string) (int64, bool) {
	s, _ := cmd.Flags().GetString(name)
	amount, err := client.ParseAmount(s, types.TokenPrecision)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0, false
	}
	return amount, true
}

// CreateTokenCmd 创建 token
func CreateTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a token, the creator holds the total supply",
		Run:   createToken,
	}
	addFromFlag(cmd)
	addSymbolFlag(cmd)
	cmd.Flags().StringP("name", "n", "", "token name")
	cmd.Flags().StringP("total", "t", "0", "total supply")
	cmd.MarkFlagRequired("total")
	return cmd
}

func createToken(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	name, _ := cmd.Flags().GetString("name")
	total, ok := getAmount(cmd, "total")
	if !ok {
		return
	}
	client.NewCtx(cmd).SendTx(tokenty.TokenX, tokenty.NewCreate(symbol, name, total), 0)
}

// TransferCmd token 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer token",
		Run:   transfer,
	}
	addFromFlag(cmd)
	addSymbolFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "0", "amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	to, _ := cmd.Flags().GetString("to")
	amount, ok := getAmount(cmd, "amount")
	if !ok {
		return
	}
	client.NewCtx(cmd).SendTx(tokenty.TokenX, tokenty.NewTransfer(symbol, to, amount), 0)
}

// ApproveCmd 授权
func ApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve a spender, use the rps executor address to stake in rps rounds",
		Run:   approve,
	}
	addFromFlag(cmd)
	addSymbolFlag(cmd)
	cmd.Flags().StringP("spender", "p", "", "spender address")
	cmd.MarkFlagRequired("spender")
	cmd.Flags().StringP("amount", "a", "0", "allowance")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func approve(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	spender, _ := cmd.Flags().GetString("spender")
	amount, ok := getAmount(cmd, "amount")
	if !ok {
		return
	}
	client.NewCtx(cmd).SendTx(tokenty.TokenX, tokenty.NewApprove(symbol, spender, amount), 0)
}

// FreezeCmd 冻结账户
func FreezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Freeze or unfreeze an account, token owner only",
		Run:   freeze,
	}
	addFromFlag(cmd)
	addSymbolFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().BoolP("unfreeze", "u", false, "unfreeze the account")
	return cmd
}

func freeze(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	addr, _ := cmd.Flags().GetString("addr")
	unfreeze, _ := cmd.Flags().GetBool("unfreeze")
	client.NewCtx(cmd).SendTx(tokenty.TokenX, tokenty.NewFreeze(symbol, addr, !unfreeze), 0)
}

// BalanceCmd 余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get token balance",
		Run:   balance,
	}
	addSymbolFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	addr, _ := cmd.Flags().GetString("addr")
	req := &tokenty.ReqTokenBalance{Symbol: symbol, Addr: addr}
	client.NewCtx(cmd).Query(tokenty.TokenX, "BalanceOf", req, func(msg types.Message) (interface{}, error) {
		reply := msg.(*tokenty.ReplyTokenBalance)
		return map[string]interface{}{
			"symbol":  reply.Symbol,
			"addr":    reply.Addr,
			"balance": client.FormatAmount(reply.Balance, types.TokenPrecision),
			"frozen":  reply.Frozen,
		}, nil
	})
}

// AllowanceCmd 授权额度
func AllowanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Get the allowance of owner to spender",
		Run:   allowance,
	}
	addSymbolFlag(cmd)
	cmd.Flags().StringP("owner", "o", "", "owner address")
	cmd.MarkFlagRequired("owner")
	cmd.Flags().StringP("spender", "p", "", "spender address")
	cmd.MarkFlagRequired("spender")
	return cmd
}

func allowance(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	owner, _ := cmd.Flags().GetString("owner")
	spender, _ := cmd.Flags().GetString("spender")
	req := &tokenty.ReqAllowance{Symbol: symbol, Owner: owner, Spender: spender}
	client.NewCtx(cmd).Query(tokenty.TokenX, "Allowance", req, func(msg types.Message) (interface{}, error) {
		return client.FormatAmount(msg.(*types.Int64).Data, types.TokenPrecision), nil
	})
}

// InfoCmd token 信息
func InfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Get token info",
		Run:   info,
	}
	addSymbolFlag(cmd)
	return cmd
}

func info(cmd *cobra.Command, args []string) {
	symbol, _ := cmd.Flags().GetString("symbol")
	client.NewCtx(cmd).Query(tokenty.TokenX, "GetTokenInfo", &types.ReqString{Data: symbol}, nil)
}

// ListCmd token 列表
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List created tokens",
		Run:   list,
	}
	cmd.Flags().Int32P("count", "c", 10, "max tokens to list")
	cmd.Flags().Int32P("direction", "d", 1, "0: desc, 1: asc")
	cmd.Flags().StringP("from_symbol", "s", "", "list after this symbol")
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	from, _ := cmd.Flags().GetString("from_symbol")
	req := &tokenty.ReqTokens{Count: count, Direction: direction, FromKey: from}
	client.NewCtx(cmd).Query(tokenty.TokenX, "GetTokens", req, nil)
}
