// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common"
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RpsCmd rps 命令
func RpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock paper scissors game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		SaltCmd(),
		HashCmd(),
		CreateRoundCmd(),
		CommitCmd(),
		RevealCmd(),
		ClaimCmd(),
		WithdrawCmd(),
		InfoCmd(),
		StatusCmd(),
		MovesCmd(),
		ListCmd(),
		PendingCmd(),
	)
	return cmd
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender address")
	cmd.MarkFlagRequired("from")
}

func addRoundFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("round", "r", "", "round id")
	cmd.MarkFlagRequired("round")
}

func addMoveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("move", "m", "", "move: rock(1), paper(2) or scissors(3)")
	cmd.Flags().StringP("salt", "s", "", "salt used in the commitment")
}

// SaltCmd 生成随机盐
func SaltCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salt",
		Short: "Generate a random salt",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(uuid.New().String())
		},
	}
}

// HashCmd 计算承诺哈希
func HashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute keccak256(move, salt)",
		Run:   hash,
	}
	addMoveFlags(cmd)
	cmd.MarkFlagRequired("move")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func hash(cmd *cobra.Command, args []string) {
	m, _ := cmd.Flags().GetString("move")
	salt, _ := cmd.Flags().GetString("salt")
	fmt.Println(common.ToHex(rpsty.Commitment(rpsty.ParseMove(m), salt)))
}

// CreateRoundCmd 创建游戏
func CreateRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a round, zero values use the executor config",
		Run:   createRound,
	}
	addFromFlag(cmd)
	cmd.Flags().Int64P("duration", "d", 0, "round duration in seconds")
	cmd.Flags().StringP("bet", "b", "0", "bet amount")
	cmd.Flags().StringP("asset", "a", "", "stake asset, token symbol or bty")
	cmd.Flags().StringP("policy", "p", "", "timeout policy: forfeit or refund")
	return cmd
}

func createRound(cmd *cobra.Command, args []string) {
	duration, _ := cmd.Flags().GetInt64("duration")
	s, _ := cmd.Flags().GetString("bet")
	asset, _ := cmd.Flags().GetString("asset")
	p, _ := cmd.Flags().GetString("policy")
	bet, err := client.ParseAmount(s, types.Coin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	policy, err := rpsty.ParsePolicy(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	client.NewCtx(cmd).SendTx(rpsty.RpsX, rpsty.NewCreate(duration, bet, asset, policy), 0)
}

// CommitCmd 提交承诺, 原生币游戏需要用 amount 附带押金
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a move, give either --hash or --move and --salt",
		Run:   commit,
	}
	addFromFlag(cmd)
	addRoundFlag(cmd)
	addMoveFlags(cmd)
	cmd.Flags().StringP("hash", "x", "", "commitment hash in hex")
	cmd.Flags().StringP("amount", "a", "0", "attached bty, must equal the bet of a native round")
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	hexhash, _ := cmd.Flags().GetString("hash")
	m, _ := cmd.Flags().GetString("move")
	salt, _ := cmd.Flags().GetString("salt")
	s, _ := cmd.Flags().GetString("amount")
	amount, err := client.ParseAmount(s, types.Coin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var commitment []byte
	if hexhash != "" {
		commitment, err = common.FromHex(hexhash)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	} else {
		move := rpsty.ParseMove(m)
		if !rpsty.ValidMove(move) {
			fmt.Fprintln(os.Stderr, rpsty.ErrInvalidMove)
			return
		}
		commitment = rpsty.Commitment(move, salt)
	}
	client.NewCtx(cmd).SendTx(rpsty.RpsX, rpsty.NewCommit(roundID, commitment), amount)
}

// RevealCmd 公开出拳
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed move",
		Run:   reveal,
	}
	addFromFlag(cmd)
	addRoundFlag(cmd)
	addMoveFlags(cmd)
	cmd.MarkFlagRequired("move")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func reveal(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	m, _ := cmd.Flags().GetString("move")
	salt, _ := cmd.Flags().GetString("salt")
	client.NewCtx(cmd).SendTx(rpsty.RpsX, rpsty.NewReveal(roundID, rpsty.ParseMove(m), salt), 0)
}

// ClaimCmd 超时结束
func ClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Close an expired round",
		Run:   claim,
	}
	addFromFlag(cmd)
	addRoundFlag(cmd)
	return cmd
}

func claim(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	client.NewCtx(cmd).SendTx(rpsty.RpsX, rpsty.NewClaim(roundID), 0)
}

// WithdrawCmd 领取失败的付款
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Retry the failed payouts of a round",
		Run:   withdraw,
	}
	addFromFlag(cmd)
	addRoundFlag(cmd)
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	client.NewCtx(cmd).SendTx(rpsty.RpsX, rpsty.NewWithdraw(roundID), 0)
}

// RoundResult 命令行显示的游戏信息
type RoundResult struct {
	RoundID       string        `json:"roundID"`
	Creator       string        `json:"creator"`
	Phase         string        `json:"phase"`
	State         string        `json:"state"`
	BetAmount     string        `json:"betAmount"`
	StakeAsset    string        `json:"stakeAsset"`
	TimeoutPolicy string        `json:"timeoutPolicy"`
	CreateTime    int64         `json:"createTime"`
	Deadline      int64         `json:"deadline"`
	Players       []*PlayerInfo `json:"players,omitempty"`
	Winner        string        `json:"winner,omitempty"`
	Result        string        `json:"result,omitempty"`
	Pending       int           `json:"pending,omitempty"`
}

// PlayerInfo 玩家信息
type PlayerInfo struct {
	Addr       string `json:"addr"`
	Status     int32  `json:"status"`
	Commitment string `json:"commitment"`
	Move       string `json:"move,omitempty"`
}

func toRoundResult(round *rpsty.Round) *RoundResult {
	asset := round.StakeAsset
	if asset == "" {
		asset = types.BTY
	}
	res := &RoundResult{
		RoundID:       round.RoundID,
		Creator:       round.Creator,
		Phase:         rpsty.PhaseName(round.Phase),
		State:         rpsty.ResolutionState(round.Phase),
		BetAmount:     client.FormatAmount(round.BetAmount, types.Coin),
		StakeAsset:    asset,
		TimeoutPolicy: rpsty.PolicyName(round.TimeoutPolicy),
		CreateTime:    round.CreateTime,
		Deadline:      round.Deadline,
		Winner:        round.Winner,
		Pending:       len(round.Pending),
	}
	for _, slot := range round.Slots {
		p := &PlayerInfo{Addr: slot.Addr, Status: slot.Status, Commitment: common.ToHex(slot.Commitment)}
		if slot.Status == rpsty.StatusRevealed {
			p.Move = rpsty.MoveName(slot.Move)
		}
		res.Players = append(res.Players, p)
	}
	switch round.Outcome {
	case rpsty.OutcomeTie:
		res.Result = "tie"
	case rpsty.OutcomePlayerAWins, rpsty.OutcomePlayerBWins:
		res.Result = "winner " + round.Winner
	}
	return res
}

// InfoCmd 游戏信息
func InfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a round",
		Run:   info,
	}
	addRoundFlag(cmd)
	return cmd
}

func info(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	client.NewCtx(cmd).Query(rpsty.RpsX, "GetRoundInfo", &types.ReqString{Data: roundID}, func(reply types.Message) (interface{}, error) {
		return toRoundResult(reply.(*rpsty.Round)), nil
	})
}

func addPlayerFlags(cmd *cobra.Command) {
	addRoundFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
}

// StatusCmd 玩家状态
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status of a player: 0 not joined, 1 committed, 2 revealed",
		Run: func(cmd *cobra.Command, args []string) {
			queryPlayer(cmd, "GetPlayerStatus")
		},
	}
	addPlayerFlags(cmd)
	return cmd
}

// MovesCmd 玩家的承诺哈希
func MovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Show the commitment of a player",
		Run: func(cmd *cobra.Command, args []string) {
			queryPlayer(cmd, "GetMoves")
		},
	}
	addPlayerFlags(cmd)
	return cmd
}

func queryPlayer(cmd *cobra.Command, funcName string) {
	roundID, _ := cmd.Flags().GetString("round")
	addr, _ := cmd.Flags().GetString("addr")
	client.NewCtx(cmd).Query(rpsty.RpsX, funcName, &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: addr}, nil)
}

// ListCmd 按阶段或者地址列出游戏
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rounds by phase, or by address when --addr is given",
		Run:   list,
	}
	cmd.Flags().Int32P("phase", "p", 0, "phase: 0 empty, 1 one committed, 2 both committed, 3 one revealed, 4 resolved, 5 expired")
	cmd.Flags().StringP("addr", "a", "", "player or creator address")
	cmd.Flags().Int32P("count", "c", rpsty.DefaultCount, "count")
	cmd.Flags().Int32P("direction", "d", 0, "0 desc, 1 asc")
	cmd.Flags().Int64P("index", "i", 0, "start after this index")
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	phase, _ := cmd.Flags().GetInt32("phase")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &rpsty.ReqRoundList{Phase: phase, Addr: addr, Count: count, Direction: direction, Index: index}
	client.NewCtx(cmd).Query(rpsty.RpsX, "GetRoundList", req, func(reply types.Message) (interface{}, error) {
		var res []*RoundResult
		for _, round := range reply.(*rpsty.ReplyRoundList).Rounds {
			res = append(res, toRoundResult(round))
		}
		return res, nil
	})
}

// PendingCmd 待领取的付款
func PendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Show the failed payouts of a round",
		Run:   pending,
	}
	addRoundFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "receiver address, empty for all")
	return cmd
}

func pending(cmd *cobra.Command, args []string) {
	roundID, _ := cmd.Flags().GetString("round")
	addr, _ := cmd.Flags().GetString("addr")
	client.NewCtx(cmd).Query(rpsty.RpsX, "GetPendingPayouts", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: addr}, nil)
}
