// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// RpsAction rps 执行器的 action, Ty 决定使用哪个字段
type RpsAction struct {
	Create   *RpsCreate   `protobuf:"bytes,1,opt,name=create,proto3" json:"create,omitempty"`
	Commit   *RpsCommit   `protobuf:"bytes,2,opt,name=commit,proto3" json:"commit,omitempty"`
	Reveal   *RpsReveal   `protobuf:"bytes,3,opt,name=reveal,proto3" json:"reveal,omitempty"`
	Claim    *RpsClaim    `protobuf:"bytes,4,opt,name=claim,proto3" json:"claim,omitempty"`
	Withdraw *RpsWithdraw `protobuf:"bytes,5,opt,name=withdraw,proto3" json:"withdraw,omitempty"`
	Ty       int32        `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *RpsAction) Reset()         { *m = RpsAction{} }
func (m *RpsAction) String() string { return proto.CompactTextString(m) }
func (*RpsAction) ProtoMessage()    {}

func (m *RpsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// RpsCreate 创建一局游戏, 零值字段使用配置中的默认值
type RpsCreate struct {
	RoundDuration int64  `protobuf:"varint,1,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	BetAmount     int64  `protobuf:"varint,2,opt,name=betAmount,proto3" json:"betAmount,omitempty"`
	StakeAsset    string `protobuf:"bytes,3,opt,name=stakeAsset,proto3" json:"stakeAsset,omitempty"`
	TimeoutPolicy int32  `protobuf:"varint,4,opt,name=timeoutPolicy,proto3" json:"timeoutPolicy,omitempty"`
}

func (m *RpsCreate) Reset()         { *m = RpsCreate{} }
func (m *RpsCreate) String() string { return proto.CompactTextString(m) }
func (*RpsCreate) ProtoMessage()    {}

// RpsCommit 提交出拳的承诺哈希, 同时缴纳押金
type RpsCommit struct {
	RoundID    string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Commitment []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment,omitempty"`
}

func (m *RpsCommit) Reset()         { *m = RpsCommit{} }
func (m *RpsCommit) String() string { return proto.CompactTextString(m) }
func (*RpsCommit) ProtoMessage()    {}

// RpsReveal 公开出拳和盐
type RpsReveal struct {
	RoundID string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Move    int32  `protobuf:"varint,2,opt,name=move,proto3" json:"move,omitempty"`
	Salt    string `protobuf:"bytes,3,opt,name=salt,proto3" json:"salt,omitempty"`
}

func (m *RpsReveal) Reset()         { *m = RpsReveal{} }
func (m *RpsReveal) String() string { return proto.CompactTextString(m) }
func (*RpsReveal) ProtoMessage()    {}

// RpsClaim 超时后结束游戏
type RpsClaim struct {
	RoundID string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
}

func (m *RpsClaim) Reset()         { *m = RpsClaim{} }
func (m *RpsClaim) String() string { return proto.CompactTextString(m) }
func (*RpsClaim) ProtoMessage()    {}

// RpsWithdraw 重新领取之前失败的付款
type RpsWithdraw struct {
	RoundID string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
}

func (m *RpsWithdraw) Reset()         { *m = RpsWithdraw{} }
func (m *RpsWithdraw) String() string { return proto.CompactTextString(m) }
func (*RpsWithdraw) ProtoMessage()    {}

// PlayerSlot 玩家在一局游戏中的状态
type PlayerSlot struct {
	Addr       string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Commitment []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment,omitempty"`
	Status     int32  `protobuf:"varint,3,opt,name=status,proto3" json:"status,omitempty"`
	Move       int32  `protobuf:"varint,4,opt,name=move,proto3" json:"move,omitempty"`
	Stake      int64  `protobuf:"varint,5,opt,name=stake,proto3" json:"stake,omitempty"`
	CommitTime int64  `protobuf:"varint,6,opt,name=commitTime,proto3" json:"commitTime,omitempty"`
	RevealTime int64  `protobuf:"varint,7,opt,name=revealTime,proto3" json:"revealTime,omitempty"`
}

func (m *PlayerSlot) Reset()         { *m = PlayerSlot{} }
func (m *PlayerSlot) String() string { return proto.CompactTextString(m) }
func (*PlayerSlot) ProtoMessage()    {}

func (m *PlayerSlot) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *PlayerSlot) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return StatusNotJoined
}

// PendingPayout 付款失败后记录的待领取金额, 资金仍然由押金账本托管
type PendingPayout struct {
	RoundID string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	From    string `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To      string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Amount  int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Asset   string `protobuf:"bytes,5,opt,name=asset,proto3" json:"asset,omitempty"`
	Err     string `protobuf:"bytes,6,opt,name=err,proto3" json:"err,omitempty"`
}

func (m *PendingPayout) Reset()         { *m = PendingPayout{} }
func (m *PendingPayout) String() string { return proto.CompactTextString(m) }
func (*PendingPayout) ProtoMessage()    {}

// Round 一局游戏的全部状态, Slots 按照提交顺序排列, 第一个是 A, 第二个是 B
type Round struct {
	RoundID       string           `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Creator       string           `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	CreateTime    int64            `protobuf:"varint,3,opt,name=createTime,proto3" json:"createTime,omitempty"`
	Deadline      int64            `protobuf:"varint,4,opt,name=deadline,proto3" json:"deadline,omitempty"`
	RoundDuration int64            `protobuf:"varint,5,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	BetAmount     int64            `protobuf:"varint,6,opt,name=betAmount,proto3" json:"betAmount,omitempty"`
	StakeAsset    string           `protobuf:"bytes,7,opt,name=stakeAsset,proto3" json:"stakeAsset,omitempty"`
	TimeoutPolicy int32            `protobuf:"varint,8,opt,name=timeoutPolicy,proto3" json:"timeoutPolicy,omitempty"`
	Phase         int32            `protobuf:"varint,9,opt,name=phase,proto3" json:"phase,omitempty"`
	Slots         []*PlayerSlot    `protobuf:"bytes,10,rep,name=slots,proto3" json:"slots,omitempty"`
	Outcome       int32            `protobuf:"varint,11,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Winner        string           `protobuf:"bytes,12,opt,name=winner,proto3" json:"winner,omitempty"`
	CloseTime     int64            `protobuf:"varint,13,opt,name=closeTime,proto3" json:"closeTime,omitempty"`
	Pending       []*PendingPayout `protobuf:"bytes,14,rep,name=pending,proto3" json:"pending,omitempty"`
	Index         int64            `protobuf:"varint,15,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex     int64            `protobuf:"varint,16,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *Round) Reset()         { *m = Round{} }
func (m *Round) String() string { return proto.CompactTextString(m) }
func (*Round) ProtoMessage()    {}

func (m *Round) GetSlots() []*PlayerSlot {
	if m != nil {
		return m.Slots
	}
	return nil
}

// ReceiptRps 每个 action 的日志, 本地索引根据它更新
type ReceiptRps struct {
	RoundID   string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Phase     int32  `protobuf:"varint,3,opt,name=phase,proto3" json:"phase,omitempty"`
	PrevPhase int32  `protobuf:"varint,4,opt,name=prevPhase,proto3" json:"prevPhase,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex int64  `protobuf:"varint,6,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
	// Joined 创建或者加入游戏的地址, 需要写入地址索引
	Joined  string `protobuf:"bytes,7,opt,name=joined,proto3" json:"joined,omitempty"`
	TxIndex int64  `protobuf:"varint,8,opt,name=txIndex,proto3" json:"txIndex,omitempty"`
	Outcome int32  `protobuf:"varint,9,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Winner  string `protobuf:"bytes,10,opt,name=winner,proto3" json:"winner,omitempty"`
	Summary string `protobuf:"bytes,11,opt,name=summary,proto3" json:"summary,omitempty"`
}

func (m *ReceiptRps) Reset()         { *m = ReceiptRps{} }
func (m *ReceiptRps) String() string { return proto.CompactTextString(m) }
func (*ReceiptRps) ProtoMessage()    {}

// ReqRoundPlayer 按游戏和地址查询
type ReqRoundPlayer struct {
	RoundID string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqRoundPlayer) Reset()         { *m = ReqRoundPlayer{} }
func (m *ReqRoundPlayer) String() string { return proto.CompactTextString(m) }
func (*ReqRoundPlayer) ProtoMessage()    {}

// ReplyMoves 玩家提交的承诺哈希, 没有提交时为空
type ReplyMoves struct {
	RoundID    string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Addr       string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Commitment string `protobuf:"bytes,3,opt,name=commitment,proto3" json:"commitment,omitempty"`
}

func (m *ReplyMoves) Reset()         { *m = ReplyMoves{} }
func (m *ReplyMoves) String() string { return proto.CompactTextString(m) }
func (*ReplyMoves) ProtoMessage()    {}

// ReplyPlayerStatus 玩家状态, 公开以后才有 Move
type ReplyPlayerStatus struct {
	RoundID string `protobuf:"bytes,1,opt,name=roundID,proto3" json:"roundID,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Status  int32  `protobuf:"varint,3,opt,name=status,proto3" json:"status,omitempty"`
	Move    int32  `protobuf:"varint,4,opt,name=move,proto3" json:"move,omitempty"`
}

func (m *ReplyPlayerStatus) Reset()         { *m = ReplyPlayerStatus{} }
func (m *ReplyPlayerStatus) String() string { return proto.CompactTextString(m) }
func (*ReplyPlayerStatus) ProtoMessage()    {}

// ReqRoundList 按阶段或者地址列出游戏, Addr 不为空时使用地址索引
type ReqRoundList struct {
	Phase     int32  `protobuf:"varint,1,opt,name=phase,proto3" json:"phase,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqRoundList) Reset()         { *m = ReqRoundList{} }
func (m *ReqRoundList) String() string { return proto.CompactTextString(m) }
func (*ReqRoundList) ProtoMessage()    {}

// ReplyRoundList 游戏列表
type ReplyRoundList struct {
	Rounds []*Round `protobuf:"bytes,1,rep,name=rounds,proto3" json:"rounds,omitempty"`
}

func (m *ReplyRoundList) Reset()         { *m = ReplyRoundList{} }
func (m *ReplyRoundList) String() string { return proto.CompactTextString(m) }
func (*ReplyRoundList) ProtoMessage()    {}

// ReplyPendingPayouts 待领取的付款
type ReplyPendingPayouts struct {
	Payouts []*PendingPayout `protobuf:"bytes,1,rep,name=payouts,proto3" json:"payouts,omitempty"`
}

func (m *ReplyPendingPayouts) Reset()         { *m = ReplyPendingPayouts{} }
func (m *ReplyPendingPayouts) String() string { return proto.CompactTextString(m) }
func (*ReplyPendingPayouts) ProtoMessage()    {}
