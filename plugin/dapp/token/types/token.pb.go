// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// TokenAction token 执行器的 action, Ty 决定使用哪个字段
type TokenAction struct {
	Create       *TokenCreate       `protobuf:"bytes,1,opt,name=create,proto3" json:"create,omitempty"`
	Transfer     *TokenTransfer     `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
	Approve      *TokenApprove      `protobuf:"bytes,3,opt,name=approve,proto3" json:"approve,omitempty"`
	TransferFrom *TokenTransferFrom `protobuf:"bytes,4,opt,name=transferFrom,proto3" json:"transferFrom,omitempty"`
	Freeze       *TokenFreeze       `protobuf:"bytes,5,opt,name=freeze,proto3" json:"freeze,omitempty"`
	Ty           int32              `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *TokenAction) Reset()         { *m = TokenAction{} }
func (m *TokenAction) String() string { return proto.CompactTextString(m) }
func (*TokenAction) ProtoMessage()    {}

func (m *TokenAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

type TokenCreate struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Name   string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Total  int64  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *TokenCreate) Reset()         { *m = TokenCreate{} }
func (m *TokenCreate) String() string { return proto.CompactTextString(m) }
func (*TokenCreate) ProtoMessage()    {}

type TokenTransfer struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	To     string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenTransfer) Reset()         { *m = TokenTransfer{} }
func (m *TokenTransfer) String() string { return proto.CompactTextString(m) }
func (*TokenTransfer) ProtoMessage()    {}

type TokenApprove struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Spender string `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
	Amount  int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenApprove) Reset()         { *m = TokenApprove{} }
func (m *TokenApprove) String() string { return proto.CompactTextString(m) }
func (*TokenApprove) ProtoMessage()    {}

type TokenTransferFrom struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	From   string `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To     string `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenTransferFrom) Reset()         { *m = TokenTransferFrom{} }
func (m *TokenTransferFrom) String() string { return proto.CompactTextString(m) }
func (*TokenTransferFrom) ProtoMessage()    {}

type TokenFreeze struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Frozen bool   `protobuf:"varint,3,opt,name=frozen,proto3" json:"frozen,omitempty"`
}

func (m *TokenFreeze) Reset()         { *m = TokenFreeze{} }
func (m *TokenFreeze) String() string { return proto.CompactTextString(m) }
func (*TokenFreeze) ProtoMessage()    {}

// TokenInfo token 信息, 保存在状态数据库
type TokenInfo struct {
	Symbol     string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Name       string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Owner      string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Total      int64  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	CreateTime int64  `protobuf:"varint,5,opt,name=createTime,proto3" json:"createTime,omitempty"`
}

func (m *TokenInfo) Reset()         { *m = TokenInfo{} }
func (m *TokenInfo) String() string { return proto.CompactTextString(m) }
func (*TokenInfo) ProtoMessage()    {}

type ReceiptTokenCreate struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Owner  string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Total  int64  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *ReceiptTokenCreate) Reset()         { *m = ReceiptTokenCreate{} }
func (m *ReceiptTokenCreate) String() string { return proto.CompactTextString(m) }
func (*ReceiptTokenCreate) ProtoMessage()    {}

type ReceiptTokenApprove struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Owner   string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Spender string `protobuf:"bytes,3,opt,name=spender,proto3" json:"spender,omitempty"`
	Prev    int64  `protobuf:"varint,4,opt,name=prev,proto3" json:"prev,omitempty"`
	Current int64  `protobuf:"varint,5,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptTokenApprove) Reset()         { *m = ReceiptTokenApprove{} }
func (m *ReceiptTokenApprove) String() string { return proto.CompactTextString(m) }
func (*ReceiptTokenApprove) ProtoMessage()    {}

type ReceiptTokenFreeze struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Frozen bool   `protobuf:"varint,3,opt,name=frozen,proto3" json:"frozen,omitempty"`
}

func (m *ReceiptTokenFreeze) Reset()         { *m = ReceiptTokenFreeze{} }
func (m *ReceiptTokenFreeze) String() string { return proto.CompactTextString(m) }
func (*ReceiptTokenFreeze) ProtoMessage()    {}

type ReqTokenBalance struct {
	Symbol string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqTokenBalance) Reset()         { *m = ReqTokenBalance{} }
func (m *ReqTokenBalance) String() string { return proto.CompactTextString(m) }
func (*ReqTokenBalance) ProtoMessage()    {}

type ReplyTokenBalance struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Balance int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	Frozen  bool   `protobuf:"varint,4,opt,name=frozen,proto3" json:"frozen,omitempty"`
}

func (m *ReplyTokenBalance) Reset()         { *m = ReplyTokenBalance{} }
func (m *ReplyTokenBalance) String() string { return proto.CompactTextString(m) }
func (*ReplyTokenBalance) ProtoMessage()    {}

type ReqAllowance struct {
	Symbol  string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Owner   string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Spender string `protobuf:"bytes,3,opt,name=spender,proto3" json:"spender,omitempty"`
}

func (m *ReqAllowance) Reset()         { *m = ReqAllowance{} }
func (m *ReqAllowance) String() string { return proto.CompactTextString(m) }
func (*ReqAllowance) ProtoMessage()    {}

type ReqTokens struct {
	Count     int32  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,2,opt,name=direction,proto3" json:"direction,omitempty"`
	FromKey   string `protobuf:"bytes,3,opt,name=fromKey,proto3" json:"fromKey,omitempty"`
}

func (m *ReqTokens) Reset()         { *m = ReqTokens{} }
func (m *ReqTokens) String() string { return proto.CompactTextString(m) }
func (*ReqTokens) ProtoMessage()    {}

type ReplyTokens struct {
	Tokens []*TokenInfo `protobuf:"bytes,1,rep,name=tokens,proto3" json:"tokens,omitempty"`
}

func (m *ReplyTokens) Reset()         { *m = ReplyTokens{} }
func (m *ReplyTokens) String() string { return proto.CompactTextString(m) }
func (*ReplyTokens) ProtoMessage()    {}
