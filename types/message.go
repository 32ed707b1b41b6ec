// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Account 账户信息
type Account struct {
	Currency int32  `protobuf:"varint,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Balance  int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	Frozen   int64  `protobuf:"varint,3,opt,name=frozen,proto3" json:"frozen,omitempty"`
	Addr     string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

func (m *Account) GetCurrency() int32 {
	if m != nil {
		return m.Currency
	}
	return 0
}

func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

func (m *Account) GetFrozen() int64 {
	if m != nil {
		return m.Frozen
	}
	return 0
}

func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReceiptAccountTransfer 账户余额变化
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

// ReceiptExecAccountTransfer 执行器子账户余额变化
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `protobuf:"bytes,1,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
	Prev     *Account `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	Current  *Account `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptExecAccountTransfer) Reset()         { *m = ReceiptExecAccountTransfer{} }
func (m *ReceiptExecAccountTransfer) String() string { return proto.CompactTextString(m) }
func (*ReceiptExecAccountTransfer) ProtoMessage()    {}

// KeyValue 状态数据库的一条记录, Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

// ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return proto.CompactTextString(m) }
func (*ReceiptLog) ProtoMessage()    {}

func (m *ReceiptLog) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *ReceiptLog) GetLog() []byte {
	if m != nil {
		return m.Log
	}
	return nil
}

// Receipt 执行器返回的收据, KV 写入状态数据库
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

func (m *Receipt) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *Receipt) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

func (m *Receipt) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// ReceiptData 交易执行结果, 保存到区块详情中
type ReceiptData struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return proto.CompactTextString(m) }
func (*ReceiptData) ProtoMessage()    {}

func (m *ReceiptData) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *ReceiptData) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// LocalDBSet 本地数据库写入集合
type LocalDBSet struct {
	KV []*KeyValue `protobuf:"bytes,2,rep,name=KV,proto3" json:"KV,omitempty"`
}

func (m *LocalDBSet) Reset()         { *m = LocalDBSet{} }
func (m *LocalDBSet) String() string { return proto.CompactTextString(m) }
func (*LocalDBSet) ProtoMessage()    {}

func (m *LocalDBSet) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

// ReceiptLogErr 失败交易的错误信息
type ReceiptLogErr struct {
	Err string `protobuf:"bytes,1,opt,name=err,proto3" json:"err,omitempty"`
}

func (m *ReceiptLogErr) Reset()         { *m = ReceiptLogErr{} }
func (m *ReceiptLogErr) String() string { return proto.CompactTextString(m) }
func (*ReceiptLogErr) ProtoMessage()    {}

// Transaction 交易, From 由调用方填写, 不做签名校验
type Transaction struct {
	Execer  []byte `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Amount  int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Nonce   int64  `protobuf:"varint,4,opt,name=nonce,proto3" json:"nonce,omitempty"`
	From    string `protobuf:"bytes,5,opt,name=from,proto3" json:"from,omitempty"`
	To      string `protobuf:"bytes,6,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

func (m *Transaction) GetExecer() []byte {
	if m != nil {
		return m.Execer
	}
	return nil
}

func (m *Transaction) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *Transaction) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Transaction) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

func (m *Transaction) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

// Block 区块, 只保留执行需要的字段
type Block struct {
	Height    int64          `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	BlockTime int64          `protobuf:"varint,2,opt,name=blockTime,proto3" json:"blockTime,omitempty"`
	Txs       []*Transaction `protobuf:"bytes,3,rep,name=txs,proto3" json:"txs,omitempty"`
}

func (m *Block) Reset()         { *m = Block{} }
func (m *Block) String() string { return proto.CompactTextString(m) }
func (*Block) ProtoMessage()    {}

func (m *Block) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *Block) GetBlockTime() int64 {
	if m != nil {
		return m.BlockTime
	}
	return 0
}

// Header 最新区块头, 保存在本地数据库
type Header struct {
	Height    int64  `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	BlockTime int64  `protobuf:"varint,2,opt,name=blockTime,proto3" json:"blockTime,omitempty"`
	TxCount   int64  `protobuf:"varint,3,opt,name=txCount,proto3" json:"txCount,omitempty"`
	Hash      []byte `protobuf:"bytes,4,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *Header) Reset()         { *m = Header{} }
func (m *Header) String() string { return proto.CompactTextString(m) }
func (*Header) ProtoMessage()    {}

// ReqBalance 查询余额
type ReqBalance struct {
	Addr   string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Execer string `protobuf:"bytes,2,opt,name=execer,proto3" json:"execer,omitempty"`
	Symbol string `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
}

func (m *ReqBalance) Reset()         { *m = ReqBalance{} }
func (m *ReqBalance) String() string { return proto.CompactTextString(m) }
func (*ReqBalance) ProtoMessage()    {}

// ReplyBalance 主账户和执行器子账户余额
type ReplyBalance struct {
	Main *Account `protobuf:"bytes,1,opt,name=main,proto3" json:"main,omitempty"`
	Exec *Account `protobuf:"bytes,2,opt,name=exec,proto3" json:"exec,omitempty"`
}

func (m *ReplyBalance) Reset()         { *m = ReplyBalance{} }
func (m *ReplyBalance) String() string { return proto.CompactTextString(m) }
func (*ReplyBalance) ProtoMessage()    {}

// ReqString 字符串参数
type ReqString struct {
	Data string `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReqString) Reset()         { *m = ReqString{} }
func (m *ReqString) String() string { return proto.CompactTextString(m) }
func (*ReqString) ProtoMessage()    {}

// Int64 整数返回值
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return proto.CompactTextString(m) }
func (*Int64) ProtoMessage()    {}

// ReqNil 空参数
type ReqNil struct {
}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return proto.CompactTextString(m) }
func (*ReqNil) ProtoMessage()    {}
