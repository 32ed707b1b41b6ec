// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 定义执行器、账户、收据等公共数据结构以及编解码函数
package types

import (
	"bytes"
	"encoding/json"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
)

// Message 所有存入状态数据库以及交易payload的消息
type Message = proto.Message

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//JSONToPB  JSON格式转换成protobuffer格式
func JSONToPB(data []byte, msg proto.Message) error {
	return jsonpb.Unmarshal(bytes.NewReader(data), msg)
}

// PBToJSON 消息类型转换
func PBToJSON(r Message) ([]byte, error) {
	encode := &jsonpb.Marshaler{EmitDefaults: true, Indent: "    "}
	var buf bytes.Buffer
	if err := encode.Marshal(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustPBToJSON panic when error
func MustPBToJSON(req Message) []byte {
	data, err := PBToJSON(req)
	if err != nil {
		panic(err)
	}
	return data
}

// MustDecode 解析执行器子配置, 数据错误直接panic
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

// CheckAmount 检查金额是否合法
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// CloneAccount 复制账户, 收据中保存修改前的状态
func CloneAccount(acc *Account) *Account {
	return &Account{
		Currency: acc.Currency,
		Balance:  acc.Balance,
		Frozen:   acc.Frozen,
		Addr:     acc.Addr,
	}
}

// MergeReceipt 合并两个收据, 两者都必须是执行成功的收据
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}
