// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/33cn/rps/common"
)

// Hash 交易哈希, 交易的唯一标识
func (m *Transaction) Hash() []byte {
	return common.Sha256(Encode(m))
}

// CreateTx 根据执行器名称和action构造交易
func CreateTx(execer string, from string, action Message, amount int64, nonce int64) *Transaction {
	tx := &Transaction{
		Execer: []byte(execer),
		From:   from,
		Amount: amount,
		Nonce:  nonce,
	}
	if action != nil {
		tx.Payload = Encode(action)
	}
	return tx
}

// TxIndex 本地索引使用的交易位置
func TxIndex(height int64, index int) int64 {
	return height*MaxTxsPerBlock + int64(index)
}

// HeightIndexStr 本地索引中使用的定长位置字符串
func HeightIndexStr(height, index int64) string {
	return fmt.Sprintf("%018d", height*MaxTxsPerBlock+index)
}
