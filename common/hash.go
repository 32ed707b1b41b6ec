// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 哈希以及十六进制编码相关的函数
package common

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
)

//ToHex []byte -> hex, 带0x前缀, 空值返回空字符串
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return hexutil.Encode(b)
}

//FromHex hex -> []byte, 0x 前缀可选, 奇数长度时高位补0
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// CopyBytes 复制, nil 保持 nil
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}

//Sha256 sha256
func Sha256(b []byte) []byte {
	data := sha256.Sum256(b)
	return data[:]
}

//Sha2Sum 两次sha256, 用于地址校验和
func Sha2Sum(b []byte) []byte {
	return Sha256(Sha256(b))
}

//Rimp160AfterSha256 先sha256, 再ripemd160
func Rimp160AfterSha256(b []byte) []byte {
	rm := ripemd160.New()
	rm.Write(Sha256(b))
	return rm.Sum(nil)
}

// Keccak256 与 solidity keccak256(abi.encodePacked(...)) 相同, 参数依次拼接
func Keccak256(data ...[]byte) []byte {
	return crypto.Keccak256(data...)
}
