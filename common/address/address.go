// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 计算执行器地址以及用户地址, base58check 编码
// 编码格式: version(1) + ripemd160(sha256(pubkey))(20) + checksum(4)
package address

import (
	"bytes"

	"github.com/33cn/rps/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

const (
	//MaxExecNameLength 执行器名最大长度
	MaxExecNameLength = 100

	addrLen     = 25
	checksumLen = 4
)

var (
	execSeed  = []byte("address seed bytes for public key")
	labelSeed = []byte("address seed bytes for player label")

	execAddrCache, _  = lru.New(1024)
	checkAddrCache, _ = lru.New(10240)
)

// ErrCheckChecksum 地址校验和错误
var ErrCheckChecksum = errors.New("Address Checksum error")

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Enc58str string
}

//ExecPubKey 执行器的公钥, 执行器没有私钥, 资产只能由执行器代码转出
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	return common.Sha2Sum(append(common.CopyBytes(execSeed), name...))
}

//ExecAddress 执行器地址, 结果缓存
func ExecAddress(name string) string {
	if value, ok := execAddrCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name)).String()
	execAddrCache.Add(name, addr)
	return addr
}

// LabelAddress 根据名字生成确定的用户地址, 命令行和测试用来区分玩家
func LabelAddress(label string) string {
	return PubKeyToAddress(common.Sha256(append(common.CopyBytes(labelSeed), label...))).String()
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(pubkey []byte) *Address {
	a := &Address{}
	copy(a.Hash160[:], common.Rimp160AfterSha256(pubkey))
	return a
}

func checksum(payload []byte) []byte {
	return common.Sha2Sum(payload)[:checksumLen]
}

//CheckAddress 检查地址格式以及校验和, 结果缓存
func CheckAddress(addr string) error {
	if value, ok := checkAddrCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, err := NewAddrFromString(addr)
	if err != nil {
		checkAddrCache.Add(addr, err)
		return err
	}
	checkAddrCache.Add(addr, nil)
	return nil
}

//NewAddrFromString 解析 base58 地址
func NewAddrFromString(s string) (*Address, error) {
	dec := base58.Decode(s)
	if len(dec) == 0 {
		return nil, errors.Errorf("Cannot decode b58 string '%s'", s)
	}
	if len(dec) != addrLen {
		return nil, errors.Errorf("Address length error %d", len(dec))
	}
	if !bytes.Equal(checksum(dec[:addrLen-checksumLen]), dec[addrLen-checksumLen:]) {
		return nil, ErrCheckChecksum
	}
	a := &Address{Version: dec[0], Enc58str: s}
	copy(a.Hash160[:], dec[1:21])
	return a, nil
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		buf := make([]byte, 0, addrLen)
		buf = append(buf, a.Version)
		buf = append(buf, a.Hash160[:]...)
		buf = append(buf, checksum(buf)...)
		a.Enc58str = base58.Encode(buf)
	}
	return a.Enc58str
}
