// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 状态数据库以及本地数据库的存储后端
package db

import (
	"bytes"
	"errors"

	log "github.com/inconshreveable/log15"
	pkgerr "github.com/pkg/errors"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 执行器使用的状态数据库接口, 支持事务
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Begin()
	Rollback()
	Commit() error
}

//KVDB 本地数据库接口
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Lister
}

//Lister 列表接口
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB 存储后端接口
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
}

//Batch 批量写入
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 前缀迭代器, reverse 时 Rewind 指向最后一个元素, Seek 定位到不大于 key 的最后一个元素
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

// 后端名称
const (
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
	BadgerDBBackendStr   = "badger"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 根据后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		dlog.Error("NewDB", "backend", backend, "err", "not support")
		return nil, pkgerr.Errorf("db backend %s not support", backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, pkgerr.Wrapf(err, "init db %s", backend)
	}
	return db, nil
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// prefixEnd 大于所有以 prefix 开头的 key 的最小值, 不存在时返回 nil
func prefixEnd(prefix []byte) []byte {
	end := cloneByte(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func hasPrefix(key, prefix []byte) bool {
	return bytes.HasPrefix(key, prefix)
}
