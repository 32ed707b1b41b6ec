// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
)

// StateDB 区块执行期间的状态数据库
// 每笔交易在 Begin 之后的写入保存在 txcache, 交易失败时 Rollback 全部丢弃, 成功时 Commit 到 cache
// 区块执行完成后 Flush 把 cache 批量写入底层数据库
type StateDB struct {
	db      dbm.DB
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		db:    db,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 交易的写入合并到区块缓存
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db, 缓存中 value 为 nil 表示已经删除
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	if value, ok := s.cache[skey]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := s.db.Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set set key value to state db, value 为 nil 时删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys 当前交易修改过的 key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Flush 把区块的写入批量保存到底层数据库
func (s *StateDB) Flush() error {
	if s.intx {
		s.resetTx()
	}
	batch := s.db.NewBatch(true)
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}

// Discard 丢弃区块缓存
func (s *StateDB) Discard() {
	s.resetTx()
	s.cache = make(map[string][]byte)
}
