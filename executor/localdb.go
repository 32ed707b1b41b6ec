// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
)

// LocalDB 本地索引数据库, 执行器的 ExecLocal 结果在交易执行后写入
type LocalDB struct {
	db dbm.DB
}

// NewLocalDB new local db
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{db: db}
}

// Get 读取
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	value, err := l.db.Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set 写入, value 为 nil 时删除
func (l *LocalDB) Set(key []byte, value []byte) error {
	if value == nil {
		return l.db.Delete(key)
	}
	return l.db.Set(key, value)
}

// List 分页查询
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values, err := l.db.List(prefix, key, count, direction)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return values, nil
}

// ApplyLocalDBSet 批量写入一组本地数据
func (l *LocalDB) ApplyLocalDBSet(set *types.LocalDBSet) error {
	if set == nil || len(set.KV) == 0 {
		return nil
	}
	batch := l.db.NewBatch(false)
	for _, kv := range set.KV {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	return batch.Write()
}
