// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper 基于迭代器的分页查询
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

//PrefixScan 前缀下的全部 value
func (db *ListHelper) PrefixScan(prefix []byte) [][]byte {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	it.Rewind()
	return collect(it, 0, "PrefixScan")
}

//List 列表, key 为空时从头(ASC)或者从尾(DESC)开始, 否则从 key 的下一个开始, 不包含 key 本身
//count 为0时不限制数量. ListSeek 返回不大于 key 的最后一条记录的 [key, value]
func (db *ListHelper) List(prefix, key []byte, count, direction int32) [][]byte {
	if count == 1 && direction == ListSeek {
		return db.seek(prefix, key)
	}
	it := db.db.Iterator(prefix, direction == ListDESC)
	defer it.Close()
	if len(key) == 0 {
		it.Rewind()
	} else if it.Seek(key); it.Valid() && bytes.Equal(it.Key(), key) {
		it.Next()
	}
	return collect(it, count, "List")
}

func (db *ListHelper) seek(prefix, key []byte) [][]byte {
	it := db.db.Iterator(prefix, true)
	defer it.Close()
	if len(key) == 0 {
		it.Rewind()
	} else {
		it.Seek(key)
	}
	if !it.Valid() {
		return nil
	}
	return [][]byte{cloneByte(it.Key()), it.ValueCopy()}
}

//PrefixCount 前缀下的记录数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		if it.Error() != nil {
			listlog.Error("PrefixCount", "error", it.Error())
			return 0
		}
		count++
	}
	return count
}

// collect 从迭代器当前位置开始读取最多 count 个 value
func collect(it Iterator, count int32, op string) (values [][]byte) {
	for ; it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error(op, "error", it.Error())
			return nil
		}
		values = append(values, value)
		if count > 0 && int32(len(values)) == count {
			break
		}
	}
	return values
}
