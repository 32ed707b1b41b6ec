// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"sort"
	"sync"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB 内存数据库, 用于测试以及不需要持久化的场景
type GoMemDB struct {
	lock sync.RWMutex
	db   map[string][]byte
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db[string(key)] = cloneByte(value)
	return nil
}

//SetSync 内存中同步与异步相同
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	delete(db.db, string(key))
	return nil
}

//DeleteSync 删除
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//List 列表
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := NewListHelper(db).List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, ErrNotFoundInDb
	}
	return values, nil
}

//Iterator 迭代器, 创建时对数据做快照
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	db.lock.RLock()
	keys := make([]string, 0)
	for k := range db.db {
		if hasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	values := make(map[string][]byte, len(keys))
	for _, k := range keys {
		values[k] = db.db[k]
	}
	db.lock.RUnlock()
	sort.Strings(keys)
	return &goMemDBIt{keys: keys, values: values, reverse: reverse, index: -1}
}

type goMemDBIt struct {
	keys    []string
	values  map[string][]byte
	reverse bool
	index   int
}

func (it *goMemDBIt) Rewind() bool {
	if it.reverse {
		it.index = len(it.keys) - 1
	} else {
		it.index = 0
	}
	return it.Valid()
}

func (it *goMemDBIt) Next() bool {
	if it.reverse {
		it.index--
	} else {
		it.index++
	}
	return it.Valid()
}

func (it *goMemDBIt) Seek(key []byte) bool {
	// 第一个 >= key 的位置
	i := sort.Search(len(it.keys), func(i int) bool {
		return bytes.Compare([]byte(it.keys[i]), key) >= 0
	})
	if !it.reverse {
		it.index = i
		return it.Valid()
	}
	if i < len(it.keys) && bytes.Equal([]byte(it.keys[i]), key) {
		it.index = i
	} else {
		it.index = i - 1
	}
	return it.Valid()
}

func (it *goMemDBIt) Valid() bool {
	return it.index >= 0 && it.index < len(it.keys)
}

func (it *goMemDBIt) Key() []byte {
	if !it.Valid() {
		return nil
	}
	return []byte(it.keys[it.index])
}

func (it *goMemDBIt) Value() []byte {
	if !it.Valid() {
		return nil
	}
	return it.values[it.keys[it.index]]
}

func (it *goMemDBIt) ValueCopy() []byte {
	return cloneByte(it.Value())
}

func (it *goMemDBIt) Error() error {
	return nil
}

func (it *goMemDBIt) Close() {
	it.keys = nil
	it.values = nil
}

//NewBatch 批量写入
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct {
	k []byte
	v []byte
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
