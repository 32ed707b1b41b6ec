// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
	registerDBCreator(BadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(path.Join(dir, name+".db"))
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync badger 的写入都是同步落盘
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 删除
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//List 列表
func (db *GoBadgerDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := NewListHelper(db).List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, ErrNotFoundInDb
	}
	return values, nil
}

//Iterator 迭代器, 使用只读事务
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{txn: txn, it: it, prefix: cloneByte(prefix), reverse: reverse}
}

type goBadgerDBIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	prefix  []byte
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		if len(dbit.prefix) == 0 {
			dbit.it.Rewind()
		} else {
			dbit.it.Seek(dbit.prefix)
		}
		return dbit.Valid()
	}
	end := prefixEnd(dbit.prefix)
	if end == nil {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	// 反向 Seek 定位到不大于 end 的最后一个 key
	dbit.it.Seek(end)
	if dbit.it.Valid() && bytes.Equal(dbit.it.Item().Key(), end) {
		dbit.it.Next()
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	dbit.it.Seek(key)
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().KeyCopy(nil)
}

func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

//NewBatch 批量写入, Write 时在一个事务中提交
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db}
}

func (mBatch *badgerBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *badgerBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), nil})
	mBatch.size++
}

func (mBatch *badgerBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, w := range mBatch.writes {
			var err error
			if w.v == nil {
				err = txn.Delete(w.k)
			} else {
				err = txn.Set(w.k, w.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *badgerBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *badgerBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
