package badger

import (
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerTX 事务函数
type BadgerTX func(tx *badger.Txn) error

// TxSet 事务设置参数操作
func (e *Engine) TxSet(tx BadgerTX) error {
	return e.db.Update(tx)
}

// TxGet 事务获取参数操作
func (e *Engine) TxGet(tx BadgerTX) error {
	return e.db.View(tx)
}

// Set 设置参数
func (e *Engine) Set(key, value []byte) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.Set(key, value)
	})
}

// Get 获取参数, key不存在时返回 badger.ErrKeyNotFound
func (e *Engine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.TxGet(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

// Del 删除参数
func (e *Engine) Del(key []byte) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.Delete(key)
	})
}

// BadgerBatch 批量操作
type BadgerBatch func(*badger.WriteBatch) error

// Batch 批量写入, bb 返回nil时提交
func (e *Engine) Batch(bb BadgerBatch) error {
	wb := e.db.NewWriteBatch()
	defer wb.Cancel()
	if err := bb(wb); err != nil {
		return err
	}
	return wb.Flush()
}

// Backup 备份数据库
func (e *Engine) Backup(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err = e.db.Backup(f, 0); err != nil {
		return err
	}
	return nil
}

// GetKey 获取所有key
// @param prefix 前缀, 为nil时返回全部key
func (e *Engine) GetKey(prefix []byte) ([][]byte, error) {
	var keys [][]byte

	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // 只获取键，不获取值
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})

	return keys, err
}

// Keys 以字符串形式返回指定前缀的所有key
func (e *Engine) Keys(prefix string) ([]string, error) {
	var p []byte
	if prefix != "" {
		p = []byte(prefix)
	}
	raw, err := e.GetKey(p)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = string(k)
	}
	return keys, nil
}

// Exists 判断key是否存在
func (e *Engine) Exists(key []byte) (bool, error) {
	var exists bool
	err := e.TxGet(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		if err == nil {
			exists = true
			return nil
		}
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
	return exists, err
}
