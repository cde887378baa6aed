package badger

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// DefaultGCInterval 默认GC间隔
const DefaultGCInterval = time.Minute * 5

// ErrCloseTimeout 关闭超时
var ErrCloseTimeout = errors.New("badger engine close timeout")

// Engine badger引擎
type Engine struct {
	db *badger.DB // badgerDB

	gcInterval   time.Duration      // GC间隔时间
	gcUpdateChan chan time.Duration // GC更新间隔时间信号

	done      chan struct{} // 退出信号
	closed    chan struct{} // 退出成功信号
	closeOnce sync.Once
	err       error // 错误
}

// New 创建一个badger引擎
func New(opt badger.Options) (*Engine, error) {
	return open(opt, DefaultGCInterval)
}

// Default 创建一个默认的badger引擎
func Default(dir string) (*Engine, error) {
	return open(badger.DefaultOptions(dir).WithLogger(nil), DefaultGCInterval)
}

// ReadOnly 以只读方式打开已存在的badger目录, 目录不存在时返回错误且不会创建
func ReadOnly(dir string) (*Engine, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("database %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("database %s: not a directory", dir)
	}
	return open(badger.DefaultOptions(dir).WithReadOnly(true).WithLogger(nil), DefaultGCInterval)
}

// InMemory 创建一个内存中的badger引擎
func InMemory() (*Engine, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil), DefaultGCInterval)
}

// open 打开数据库并启动后台GC
func open(opt badger.Options, gcInterval time.Duration) (*Engine, error) {
	db, err := badger.Open(opt)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		db: db,

		gcInterval:   gcInterval,
		gcUpdateChan: make(chan time.Duration),

		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}
	go e.listener()
	return e, nil
}

// listener 监听GC与退出信号
func (e *Engine) listener() {
	ticker := time.NewTicker(e.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// 内存或只读模式以及没有可回收数据时返回错误, 忽略即可
			_ = e.db.RunValueLogGC(0.5)
		case interval := <-e.gcUpdateChan:
			e.gcInterval = interval
			ticker.Reset(interval)
		case <-e.done:
			e.err = e.db.Close()
			close(e.closed)
			return
		}
	}
}

// Close 关闭badger引擎, 可重复调用
func (e *Engine) Close() error {
	e.closeOnce.Do(func() { close(e.done) })
	select {
	case <-e.closed:
		return e.err
	case <-time.After(time.Second * 5):
		return ErrCloseTimeout
	}
}

// SetGCInterval 设置GC间隔
func (e *Engine) SetGCInterval(interval time.Duration) {
	if 0 >= interval {
		return
	}
	select {
	case e.gcUpdateChan <- interval:
	case <-e.done:
	}
}
