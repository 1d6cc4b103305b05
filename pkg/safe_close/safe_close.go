// Package safe_close coordinates graceful shutdown of long-running handlers
// Package safe_close 协调长时间运行的处理器的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose broadcasts one close signal to every attached handler and waits for them.
// SafeClose 向所有已注册的处理器广播一次关闭信号并等待其结束
type SafeClose struct {
	closeCh   chan struct{}
	closeOnce sync.Once

	wg sync.WaitGroup

	mu  sync.Mutex
	err error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeCh: make(chan struct{}),
	}
}

// Attach runs fn in its own goroutine. fn must call done when it returns.
// Attach 在独立 goroutine 中运行 fn，fn 退出时必须调用 done
func (s *SafeClose) Attach(fn func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go fn(done, s.closeCh)
}

// SendCloseSignal closes the signal channel once; the first non-nil err is kept.
// SendCloseSignal 只关闭一次信号通道，保留第一个非空错误
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	if s.err == nil && err != nil {
		s.err = err
	}
	s.mu.Unlock()

	s.closeOnce.Do(func() {
		close(s.closeCh)
	})
}

// CloseSignal exposes the broadcast channel.
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeCh
}

// WaitClosed blocks until every attached handler called done.
// WaitClosed 阻塞直到所有处理器调用 done
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
