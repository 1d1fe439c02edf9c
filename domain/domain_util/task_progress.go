package domain_util

import (
	"sync"
	"sync/atomic"
)

type TaskProgress struct {
	ID             string
	TotalItems     int32
	ProcessedItems int32
	FailedItems    int32
	Mu             sync.Mutex
	Initialized    bool
	Status         string
}

func (tp *TaskProgress) AddTotalItems(count int) {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	atomic.AddInt32(&tp.TotalItems, int32(count))
	tp.Initialized = true
}

func (tp *TaskProgress) IncrProcessed() {
	atomic.AddInt32(&tp.ProcessedItems, 1)
}

func (tp *TaskProgress) IncrFailed() {
	atomic.AddInt32(&tp.FailedItems, 1)
}

func (tp *TaskProgress) SetStatus(status string) {
	tp.Mu.Lock()
	defer tp.Mu.Unlock()
	tp.Status = status
}
