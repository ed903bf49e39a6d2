package concurrent

import (
	"errors"
	"sync"
	"time"
)

type JobFunc[T any, G any] func(job T) G

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup

	sem   chan struct{}
	tasks chan func()
}

var ErrScheduleTimeout = errors.New("schedule error: timed out")

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
		sem:        make(chan struct{}, numWorkers),
		tasks:      make(chan func(), jobQueueSize),
	}
}

func (wp *WorkerPool[any, G]) worker(id int, jobFunc JobFunc[any, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		res := jobFunc(job)
		wp.results <- res
	}
}

func (wp *WorkerPool[any, G]) Start(jobFunc JobFunc[any, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, jobFunc)
	}
}

func (wp *WorkerPool[any, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[any, G]) AddJob(job any) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[any, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[any, G]) Close() {
	close(wp.jobQueue)
}

// Spawn starts n long-lived task workers for Schedule/ScheduleTimeout. Used
// by the websocket accept loop, where tasks are scheduled one-off instead of
// flowing through the typed job queue.
func (wp *WorkerPool[any, G]) Spawn(n int) {
	for i := 0; i < n; i++ {
		wp.sem <- struct{}{}
		go wp.taskWorker(nil)
	}
}

// Schedule runs task on the pool, spawning a new worker when under the
// worker limit, blocking otherwise.
func (wp *WorkerPool[any, G]) Schedule(task func()) {
	select {
	case wp.tasks <- task:
	case wp.sem <- struct{}{}:
		go wp.taskWorker(task)
	}
}

// ScheduleTimeout is Schedule that gives up with ErrScheduleTimeout when no
// worker picks the task up within timeout.
func (wp *WorkerPool[any, G]) ScheduleTimeout(timeout time.Duration, task func()) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case wp.tasks <- task:
		return nil
	case wp.sem <- struct{}{}:
		go wp.taskWorker(task)
		return nil
	case <-timer.C:
		return ErrScheduleTimeout
	}
}

func (wp *WorkerPool[any, G]) taskWorker(task func()) {
	defer func() { <-wp.sem }()

	if task != nil {
		task()
	}
	for task := range wp.tasks {
		task()
	}
}
