package datastructure

import (
	"testing"
)

func TestExtractMinOrder(t *testing.T) {
	pq := NewFourAryHeap[int]()

	ranks := []float64{7, 2, 9, 4, 1, 8, 3, 6, 5}
	for item, rank := range ranks {
		pq.Insert(NewPriorityQueueNode(rank, item))
	}

	prev := -1.0
	for !pq.IsEmpty() {
		node, err := pq.ExtractMin()
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if node.GetRank() < prev {
			t.Errorf("rank %f popped after %f", node.GetRank(), prev)
		}
		prev = node.GetRank()
	}
}

func TestEqualRanksPopInInsertionOrder(t *testing.T) {
	pq := NewBinaryHeap[int]()

	pq.Insert(NewPriorityQueueNode(5.0, 10))
	pq.Insert(NewPriorityQueueNode(5.0, 20))
	pq.Insert(NewPriorityQueueNode(3.0, 30))
	pq.Insert(NewPriorityQueueNode(5.0, 40))

	want := []int{30, 10, 20, 40}
	for i, wantItem := range want {
		node, err := pq.ExtractMin()
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if node.GetItem() != wantItem {
			t.Errorf("pop %d: got item %d, want %d", i, node.GetItem(), wantItem)
		}
	}
}

func TestDecreaseKey(t *testing.T) {
	pq := NewFourAryHeap[int]()

	nodes := make([]*PriorityQueueNode[int], 0)
	for item, rank := range []float64{10, 20, 30, 40} {
		node := NewPriorityQueueNode(rank, item)
		pq.Insert(node)
		nodes = append(nodes, node)
	}

	if err := pq.DecreaseKey(nodes[3], 5); err != nil {
		t.Fatalf("err: %v", err)
	}
	min, err := pq.GetMin()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if min.GetItem() != 3 || min.GetRank() != 5 {
		t.Errorf("got min item %d rank %f, want item 3 rank 5", min.GetItem(), min.GetRank())
	}

	// raising a rank through DecreaseKey must be rejected
	if err := pq.DecreaseKey(nodes[1], 100); err == nil {
		t.Error("want error when increasing a rank")
	}
}

func TestEmptyHeap(t *testing.T) {
	pq := NewFourAryHeap[int]()

	if _, err := pq.ExtractMin(); err == nil {
		t.Error("want error extracting from empty heap")
	}
	if _, err := pq.GetMin(); err == nil {
		t.Error("want error peeking an empty heap")
	}
}

func TestClear(t *testing.T) {
	pq := NewBinaryHeap[int]()
	pq.Insert(NewPriorityQueueNode(3.0, 1))
	pq.Insert(NewPriorityQueueNode(1.0, 2))

	pq.Clear()
	if !pq.IsEmpty() || pq.Size() != 0 {
		t.Errorf("cleared heap should be empty, size %d", pq.Size())
	}
	if _, err := pq.ExtractMin(); err == nil {
		t.Error("want error extracting from a cleared heap")
	}

	pq.Insert(NewPriorityQueueNode(2.0, 3))
	min, err := pq.GetMin()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if min.GetItem() != 3 {
		t.Errorf("got min item %d, want 3", min.GetItem())
	}
}
