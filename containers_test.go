package aoc

import (
	"slices"
	"testing"
)

func TestPQOrder(t *testing.T) {
	tests := []struct {
		name string
		pq   *PQ[int]
		want []int
	}{
		{"min", MinQueue[int](), []int{1, 2, 3, 5, 8}},
		{"max", MaxQueue[int](), []int{8, 5, 3, 2, 1}},
	}
	for _, tt := range tests {
		for _, p := range []int{5, 1, 8, 3, 2} {
			tt.pq.Push(&PQI[int]{V: p, P: p})
		}
		var got []int
		for tt.pq.Len() > 0 {
			got = append(got, tt.pq.Pop().P)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s queue popped %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPQUpdate(t *testing.T) {
	pq := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 5}
	pq.Push(a)
	pq.Push(&PQI[string]{V: "b", P: 3})
	a.P = 1
	pq.Update(a)
	if got := pq.Pop().V; got != "a" {
		t.Errorf("after update, popped %q, want %q", got, "a")
	}
}

func TestStack(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	if v, ok := s.Peek(); !ok || v != 2 {
		t.Errorf("Peek = %v, %v", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != 2 {
		t.Errorf("Pop = %v, %v", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != 1 {
		t.Errorf("Pop = %v, %v", v, ok)
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack reported ok")
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("drained %v, want %v", got, want)
	}
}
