package hlist

import "testing"

func TestHeadAndTail(t *testing.T) {
	l := New(uint8(1), Nil{})
	if l.Head != 1 {
		t.Fatalf("Head = %v, want 1", l.Head)
	}
	if l.Tail != (Nil{}) {
		t.Fatalf("Tail = %v, want Nil{}", l.Tail)
	}
}

func TestNestedShape(t *testing.T) {
	l := New(uint8(1), New(int32(2), New("three", Nil{})))
	if l.Head != 1 {
		t.Fatal("outer head wrong")
	}
	if l.Tail.Head != 2 {
		t.Fatal("middle head wrong")
	}
	if l.Tail.Tail.Head != "three" {
		t.Fatal("inner head wrong")
	}
	if l.Tail.Tail.Tail != (Nil{}) {
		t.Fatal("list should terminate in Nil")
	}
}
