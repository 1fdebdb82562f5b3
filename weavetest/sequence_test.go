package weavetest

import (
	"bytes"
	"testing"
)

func TestSequenceID(t *testing.T) {
	cases := map[uint64][]byte{
		1:      {0, 0, 0, 0, 0, 0, 0, 1},
		123123: {0, 0, 0, 0, 0, 1, 224, 243},
	}
	for n, want := range cases {
		if got := SequenceID(n); !bytes.Equal(want, got) {
			t.Fatalf("sequence %d: want %v, got %v", n, want, got)
		}
	}
}
