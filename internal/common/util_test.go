package common

import (
	"testing"
)

func TestWipeByteArray_ZeroesContents(t *testing.T) {
	b := []byte("secret1")
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %d", i, v)
		}
	}
}

func TestWipeByteArray_NilIsNoop(t *testing.T) {
	WipeByteArray(nil) // must not panic
}
