package sys

import (
	"testing"

	"github.com/goeval/goeval/pkg/must"
)

func TestIsATTY_FalseForPipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r) {
		t.Errorf("IsATTY(pipe) = true, want false")
	}
}

func TestWinSize_InvalidForPipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	row, col := WinSize(r)
	if row != -1 || col != -1 {
		t.Errorf("WinSize(pipe) = (%d, %d), want (-1, -1)", row, col)
	}
}
