package sat

import (
	"math"
	"testing"
)

func TestEMA_firstSampleInitializes(t *testing.T) {
	ema := NewEMA(33)
	ema.Add(4)

	if got := ema.Val(); got != 4 {
		t.Errorf("Val(): got %f, want 4", got)
	}
}

func TestEMA_convergesToConstantInput(t *testing.T) {
	ema := NewEMA(10)
	ema.Add(100)
	for i := 0; i < 1000; i++ {
		ema.Add(2)
	}

	if got := ema.Val(); math.Abs(got-2) > 1e-6 {
		t.Errorf("Val(): got %f, want 2", got)
	}
}

func TestEMA_fastTracksFasterThanSlow(t *testing.T) {
	fast := NewEMA(33)
	slow := NewEMA(100000)
	for i := 0; i < 50; i++ {
		fast.Add(1)
		slow.Add(1)
	}
	for i := 0; i < 50; i++ {
		fast.Add(10)
		slow.Add(10)
	}

	if fast.Val() <= slow.Val() {
		t.Errorf("fast %f should exceed slow %f after a glue spike",
			fast.Val(), slow.Val())
	}
}

func TestAVG(t *testing.T) {
	avg := AVG{}
	if got := avg.Val(); got != 0 {
		t.Errorf("Val() on empty average: got %f, want 0", got)
	}

	avg.Add(1)
	avg.Add(2)
	avg.Add(6)
	if got := avg.Val(); got != 3 {
		t.Errorf("Val(): got %f, want 3", got)
	}
}
