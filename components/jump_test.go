package components

import "testing"

func TestJumpRunsDurationPlusOneTicks(t *testing.T) {
	var j JumpData
	j.Start(210, 50, 30)
	if !j.Active {
		t.Fatal("jump should be active after Start")
	}
	if j.Begin != 160 || j.End != 210 || j.Change != 50 {
		t.Fatalf("begin/end/change = %v/%v/%v, want 160/210/50", j.Begin, j.End, j.Change)
	}

	var y float64
	for i := 0; i < 31; i++ {
		if !j.Active {
			t.Fatalf("jump went inactive after %d advances, want 31", i)
		}
		y, _ = j.Advance()
		if i == 0 && y != 160 {
			t.Fatalf("first advance y = %v, want 160", y)
		}
	}
	if j.Active {
		t.Fatal("jump still active after duration+1 advances")
	}
	if y != 210 {
		t.Fatalf("final y = %v, want base 210", y)
	}
}

func TestJumpAdvanceWhenIdle(t *testing.T) {
	var j JumpData
	if _, active := j.Advance(); active {
		t.Fatal("idle jump reported active")
	}
}

func TestJumpRestartResetsTween(t *testing.T) {
	var j JumpData
	j.Start(210, 50, 30)
	for i := 0; i < 10; i++ {
		j.Advance()
	}
	j.Start(210, 50, 30)
	if j.Elapsed != 0 || !j.Active {
		t.Fatalf("restart left elapsed=%d active=%v", j.Elapsed, j.Active)
	}
}
