// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editdist

import "testing"

func TestDistanceIdentity(t *testing.T) {
	for _, w := range []string{"", "a", "hello", "recieve"} {
		if d := Distance([]byte(w), []byte(w), DefaultWeights); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", w, w, d)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"teh", "the"},
		{"recieve", "receive"},
		{"kitten", "sitting"},
		{"", "abc"},
	}
	for _, p := range pairs {
		d1 := Distance([]byte(p[0]), []byte(p[1]), DefaultWeights)
		d2 := Distance([]byte(p[1]), []byte(p[0]), DefaultWeights)
		if d1 != d2 {
			t.Errorf("Distance(%q,%q)=%d != Distance(%q,%q)=%d", p[0], p[1], d1, p[1], p[0], d2)
		}
	}
}

func TestDistanceTransposition(t *testing.T) {
	d := Distance([]byte("teh"), []byte("the"), DefaultWeights)
	if d != DefaultWeights.Swap {
		t.Errorf("Distance(teh, the) = %d, want swap cost %d", d, DefaultWeights.Swap)
	}
}

func TestLimitCorrectness(t *testing.T) {
	pairs := [][2]string{
		{"teh", "the"},
		{"recieve", "receive"},
		{"kitten", "sitting"},
		{"speling", "spelling"},
	}
	for _, p := range pairs {
		full := Distance([]byte(p[0]), []byte(p[1]), DefaultWeights)
		for k := 0; k <= 3; k++ {
			limited, _ := LimitEditDistance([]byte(p[0]), []byte(p[1]), k, DefaultWeights)
			if limited < LargeNum && limited != full {
				t.Errorf("LimitEditDistance(%q,%q,%d) = %d, full = %d", p[0], p[1], k, limited, full)
			}
		}
	}
}

func TestLimitRejectsBeyondBudget(t *testing.T) {
	d, _ := LimitEditDistance([]byte("a"), []byte("completely different word"), 1, DefaultWeights)
	if d != LargeNum {
		t.Errorf("LimitEditDistance under budget returned %d, want LargeNum", d)
	}
}
