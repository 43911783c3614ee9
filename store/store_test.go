package store

import "testing"

func TestSnapshotStaleCommitDiscarded(t *testing.T) {
	var s snapshot[string]

	first := s.begin()
	second := s.begin()

	if !s.commit(second, "young") {
		t.Fatalf("commit(%d) = false, want true", second)
	}
	if s.commit(first, "old") {
		t.Errorf("commit(%d) = true after a younger commit, want false", first)
	}
	if got := s.get(); got != "young" {
		t.Errorf("get() = %q, want %q", got, "young")
	}
}

func TestSnapshotSequentialCommits(t *testing.T) {
	var s snapshot[int]
	for i := 1; i <= 3; i++ {
		seq := s.begin()
		if !s.commit(seq, i) {
			t.Fatalf("commit(%d) = false, want true", seq)
		}
	}
	if got := s.get(); got != 3 {
		t.Errorf("get() = %d, want 3", got)
	}
}
