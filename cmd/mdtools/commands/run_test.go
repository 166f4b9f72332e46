package commands

import "testing"

func TestBatchWorkers(t *testing.T) {
	if got := batchWorkers(8); got != 8 {
		t.Errorf("explicit flag ignored: got %d, want 8", got)
	}

	t.Setenv("WORKER_COUNT", "3")
	if got := batchWorkers(0); got != 3 {
		t.Errorf("WORKER_COUNT not used as default: got %d, want 3", got)
	}

	t.Setenv("WORKER_COUNT", "")
	if got := batchWorkers(0); got != 4 {
		t.Errorf("fallback default: got %d, want 4", got)
	}
}
