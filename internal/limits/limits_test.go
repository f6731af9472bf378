package limits

import "testing"

func TestSetReturnsPrevious(t *testing.T) {
	t.Parallel()
	l := New(200, 256)

	if prev := l.SetMaxQueryRows(50); prev != 200 {
		t.Errorf("SetMaxQueryRows returned %d, want 200", prev)
	}
	if got := l.MaxQueryRows(); got != 50 {
		t.Errorf("MaxQueryRows() = %d, want 50", got)
	}

	if prev := l.SetMaxFieldLength(1024); prev != 256 {
		t.Errorf("SetMaxFieldLength returned %d, want 256", prev)
	}
	if got := l.MaxFieldLength(); got != 1024 {
		t.Errorf("MaxFieldLength() = %d, want 1024", got)
	}
}
