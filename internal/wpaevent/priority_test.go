package wpaevent

import "testing"

func TestPriorityOrdering(t *testing.T) {
	if !(MsgDump < Debug && Debug < Info && Info < Warning && Warning < Error) {
		t.Fatalf("priority levels are not totally ordered as expected")
	}
}

func TestPriorityValid(t *testing.T) {
	cases := []struct {
		p    Priority
		want bool
	}{
		{MsgDump, true},
		{Debug, true},
		{Info, true},
		{Warning, true},
		{Error, true},
		{Priority(-1), false},
		{Priority(5), false},
	}
	for _, c := range cases {
		if got := c.p.Valid(); got != c.want {
			t.Errorf("Priority(%d).Valid() = %v, want %v", int(c.p), got, c.want)
		}
	}
}

func TestPriorityString(t *testing.T) {
	if Info.String() != "INFO" {
		t.Errorf("Info.String() = %q, want INFO", Info.String())
	}
	if got := Priority(99).String(); got == "" {
		t.Errorf("out-of-range priority String() returned empty string")
	}
}
