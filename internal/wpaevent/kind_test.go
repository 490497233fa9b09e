package wpaevent

import "testing"

func TestGetWpaEventMessageKnown(t *testing.T) {
	k, ok := GetWpaEventMessage("CTRL-EVENT-CONNECTED")
	if !ok {
		t.Fatalf("expected CTRL-EVENT-CONNECTED to be known")
	}
	if k != KindCtrlEventConnected {
		t.Errorf("got %v, want KindCtrlEventConnected", k)
	}
}

func TestGetWpaEventMessageUnknown(t *testing.T) {
	if _, ok := GetWpaEventMessage("NOT-A-REAL-EVENT"); ok {
		t.Errorf("expected unknown prefix to report ok=false")
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for k, want := range kindPrefixes {
		if got := k.String(); got != want {
			t.Errorf("MessageKind(%d).String() = %q, want %q", int(k), got, want)
		}
		if got, ok := GetWpaEventMessage(want); !ok || got != k {
			t.Errorf("GetWpaEventMessage(%q) = (%v, %v), want (%v, true)", want, got, ok, k)
		}
	}
}

func TestUnknownIsZeroValue(t *testing.T) {
	var k MessageKind
	if k != Unknown {
		t.Errorf("zero value of MessageKind is not Unknown")
	}
	if Unknown.String() != "Unknown" {
		t.Errorf("Unknown.String() = %q, want Unknown", Unknown.String())
	}
}

func TestMessageTableSize(t *testing.T) {
	// Guards against accidental truncation of the generated prefix table.
	if len(kindPrefixes) < 180 {
		t.Errorf("kindPrefixes has only %d entries, expected at least 180", len(kindPrefixes))
	}
}
