package condor2nav

import "testing"

func TestCallbackChangeToken(t *testing.T) {
	token := NewCallbackChangeToken()

	if token.HasChanged() {
		t.Error("new token already changed")
	}
	if !token.ActiveChangeCallbacks() {
		t.Error("callback token should support active callbacks")
	}

	calls := 0
	unregister := token.RegisterChangeCallback(func() { calls++ })

	token.SignalChange()
	token.SignalChange() // second signal is a no-op

	if !token.HasChanged() {
		t.Error("token did not change after SignalChange")
	}
	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}

	unregister()
}

func TestCallbackChangeTokenUnregister(t *testing.T) {
	token := NewCallbackChangeToken()

	calls := 0
	unregister := token.RegisterChangeCallback(func() { calls++ })
	unregister()

	token.SignalChange()
	if calls != 0 {
		t.Errorf("unregistered callback invoked %d times", calls)
	}
}

func TestCancelledChangeToken(t *testing.T) {
	token := CancelledChangeToken{}
	if !token.HasChanged() {
		t.Error("cancelled token should report changed")
	}

	invoked := false
	token.RegisterChangeCallback(func() { invoked = true })
	if !invoked {
		t.Error("cancelled token should invoke callbacks immediately")
	}
}

func TestNeverChangeToken(t *testing.T) {
	token := NeverChangeToken{}
	if token.HasChanged() {
		t.Error("never token reported a change")
	}

	invoked := false
	token.RegisterChangeCallback(func() { invoked = true })
	if invoked {
		t.Error("never token invoked a callback")
	}
}
