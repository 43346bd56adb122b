package codecerr

import "testing"

func TestMessageWithNoContext(t *testing.T) {
	e := New("boom")
	if got, want := e.Error(), "boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestContextOrderIsOutermostFirst(t *testing.T) {
	e := New("This is a slam poem that I wrote and I am speaking the slam poem to you right now with my mouth.").
		Push("inner").
		Push("outer")

	want := "outer/inner: This is a slam poem that I wrote and I am speaking the slam poem to you right now with my mouth."
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPushDoesNotMutateOriginal(t *testing.T) {
	base := New("boom")
	wrapped := base.Push("ctx")

	if got, want := base.Error(), "boom"; got != want {
		t.Errorf("base.Error() = %q, want %q (Push must not mutate the receiver)", got, want)
	}
	if got, want := wrapped.Error(), "ctx: boom"; got != want {
		t.Errorf("wrapped.Error() = %q, want %q", got, want)
	}
}

func TestNestedPushThreeDeep(t *testing.T) {
	e := New("Requested read offset of 0 and length 1 bytes exceeds vector length of 0").
		Push("magic").
		Push("header").
		Push("section")

	want := "section/header/magic: Requested read offset of 0 and length 1 bytes exceeds vector length of 0"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
