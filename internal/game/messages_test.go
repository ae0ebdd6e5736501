package game

import "testing"

func TestMessageLog_Evicts(t *testing.T) {
	l := NewMessageLog(2)
	l.Add(1, "a")
	l.Add(2, "b")
	l.Add(3, "c")

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	got := l.Recent(5)
	if len(got) != 2 {
		t.Fatalf("len(Recent) = %d, want 2", len(got))
	}
	if got[0].Text != "b" || got[1].Text != "c" || got[1].Frame != 3 {
		t.Errorf("Recent = %+v, want b then c", got)
	}
	if r := l.Recent(1); len(r) != 1 || r[0].Text != "c" {
		t.Errorf("Recent(1) = %+v", r)
	}
	if r := l.Recent(-1); len(r) != 0 {
		t.Errorf("Recent(-1) = %+v, want empty", r)
	}
}

func TestMessageLog_WrapsInOrder(t *testing.T) {
	l := NewMessageLog(3)
	for i, s := range []string{"a", "b", "c", "d", "e"} {
		l.Add(uint64(i), s)
	}
	got := l.Recent(3)
	want := []string{"c", "d", "e"}
	for i := range want {
		if got[i].Text != want[i] {
			t.Fatalf("Recent = %+v, want %v", got, want)
		}
	}
	got[0].Text = "x"
	if l.Recent(3)[0].Text != "c" {
		t.Error("Recent returned a view into the ring, want a copy")
	}
}

func TestMessageLog_ZeroSize(t *testing.T) {
	l := NewMessageLog(0)
	l.Add(1, "dropped")
	if l.Len() != 0 || len(l.Recent(1)) != 0 {
		t.Errorf("zero-size log kept %d messages", l.Len())
	}
}

func TestMessage_String(t *testing.T) {
	m := Message{Text: "trails on", Frame: 42}
	if got, want := m.String(), "    42 trails on"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
