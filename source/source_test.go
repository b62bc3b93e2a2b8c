package source

import "testing"

func TestByteToLineAndBack(t *testing.T) {
	text := "say a\nexecute run\n  say b\n"
	src := New("test.dpc", text)

	tests := []struct {
		idx  int
		line int
	}{
		{0, 0},
		{5, 0},
		{6, 1},
		{18, 2},
		{19, 2},
		{len(text), 3},
	}
	for _, tt := range tests {
		got, ok := src.ByteToLine(tt.idx)
		if !ok || got != tt.line {
			t.Errorf("ByteToLine(%v) = %v, %v; want %v, true", tt.idx, got, ok, tt.line)
		}
	}

	for line, want := range []int{0, 6, 18, 26} {
		got, ok := src.LineToByte(line)
		if !ok || got != want {
			t.Errorf("LineToByte(%v) = %v, %v; want %v, true", line, got, ok, want)
		}
	}
}

func TestByteToLineOutOfRange(t *testing.T) {
	src := New("", "abc")
	if _, ok := src.ByteToLine(-1); ok {
		t.Errorf("ByteToLine(-1) should fail")
	}
	if _, ok := src.ByteToLine(100); ok {
		t.Errorf("ByteToLine(100) should fail")
	}
}

func TestReplaceRange(t *testing.T) {
	src := New("", "say a\nsay b\n")
	src.ReplaceRange(4, 5, "xyz")
	if got, want := src.Text(), "say xyz\nsay b\n"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	line, ok := src.ByteToLine(10)
	if !ok || line != 1 {
		t.Errorf("ByteToLine after edit = %v, %v; want 1, true", line, ok)
	}
}
