package parse

import (
	"testing"

	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/intern"
	"github.com/kaoru-ogata/dpctree/reader"
)

func TestBool(t *testing.T) {
	tests := []struct {
		in      string
		want    *bool
		wantErr bool
	}{
		{"true", boolPtr(true), false},
		{"false", boolPtr(false), false},
		{"maybe", nil, true},
	}
	for _, tt := range tests {
		r := reader.New(tt.in)
		v, errs := Bool(&r)
		if (len(errs) > 0) != tt.wantErr {
			t.Errorf("Bool(%q) errs = %v, wantErr %v", tt.in, errs, tt.wantErr)
		}
		if tt.want != nil {
			if v.Value == nil || *v.Value != *tt.want {
				t.Errorf("Bool(%q) = %v, want %v", tt.in, v.Value, *tt.want)
			}
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func TestIntegerRangeAndChars(t *testing.T) {
	r := reader.New("42")
	v, errs := Integer(&r, 0, 100)
	if len(errs) != 0 || v.Value == nil || *v.Value != 42 {
		t.Fatalf("Integer(42) = %v, errs=%v", v, errs)
	}

	r = reader.New("200")
	_, errs = Integer(&r, 0, 100)
	if len(errs) == 0 {
		t.Errorf("Integer(200) with max 100 should error")
	}

	r = reader.New("4.5")
	v, errs = Integer(&r, 0, 100)
	if len(errs) == 0 {
		t.Errorf("Integer(4.5) should error: not a valid integer")
	}
	if v.Value != nil {
		t.Errorf("failed Integer should leave Value nil")
	}

	r = reader.New("abc")
	_, errs = Integer(&r, 0, 100)
	if len(errs) == 0 {
		t.Errorf("Integer(abc) should error on disallowed characters")
	}
}

func TestStringGreedyConsumesRestTrimmed(t *testing.T) {
	r := reader.New("hello world  ")
	in := intern.New()
	v, errs := String(&r, in, StringGreedyPhrase)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got, _ := in.Resolve(v.Value)
	if got != "hello world" {
		t.Errorf("greedy string = %q, want %q", got, "hello world")
	}
	if r.HasMore() {
		t.Errorf("greedy string should consume to EOF")
	}
}

func TestStringQuotedEscapesAndUnterminated(t *testing.T) {
	in := intern.New()

	r := reader.New(`"a \"b\" c" rest`)
	v, errs := String(&r, in, StringQuotablePhrase)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got, _ := in.Resolve(v.Value)
	if got != `a "b" c` {
		t.Errorf("quoted string = %q, want %q", got, `a "b" c`)
	}

	r = reader.New(`"unterminated`)
	_, errs = String(&r, in, StringQuotablePhrase)
	if len(errs) != 1 {
		t.Fatalf("expected one UnterminatedString error, got %v", errs)
	}
	if _, ok := errs[0].(ErrUnterminatedString); !ok {
		t.Errorf("expected ErrUnterminatedString, got %T", errs[0])
	}
}

func TestStringSingleWordQuotedIsFlagged(t *testing.T) {
	in := intern.New()
	r := reader.New(`"hi"`)
	_, errs := String(&r, in, StringSingleWord)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if _, ok := errs[0].(ErrQuotedSingleWord); !ok {
		t.Errorf("expected ErrQuotedSingleWord, got %T", errs[0])
	}
}

func TestStringBareInvalidChars(t *testing.T) {
	in := intern.New()
	r := reader.New("abc!def")
	_, errs := String(&r, in, StringSingleWord)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if _, ok := errs[0].(ErrInvalidStringChars); !ok {
		t.Errorf("expected ErrInvalidStringChars, got %T", errs[0])
	}
}

func TestAngleRelativeAndDefault(t *testing.T) {
	r := reader.New("~")
	v, errs := Angle(&r)
	if len(errs) != 0 || !v.Relative || v.Value.Value == nil || *v.Value.Value != 0 {
		t.Fatalf("Angle(~) = %+v, errs=%v", v, errs)
	}

	r = reader.New("~45.5")
	v, errs = Angle(&r)
	if len(errs) != 0 || !v.Relative || *v.Value.Value != 45.5 {
		t.Fatalf("Angle(~45.5) = %+v, errs=%v", v, errs)
	}
}

func TestColorCaseInsensitive(t *testing.T) {
	r := reader.New("dark_blue")
	v, errs := Color(&r)
	if len(errs) != 0 || v.Value == nil {
		t.Fatalf("Color(dark_blue) errs=%v", errs)
	}

	r = reader.New("DARK_BLUE")
	v, errs = Color(&r)
	if len(errs) != 0 || v.Value == nil || *v.Value != cst.ColorDarkBlue {
		t.Fatalf("Color(DARK_BLUE) = %+v, errs=%v; want dark_blue", v, errs)
	}

	r = reader.New("not_a_color")
	_, errs = Color(&r)
	if len(errs) != 1 {
		t.Fatalf("expected InvalidColor, got %v", errs)
	}
}
