package diag

import (
	"testing"

	"github.com/kaoru-ogata/dpctree/span"
)

func TestErrorfChaining(t *testing.T) {
	d := Errorf(span.New(3, 7), "unexpected token %q", "foo").
		WithLabel(NewLabel(span.New(3, 7), "here")).
		WithHelp("try quoting the argument")

	if d.Level != Error {
		t.Fatalf("Level = %v, want Error", d.Level)
	}
	if d.Message != `unexpected token "foo"` {
		t.Fatalf("Message = %q", d.Message)
	}
	if len(d.Labels) != 1 || d.Labels[0].Message != "here" {
		t.Fatalf("Labels = %+v", d.Labels)
	}
	if len(d.Subs) != 1 || d.Subs[0].Level != Help {
		t.Fatalf("Subs = %+v", d.Subs)
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		Error: "error",
		Warn:  "warning",
		Info:  "info",
		Help:  "help",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestDiagnosticAsError(t *testing.T) {
	var err error = Errorf(span.New(0, 1), "bad thing")
	if err.Error() != "error: bad thing" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
