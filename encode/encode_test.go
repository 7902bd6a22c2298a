package encode

import (
	"testing"

	"github.com/kifulab/go-sgf/parse"

	"github.com/fatih/color"
)

func TestEncodeRoundTrip(t *testing.T) {
	ins := []string{
		`(;B[aa])`,
		`(;B[aa];W[bb])`,
		`(;B[aa];W[bb](;B[cc])(;B[dd]))`,
		`(;AB[aa][bb]C[hello world])`,
		`(;C[a\]b])`,
		`(;GM[1]SZ[19];B[pd](;W[dp];B[pq])(;W[dd]))`,
	}
	for _, in := range ins {
		root, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		out := MustString(root)
		if out != in {
			t.Errorf("got %q, want %q", out, in)
		}
		// encoding is stable under reparse
		root2, err := parse.Parse([]byte(out))
		if err != nil {
			t.Fatalf("%q: reparse: %v", out, err)
		}
		if again := MustString(root2); again != out {
			t.Errorf("unstable encoding: %q then %q", out, again)
		}
	}
}

func TestEncodeNormalizes(t *testing.T) {
	root, err := parse.Parse([]byte("(\n ;B[aa]\n ;W[bb]\n)"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := MustString(root), `(;B[aa];W[bb])`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	root, err := parse.Parse([]byte(`(;B[aa](;W[bb])(;W[cc](;B[dd])(;B[ee])))`))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(root, EncodeIndent(2))
	want := `(;B[aa]
  (;W[bb])
  (;W[cc]
    (;B[dd])
    (;B[ee])
  )
)`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	root, err := parse.Parse([]byte(`(;B[aa])`))
	if err != nil {
		t.Fatal(err)
	}
	plain := MustString(root)
	colored := MustString(root, EncodeColors(NewColors()))
	if len(colored) <= len(plain) {
		t.Errorf("colored output %q not longer than plain %q", colored, plain)
	}
}
