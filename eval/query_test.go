package eval

import (
	"testing"

	"github.com/kifulab/go-sgf/parse"

	"github.com/google/go-cmp/cmp"
)

const gameDoc = `(;GM[1]SZ[19]C[opening];B[pd];W[dp](;B[pq]C[low])(;B[pp]C[high];W[qq]))`

func TestQuerySelect(t *testing.T) {
	root, err := parse.Parse([]byte(gameDoc))
	if err != nil {
		t.Fatal(err)
	}
	qts := []struct {
		src  string
		want []string
	}{
		{src: `has("B")`, want: []string{";B[pd]", ";B[pq]C[low]", ";B[pp]C[high]"}},
		{src: `has("C") && has("B")`, want: []string{";B[pq]C[low]", ";B[pp]C[high]"}},
		{src: `get("C") == "high"`, want: []string{";B[pp]C[high]"}},
		{src: `isRoot`, want: []string{";GM[1]SZ[19]C[opening]"}},
		{src: `depth > 2 && isLeaf`, want: []string{";B[pq]C[low]", ";W[qq]"}},
		{src: `children > 1`, want: []string{";W[dp]"}},
		{src: `len(values("SZ")) == 1`, want: []string{";GM[1]SZ[19]C[opening]"}},
		{src: `has("AW")`, want: nil},
	}
	for _, qt := range qts {
		q, err := Compile(qt.src)
		if err != nil {
			t.Fatalf("%q: %v", qt.src, err)
		}
		matches, err := Select(root, q)
		if err != nil {
			t.Fatalf("%q: %v", qt.src, err)
		}
		var got []string
		for _, m := range matches {
			line := ";"
			for _, p := range m.Properties() {
				line += p.Tag
				for _, v := range p.Values {
					line += "[" + v + "]"
				}
			}
			got = append(got, line)
		}
		if d := cmp.Diff(qt.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", qt.src, d)
		}
	}
}

func TestQueryCompileError(t *testing.T) {
	if _, err := Compile(`has(`); err == nil {
		t.Error("no error for malformed expression")
	}
}

func TestQueryNonBool(t *testing.T) {
	root, err := parse.Parse([]byte(`(;B[aa])`))
	if err != nil {
		t.Fatal(err)
	}
	q, err := Compile(`get("B")`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.Match(root); err == nil {
		t.Error("no error for non-bool query result")
	}
}
