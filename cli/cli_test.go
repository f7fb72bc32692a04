package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/uax11"
)

func TestParseElements(t *testing.T) {
	elements, err := ParseElements("  3 1\t4 -1 ")
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(elements) != 4 || elements[3] != -1 {
		t.Errorf("unexpected elements %v", elements)
	}
	for _, bad := range []string{"", "   ", "1 2 x", "1.5", "99999999999999999999"} {
		if _, err := ParseElements(bad); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("expected ErrMalformedInput for %q, got %v", bad, err)
		}
	}
}

func TestParseOp(t *testing.T) {
	for name, expected := range map[string]Op{"sum": OpSum, "MIN": OpMin, " max": OpMax} {
		op, err := ParseOp(name)
		if err != nil || op != expected {
			t.Errorf("ParseOp(%q) = %v, %v", name, op, err)
		}
	}
	if _, err := ParseOp("avg"); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("expected ErrUnknownOp, got %v", err)
	}
	if OpMax.String() != "max" || Op(7).String() != "Op(7)" {
		t.Errorf("unexpected op names")
	}
}

func TestDemo(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var out bytes.Buffer
	if err := Demo(&out, "3 1 4 1 5 9 2 6", OpSum, 0); err != nil {
		t.Fatal(err.Error())
	}
	expected := `nodes = [31 9 22 4 5 14 8 3 1 4 1 5 9 2 6]
elements = [3 1 4 1 5 9 2 6]
elements[2] = 42
elements = [3 1 42 1 5 9 2 6]
prefix sums = [3 4 46 47 52 61 63 69]
`
	if out.String() != expected {
		t.Errorf("unexpected demo output:\n%s", out.String())
	}
}

func TestDemoMinWithPadding(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var out bytes.Buffer
	if err := Demo(&out, "5 3", OpMin, 0); err != nil {
		t.Fatal(err.Error())
	}
	expected := `nodes = [3 5 3]
elements = [5 3]
prefix minima = [5 3]
`
	if out.String() != expected {
		t.Errorf("unexpected demo output:\n%s", out.String())
	}
	out.Reset()
	if err := Demo(&out, "5 3 8", OpMin, 0); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.HasPrefix(out.String(), "nodes = [3 3 8 5 3 8 +∞]\n") {
		t.Errorf("expected padding to display as +∞, have\n%s", out.String())
	}
}

func TestDemoRejectsMalformedInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := Demo(&out, "1 two 3", OpSum, 0); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
	if err := Demo(&out, "", OpSum, 0); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput for empty line, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output for malformed input, have %q", out.String())
	}
}

func TestPrintListWraps(t *testing.T) {
	p := makeDefaultPalette()
	p.setEnabled(false)
	var out bytes.Buffer
	values := []string{"100", "200", "300", "400", "500"}
	printList(&out, "xs", values, nil, p, 20, uax11.LatinContext)
	expected := "xs = [100 200 300\n      400 500]\n"
	if out.String() != expected {
		t.Errorf("expected %q, have %q", expected, out.String())
	}
}

func TestPrintListMeasuresDisplayWidth(t *testing.T) {
	p := makeDefaultPalette()
	p.setEnabled(false)
	var out bytes.Buffer
	// "xs = [+∞ +∞ +∞]" occupies 15 positions, although it is 21 bytes long
	printList(&out, "xs", []string{"+∞", "+∞", "+∞"}, nil, p, 16, uax11.LatinContext)
	if expected := "xs = [+∞ +∞ +∞]\n"; out.String() != expected {
		t.Errorf("expected %q, have %q", expected, out.String())
	}
	out.Reset()
	printList(&out, "xs", []string{"+∞", "+∞", "+∞"}, nil, p, 14, uax11.LatinContext)
	if expected := "xs = [+∞ +∞\n      +∞]\n"; out.String() != expected {
		t.Errorf("expected %q, have %q", expected, out.String())
	}
}

func TestInfinityOnlyForPadding(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var out bytes.Buffer
	if err := Demo(&out, "9223372036854775807 4 5", OpMin, 0); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.HasPrefix(out.String(), "nodes = [4 4 5 9223372036854775807 4 5 +∞]\n") {
		t.Errorf("expected element MaxInt64 as number and padding as +∞, have\n%s", out.String())
	}
	if !strings.Contains(out.String(), "elements = [9223372036854775807 4 5]\n") {
		t.Errorf("expected element MaxInt64 printed as number, have\n%s", out.String())
	}
	if formatValue(OpMax, -9223372036854775808, false) != "-9223372036854775808" {
		t.Errorf("expected MinInt64 element of max tree printed as number")
	}
	if formatValue(OpMax, -9223372036854775808, true) != "-∞" {
		t.Errorf("expected MinInt64 padding of max tree printed as -∞")
	}
}

func TestSessionHelp(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var out bytes.Buffer
	session := NewSession(bufio.NewScanner(strings.NewReader("HELP\n")), &out, OpSum)
	session.SetColor(false)
	session.SetPrompt(false)
	if err := session.Start(); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.HasPrefix(out.String(), "\nSegment Tree CLI\n") ||
		!strings.HasSuffix(out.String(), "Terminate this session\n\n") {
		t.Errorf("unexpected help text %q", out.String())
	}
}

func TestSession(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	script := `GET 0
BUILD 5 3 8 6 7
QUERY 0 4
OP min
QUERY 0 4
GET 9
SET 1 10
QUERY 0 4
QUERY 3 1
BUILD
BUILD a b
CHECK
FOO
EXIT
GET 0
`
	var out bytes.Buffer
	session := NewSession(bufio.NewScanner(strings.NewReader(script)), &out, OpSum)
	session.SetColor(false)
	session.SetPrompt(false)
	session.width = 200
	if err := session.Start(); err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("\n%s", out.String())
	lines := strings.Split(out.String(), "\n")
	expected := []string{
		"No tree; use BUILD first.",
		"nodes = [29 22 7 8 14 7 0 5 3 8 6 7 0 0 0]",
		"29",
		"nodes = [3 3 7 3 6 7 +∞ 5 3 8 6 7 +∞ +∞ +∞]",
		"3",
		"Error: segtree: index out of range: index 9, length 5",
		"nodes = [5 5 7 5 6 7 +∞ 5 10 8 6 7 +∞ +∞ +∞]",
		"5",
		"Error: segtree: index out of range: first=3 > last=1",
		"Usage: BUILD <int> ...",
		"Error: cli: malformed input: no elements",
		"Usage: BUILD <int> ...",
		`Error: cli: malformed input: element 0 is not an integer: "a"`,
		"OK",
		`Unknown command "foo"`,
		"",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines of output, have %d", len(expected), len(lines))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, have %q", i, expected[i], lines[i])
		}
	}
	if err := segtree.Check(session.Tree()); err != nil {
		t.Error(err)
	}
}

func TestSessionRenders(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	script := "BUILD 1 2 3\nDOT\nHTML\nPREFIX\n"
	var out bytes.Buffer
	session := NewSession(bufio.NewScanner(strings.NewReader(script)), &out, OpMax)
	session.SetColor(false)
	session.SetPrompt(false)
	if err := session.Start(); err != nil {
		t.Fatal(err.Error())
	}
	s := out.String()
	if !strings.Contains(s, "strict digraph {") {
		t.Errorf("expected DOT output")
	}
	if !strings.Contains(s, `<table class="segtree">`) {
		t.Errorf("expected HTML output")
	}
	if !strings.Contains(s, "prefix maxima = [1 2 3]") {
		t.Errorf("expected prefix maxima")
	}
}
