package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/twounordered"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/net/html"
)

func sample() *twounordered.Vecs[string] {
	v := twounordered.New[string]()
	v.First().Push("a")
	v.Second().Push("x")
	v.First().Push("b")
	return v
}

func TestPrintPlain(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var buf bytes.Buffer
	config := &Config{LineWidth: 80, Context: uax11.LatinContext}
	if err := Print(sample(), &buf, config); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a b ‖ x\n" {
		t.Errorf("unexpected console output %q", buf.String())
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(twounordered.New[int](), &buf, &Config{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "‖\n" {
		t.Errorf("unexpected console output %q", buf.String())
	}
}

func TestPrintWrapsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twounordered")
	defer teardown()
	//
	v := twounordered.New[int]()
	for i := range 10 {
		v.First().Push(i)
	}
	var buf bytes.Buffer
	if err := Print(v, &buf, &Config{LineWidth: 7}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{"0 1 2 3", "4 5 6 7", "8 9 ‖"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, have %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("expected line %d to be %q, is %q", i, want[i], lines[i])
		}
	}
	for _, l := range lines {
		if len([]rune(l)) > 7 {
			t.Errorf("line %q exceeds line width", l)
		}
	}
}

func TestDisplayWidthOfASCII(t *testing.T) {
	for _, s := range []string{"0", "42", "a", "ab", "x-1"} {
		if w := displayWidth(s, uax11.LatinContext); w != len(s) {
			t.Errorf("expected width of %q to be %d, is %d", s, len(s), w)
		}
	}
	if w := displayWidth("äö", uax11.LatinContext); w <= 0 {
		t.Errorf("expected positive width for non-ASCII text, is %d", w)
	}
}

func TestPrintColored(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()
	//
	var buf bytes.Buffer
	config := &Config{LineWidth: 80, Colors: defaultPalette()}
	if err := Print(sample(), &buf, config); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[34m") || !strings.Contains(buf.String(), "\x1b[31m") {
		t.Errorf("expected blue and red escape sequences, have %q", buf.String())
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	v := sample()
	v.Second().Push("<y>")
	if err := HTML(v, &buf); err != nil {
		t.Fatal(err)
	}
	t.Logf("html = %s", buf.String())
	nodes, err := html.ParseFragment(strings.NewReader(buf.String()), nil)
	if err != nil {
		t.Fatal(err)
	}
	count := map[string]int{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" {
			for _, a := range n.Attr {
				if a.Key == "class" {
					count[a.Val]++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	if count["first"] != 2 || count["second"] != 2 {
		t.Errorf("expected 2 cells per region, have %v", count)
	}
	if !strings.Contains(buf.String(), "&lt;y&gt;") {
		t.Errorf("expected element text to be escaped")
	}
}

func TestDot(t *testing.T) {
	var buf bytes.Buffer
	if err := Dot(sample(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("dot = %s", out)
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected a digraph, have %q", out)
	}
	if !strings.Contains(out, `"first" [label="first|a|b"`) {
		t.Errorf("expected record for first region, have %q", out)
	}
	if !strings.Contains(out, `label="boundary 2"`) {
		t.Errorf("expected boundary edge, have %q", out)
	}
}

func TestRecordEscape(t *testing.T) {
	if s := recordEscape("{a|b}"); s != `\{a\|b\}` {
		t.Errorf("unexpected escaping %q", s)
	}
}
