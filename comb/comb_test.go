package comb

import (
	"reflect"
	"sync"
	"testing"

	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	r, pos := ParseString(Literal('a'), "ab")
	if !r.IsAtom() || r.Text() != "a" || pos != 1 {
		t.Errorf("expected atom 'a' at position 1, is %v at %d", r, pos)
	}
	r, pos = ParseString(Literal('a'), "ba")
	if r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
	r, _ = ParseString(Literal('a'), "")
	if r.IsSuccess() {
		t.Errorf("expected failure at end of input")
	}
}

func TestLiteralString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	r, pos := ParseString(LiteralString("hello"), "hello world")
	if !r.IsAtom() || r.Text() != "hello" || pos != 5 {
		t.Errorf("expected atom 'hello' at position 5, is %v at %d", r, pos)
	}
	r, pos = ParseString(LiteralString("hello"), "help")
	if r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
	r, pos = ParseString(LiteralString("hello"), "hell")
	if r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
	r, pos = ParseString(LiteralString(""), "abc")
	if !r.IsEmpty() || pos != 0 {
		t.Errorf("expected empty match of empty string, is %v at %d", r, pos)
	}
}

func TestAnyAndSatisfy(t *testing.T) {
	r, pos := ParseString(Any(), "≤")
	if r.Text() != "≤" || pos != 1 {
		t.Errorf("expected Any() to match '≤', is %v", r)
	}
	if r, _ := ParseString(Any(), ""); r.IsSuccess() {
		t.Errorf("expected Any() to fail at end of input")
	}
	underscore := Satisfy(func(r rune) bool { return r == '_' })
	if r, _ := ParseString(underscore, "_x"); r.Text() != "_" {
		t.Errorf("expected Satisfy to match '_', is %v", r)
	}
	if r, pos := ParseString(underscore, "x_"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected Satisfy to fail at position 0, is %v at %d", r, pos)
	}
}

func TestEmptyAndFail(t *testing.T) {
	if r, pos := ParseString(Empty(), "abc"); !r.IsEmpty() || pos != 0 {
		t.Errorf("expected empty result without consuming input, is %v at %d", r, pos)
	}
	if r, pos := ParseString(Fail(), "abc"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
}

func TestChoose(t *testing.T) {
	p := Choose("aaaaabc")
	for _, input := range []string{"a", "b", "c"} {
		if r, _ := ParseString(p, input); r.Text() != input {
			t.Errorf("expected Choose to match %q, is %v", input, r)
		}
	}
	if r, pos := ParseString(p, "d"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected Choose to fail on 'd', is %v at %d", r, pos)
	}
	if r, _ := ParseString(Choose(""), "a"); r.IsSuccess() {
		t.Errorf("expected Choose(\"\") never to match")
	}
}

func TestOrLeftBias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	p := Or(LiteralString("ab"), LiteralString("abc"))
	r, pos := ParseString(p, "abc")
	if r.Text() != "ab" || pos != 2 {
		t.Errorf("expected first alternative 'ab' to win, is %v at %d", r, pos)
	}
	p = Or(Literal('a'), Any())
	if r, _ := ParseString(p, "a"); r.Text() != "a" {
		t.Errorf("expected first alternative to win, is %v", r)
	}
	p = Or(Literal('x'), Literal('y'), Literal('z'))
	if r, _ := ParseString(p, "z"); r.Text() != "z" {
		t.Errorf("expected third alternative to match, is %v", r)
	}
	if r, pos := ParseString(p, "a"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at 0, is %v at %d", r, pos)
	}
}

func TestOrAfterPartialMatch(t *testing.T) {
	bc := And(Literal('b'), Literal('c'))
	p := Or(And(LiteralString("hello"), bc), LiteralString("hel"))
	r, pos := ParseString(p, "hellobx")
	if r.Text() != "hel" || pos != 3 {
		t.Errorf("expected second alternative to match 'hel', is %v at %d", r, pos)
	}
}

func TestAndFlattens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	p := And(Literal('a'), Literal('b'), Literal('c'))
	r, pos := ParseString(p, "abc")
	if !r.IsSequence() || r.Len() != 3 || pos != 3 {
		t.Fatalf("expected flat sequence of 3 atoms, is %v", r)
	}
	for i, tok := range []string{"a", "b", "c"} {
		if item := r.Item(i); !item.IsAtom() || item.Text() != tok {
			t.Errorf("expected item %d to be atom %q, is %v", i, tok, item)
		}
	}
	nested := And(And(Literal('a'), Literal('b')), And(Literal('c'), Literal('d')))
	if r, _ := ParseString(nested, "abcd"); r.String() != "[a, b, c, d]" {
		t.Errorf("expected [a, b, c, d], is %v", r)
	}
}

func TestAndEmptyAbsorption(t *testing.T) {
	r, _ := ParseString(And(Empty(), Literal('x')), "x")
	if !r.IsAtom() || r.Text() != "x" {
		t.Errorf("expected bare atom x, is %v", r)
	}
	r, _ = ParseString(And(Empty(), Empty()), "x")
	if !r.IsEmpty() {
		t.Errorf("expected empty result, is %v", r)
	}
}

func TestAndRewinds(t *testing.T) {
	p := And(Literal('a'), Literal('b'), Literal('c'))
	r, pos := ParseString(p, "abx")
	if r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
}

func TestBetween(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	p := Between(Literal('('), Lower(), Literal(')'))
	r, pos := ParseString(p, "(q)")
	if !r.IsAtom() || r.Text() != "q" || pos != 3 {
		t.Errorf("expected atom q, is %v at %d", r, pos)
	}
	for _, input := range []string{"(Q)", "(q", "q)", "(qq)"} {
		if r, pos := ParseString(p, input); r.IsSuccess() || pos != 0 {
			t.Errorf("expected %q to fail at position 0, is %v at %d", input, r, pos)
		}
	}
}

func TestExactly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	p := Exactly(Choose("abc"), 2)
	s := stream.FromString("abc")
	r := p.Parse(s)
	if r.String() != "[a, b]" || s.Pos() != 2 {
		t.Errorf("expected [a, b] at position 2, is %v at %d", r, s.Pos())
	}
	if rest := s.Rest(); rest != "c" {
		t.Errorf("expected 'c' to be left, is %q", rest)
	}
	if r, pos := ParseString(p, "a"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
	if r, pos := ParseString(Exactly(Any(), 0), "abc"); !r.IsSequence() || r.Len() != 0 || pos != 0 {
		t.Errorf("expected empty sequence, is %v at %d", r, pos)
	}
	parens := Exactly(Between(Literal('('), Lower(), Literal(')')), 2)
	if r, _ := ParseString(parens, "(a)(b)(c)"); r.String() != "[a, b]" {
		t.Errorf("expected [a, b], is %v", r)
	}
}

func TestAtLeast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	p := AtLeast(Choose("abc"), 2)
	r, pos := ParseString(p, "abcabd")
	if r.Len() != 5 || pos != 5 {
		t.Errorf("expected 5 matches, is %v at %d", r, pos)
	}
	if r, pos := ParseString(p, "ad"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
	r, pos = ParseString(OnePlus(LiteralString("hello")), "hellohellohelp")
	if r.String() != "[hello, hello]" || pos != 10 {
		t.Errorf("expected [hello, hello] at position 10, is %v at %d", r, pos)
	}
	if r, _ := ParseString(OnePlus(Digit()), "x"); r.IsSuccess() {
		t.Errorf("expected OnePlus to fail without any match")
	}
}

func TestZeroPlusNeverFails(t *testing.T) {
	r, pos := ParseString(ZeroPlus(Literal('z')), "abc")
	if !r.IsSequence() || r.Len() != 0 || pos != 0 {
		t.Errorf("expected empty sequence at position 0, is %v at %d", r, pos)
	}
}

func TestRepetitionNests(t *testing.T) {
	p := OnePlus(And(Literal('a'), Literal('b')))
	r, _ := ParseString(p, "abab")
	if r.String() != "[[a, b], [a, b]]" {
		t.Errorf("expected [[a, b], [a, b]], is %v", r)
	}
}

func TestRepetitionWithoutProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	if r, pos := ParseString(ZeroPlus(Empty()), "abc"); !r.IsSequence() || pos != 0 {
		t.Errorf("expected repetition of ε to terminate, is %v at %d", r, pos)
	}
	if r, _ := ParseString(AtLeast(Empty(), 3), "abc"); r.IsFailure() {
		t.Errorf("expected repetition of ε to be saturated")
	}
	r, pos := ParseString(ZeroPlus(Maybe(Literal('a'))), "aab")
	if r.String() != "[a, a]" || pos != 2 {
		t.Errorf("expected [a, a] at position 2, is %v at %d", r, pos)
	}
	if r, _ := ParseString(Exactly(Empty(), 3), "abc"); !r.IsSequence() || r.Len() != 0 {
		t.Errorf("expected empty sequence, is %v", r)
	}
}

func TestNegativeCount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected negative repetition count to panic")
		}
	}()
	AtLeast(Any(), -1)
}

func TestNilParser(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected composition with nil parser to panic")
		}
	}()
	And(Any(), nil)
}

func TestMaybe(t *testing.T) {
	if r, pos := ParseString(Maybe(Literal('a')), "b"); !r.IsEmpty() || pos != 0 {
		t.Errorf("expected empty result, is %v at %d", r, pos)
	}
	if r, _ := ParseString(Maybe(Literal('a')), "a"); r.Text() != "a" {
		t.Errorf("expected atom a, is %v", r)
	}
}

func TestChompAndJoin(t *testing.T) {
	p := And(Chomp(Literal('(')), Digits(), Chomp(Literal(')')))
	r, pos := ParseString(p, "(42)")
	if !r.IsAtom() || r.Text() != "42" || pos != 4 {
		t.Errorf("expected atom 42, is %v at %d", r, pos)
	}
	j := Join(And(Literal('a'), Literal('b')))
	if r, _ := ParseString(j, "ab"); !r.IsAtom() || r.Text() != "ab" {
		t.Errorf("expected atom ab, is %v", r)
	}
	if r, pos := ParseString(Chomp(Literal('x')), "y"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected chomp to fail, is %v at %d", r, pos)
	}
}

func TestLazyRecursion(t *testing.T) {
	var nested Parser
	nested = Or(And(Literal('('), Lazy(func() Parser { return nested }), Literal(')')), Empty())
	r, pos := ParseString(nested, "(())")
	if r.String() != "[(, (, ), )]" || pos != 4 {
		t.Errorf("expected [(, (, ), )], is %v at %d", r, pos)
	}
	r, pos = ParseString(nested, "(()")
	if !r.IsEmpty() || pos != 0 {
		t.Errorf("expected unbalanced input to match nothing, is %v at %d", r, pos)
	}
}

func TestFuncAndRun(t *testing.T) {
	var p Parser = Func(func(s stream.Stream) result.Result {
		return result.Atom("constant")
	})
	if r := Run(p, stream.FromString("")); r.Text() != "constant" {
		t.Errorf("expected function parser to be called, is %v", r)
	}
	if r := Run(p, nil); r.IsSuccess() {
		t.Errorf("expected run on nil stream to fail")
	}
}

func TestNamed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	p := Named("ab", And(Literal('a'), Literal('b')))
	if Name(p) != "ab" || Name(Any()) != "" {
		t.Errorf("expected name of parser to be 'ab', is %q", Name(p))
	}
	if r, _ := ParseString(p, "ab"); r.String() != "[a, b]" {
		t.Errorf("expected named parser to behave like the wrapped one, is %v", r)
	}
	if r, pos := ParseString(p, "ax"); r.IsSuccess() || pos != 0 {
		t.Errorf("expected failure at position 0, is %v at %d", r, pos)
	}
}

// For every parser and input: a failing parse leaves the stream where it was.
func TestBacktrackingAtomicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.comb")
	defer teardown()
	//
	parsers := []Parser{
		Literal('a'),
		LiteralString("abc"),
		Choose("xyz"),
		And(Literal('a'), Literal('b'), Literal('c')),
		And(Maybe(Literal('a')), OnePlus(Literal('b')), Literal('c')),
		Or(And(Literal('a'), Literal('x')), And(Literal('a'), Literal('b'), Literal('x'))),
		Between(Literal('a'), OnePlus(Literal('b')), Literal('x')),
		Exactly(Any(), 5),
		AtLeast(Choose("ab"), 3),
		Join(And(Literal('a'), Literal('b'), Digit())),
		Chomp(And(Literal('a'), Literal('z'))),
		Int(),
		HexInt(),
	}
	inputs := []string{"", "a", "ab", "abc", "abbbc", "abx", "xyz", "0x", "-0xg", "+", "1234"}
	for i, p := range parsers {
		for _, input := range inputs {
			s := stream.FromString(input)
			s.Advance() // start inside the input
			start := s.Mark()
			if r := p.Parse(s); r.IsFailure() && s.Mark() != start {
				t.Errorf("parser #%d on %q: failure moved stream from %d to %d", i, input, start, s.Mark())
			}
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	p := HexInt()
	inputs := []string{"0x1A", "-0Xff", "0y1A", "+0x0"}
	expected := [][]string{{"0", "x", "1A"}, {"-", "0", "X", "ff"}, nil, {"+", "0", "x", "0"}}
	var wg sync.WaitGroup
	errs := make(chan string, 100)
	for n := 0; n < 10; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range inputs {
				r, _ := ParseString(p, input)
				if !reflect.DeepEqual(r.Strings(), expected[i]) {
					errs <- input
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for input := range errs {
		t.Errorf("concurrent parse of %q produced an unexpected result", input)
	}
}
