package registry

import (
	"reflect"
	"testing"

	"github.com/npillmayer/pcomb/comb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewTable(t *testing.T) {
	table := NewTable()
	if table == nil || table.Size() != 0 {
		t.Error("no empty table created")
	}
}

func TestDefineEntry(t *testing.T) {
	table := NewTable()
	e, old := table.Define("a", comb.Literal('a'), "letter a")
	if e == nil || old != nil {
		t.Fatal("no entry created for table")
	}
	if e.Name() != "a" || comb.Name(e.Parser) != "a" {
		t.Errorf("expected entry and parser to be named 'a'")
	}
	if e2, old := table.Define("a", comb.Literal('A'), "letter A"); old != e || e2 == e {
		t.Error("entry should have been replaced")
	}
	if e, _ := table.Define("", comb.Any(), ""); e != nil {
		t.Error("entry with empty name should not be created")
	}
	if e, _ := table.Define("nil", nil, ""); e != nil {
		t.Error("entry without parser should not be created")
	}
}

func TestResolveOrDefine(t *testing.T) {
	table := NewTable()
	e, _ := table.Define("x", comb.Literal('x'), "")
	if found, present := table.ResolveOrDefine("x", comb.Any(), ""); !present || found != e {
		t.Error("cannot find stored entry in table")
	}
	if _, present := table.ResolveOrDefine("y", comb.Literal('y'), ""); present {
		t.Error("entry 'y' should have been created")
	}
	if table.Size() != 2 {
		t.Errorf("expected 2 entries, have %d", table.Size())
	}
}

func TestLookup(t *testing.T) {
	table := NewTable()
	table.Define("x", comb.Literal('x'), "")
	if _, err := table.Lookup("x"); err != nil {
		t.Error(err)
	}
	if _, err := table.Lookup("z"); err == nil {
		t.Error("expected lookup of unknown parser to fail")
	}
}

func TestStandardTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.registry")
	defer teardown()
	//
	table := Standard()
	names := table.Names()
	if len(names) != table.Size() || names[0] != "alpha" {
		t.Errorf("expected sorted names, have %v", names)
	}
	var visited []string
	table.Each(func(name string, e *Entry) {
		visited = append(visited, name)
	})
	if !reflect.DeepEqual(visited, names) {
		t.Errorf("expected Each to visit entries in order, visited %v", visited)
	}
	p, err := table.Lookup("hexint")
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := comb.ParseString(p, "0x1A"); r.String() != "[0, x, 1A]" {
		t.Errorf("expected [0, x, 1A], is %v", r)
	}
	p, _ = table.Lookup("word")
	if r, _ := comb.ParseString(p, "hello world"); r.Text() != "hello" {
		t.Errorf("expected atom hello, is %v", r)
	}
}
