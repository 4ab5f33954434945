package pcomb

import "testing"

func TestSpan(t *testing.T) {
	s := MakeSpan(5, 2)
	if s.From() != 2 || s.To() != 5 {
		t.Errorf("expected span (2…5), is %s", s)
	}
	if s.Len() != 3 {
		t.Errorf("expected span length 3, is %d", s.Len())
	}
	if !MakeSpan(4, 4).IsNull() {
		t.Errorf("expected (4…4) to be a null span")
	}
	x := s.Extend(MakeSpan(0, 3))
	if x.String() != "(0…5)" {
		t.Errorf("expected extended span to be (0…5), is %s", x)
	}
}
