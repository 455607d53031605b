package value

import (
	"math"
	"testing"
)

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindNil:   "nil",
		KindBool:  "bool",
		KindInt:   "int",
		KindFloat: "float",
		KindText:  "text",
		KindBytes: "bytes",
		KindList:  "list",
		KindMap:   "map",
		Kind(99):  "invalid",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	if !v.IsNil() || v.Kind() != KindNil {
		t.Errorf("zero Value should be nil, got kind %s", v.Kind())
	}
	if !v.Equal(Nil()) {
		t.Error("zero Value should equal Nil()")
	}
}

func TestEqual_SameKind(t *testing.T) {
	testCases := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "nil", a: Nil(), b: Nil(), want: true},
		{name: "bool equal", a: Bool(true), b: Bool(true), want: true},
		{name: "bool unequal", a: Bool(true), b: Bool(false), want: false},
		{name: "text equal", a: Text("x"), b: Text("x"), want: true},
		{name: "text unequal", a: Text("x"), b: Text("y"), want: false},
		{name: "bytes equal", a: Bytes([]byte{1, 2}), b: Bytes([]byte{1, 2}), want: true},
		{name: "bytes unequal", a: Bytes([]byte{1, 2}), b: Bytes([]byte{1, 3}), want: false},
		{name: "bytes nil vs empty", a: Bytes(nil), b: Bytes([]byte{}), want: true},
		{name: "kind mismatch", a: Text("1"), b: Int(1), want: false},
		{name: "list equal", a: List(Int(1), Text("a")), b: List(Int(1), Text("a")), want: true},
		{name: "list length mismatch", a: List(Int(1)), b: List(Int(1), Int(2)), want: false},
		{name: "list element mismatch", a: List(Int(1)), b: List(Int(2)), want: false},
		{
			name: "map equal",
			a:    Map(Pair{Key: Text("k"), Value: Int(1)}),
			b:    Map(Pair{Key: Text("k"), Value: Int(1)}),
			want: true,
		},
		{
			name: "map order matters",
			a:    Map(Pair{Key: Text("a"), Value: Int(1)}, Pair{Key: Text("b"), Value: Int(2)}),
			b:    Map(Pair{Key: Text("b"), Value: Int(2)}, Pair{Key: Text("a"), Value: Int(1)}),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("Equal not symmetric: %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEqual_Numeric(t *testing.T) {
	testCases := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "int int", a: Int(5), b: Int(5), want: true},
		{name: "int float cross kind", a: Int(5), b: Float(5), want: true},
		{name: "float float", a: Float(2.5), b: Float(2.5), want: true},
		{name: "numeric mismatch", a: Int(5), b: Float(5.5), want: false},
		{name: "nan equals nan", a: Float(math.NaN()), b: Float(math.NaN()), want: true},
		{name: "inf", a: Float(math.Inf(1)), b: Float(math.Inf(1)), want: true},
		{name: "opposite inf", a: Float(math.Inf(1)), b: Float(math.Inf(-1)), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	testCases := []struct {
		name string
		in   Value
		want int
	}{
		{name: "text byte length", in: Text("héllo"), want: 6},
		{name: "bytes", in: Bytes([]byte{1, 2, 3}), want: 3},
		{name: "list", in: List(Nil(), Nil()), want: 2},
		{name: "map pairs", in: Map(Pair{Key: Text("k"), Value: Nil()}), want: 1},
		{name: "scalar", in: Int(9), want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Len(); got != tc.want {
				t.Errorf("Len = %d, want %d", got, tc.want)
			}
		})
	}
}
