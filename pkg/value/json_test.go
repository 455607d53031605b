package value

import (
	"strings"
	"testing"
)

func TestFromJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Value
	}{
		{name: "null", in: `null`, want: Nil()},
		{name: "bool", in: `true`, want: Bool(true)},
		{name: "integer number", in: `42`, want: Int(42)},
		{name: "negative integer", in: `-7`, want: Int(-7)},
		{name: "fractional number", in: `2.5`, want: Float(2.5)},
		{name: "exponent number", in: `1e3`, want: Float(1000)},
		{name: "string", in: `"hello"`, want: Text("hello")},
		{name: "array", in: `[1,"two",null]`, want: List(Int(1), Text("two"), Nil())},
		{
			name: "object",
			in:   `{"a":1,"b":[true]}`,
			want: Map(
				Pair{Key: Text("a"), Value: Int(1)},
				Pair{Key: Text("b"), Value: List(Bool(true))},
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromJSON([]byte(tc.in))
			if err != nil {
				t.Fatalf("FromJSON failed: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("FromJSON mismatch: got kind %s", got.Kind())
			}
		})
	}
}

func TestFromJSON_PreservesMemberOrder(t *testing.T) {
	got, err := FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	pairs := got.Pairs()
	keys := []string{pairs[0].Key.Text(), pairs[1].Key.Text(), pairs[2].Key.Text()}
	want := []string{"z", "a", "m"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("member order not preserved: got %v, want %v", keys, want)
		}
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	for _, in := range []string{``, `{`, `[1,`, `"unterminated`, `1 2`} {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestToJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   Value
		want string
	}{
		{name: "nil", in: Nil(), want: `null`},
		{name: "bool", in: Bool(false), want: `false`},
		{name: "int", in: Int(-12), want: `-12`},
		{name: "float", in: Float(2.5), want: `2.5`},
		{name: "text", in: Text("hé\"llo"), want: `"hé\"llo"`},
		{name: "bytes as base64", in: Bytes([]byte{0xDE, 0xAD}), want: `"3q0="`},
		{name: "list", in: List(Int(1), Nil()), want: `[1,null]`},
		{
			name: "map preserves order",
			in: Map(
				Pair{Key: Text("z"), Value: Int(1)},
				Pair{Key: Text("a"), Value: Int(2)},
			),
			want: `{"z":1,"a":2}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToJSON(tc.in)
			if err != nil {
				t.Fatalf("ToJSON failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("ToJSON = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestToJSON_RejectsNonTextKeys(t *testing.T) {
	in := Map(Pair{Key: Int(1), Value: Text("one")})
	_, err := ToJSON(in)
	if err == nil {
		t.Fatal("expected error for non-text map key")
	}
	if !strings.Contains(err.Error(), "key must be text") {
		t.Errorf("error should name the key restriction, got: %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{"id":7,"tags":["a","b"],"meta":{"ok":true,"score":1.5},"gone":null}`
	v, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	out, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(out) != in {
		t.Errorf("round trip changed document:\n in: %s\nout: %s", in, out)
	}
}
