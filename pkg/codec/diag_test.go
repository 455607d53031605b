package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/tagpack/tagpack/pkg/value"
)

func TestDiagnose(t *testing.T) {
	v := value.Map(
		value.Pair{Key: value.Text("id"), Value: value.Int(7)},
		value.Pair{Key: value.Text("blob"), Value: value.Bytes([]byte{0xDE, 0xAD})},
	)
	data, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	for _, want := range []string{`"id": 7`, `h'dead'`, "0:"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic output missing %q:\n%s", want, out)
		}
	}
}

func TestDiagnose_MultipleValues(t *testing.T) {
	out, err := Diagnose([]byte{0x01, 0xC3, 0xA2, 'o', 'k'})
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
}

func TestDiagnose_StopsAtError(t *testing.T) {
	_, err := Diagnose([]byte{0x01, 0xC1})
	if !errors.Is(err, ErrUnknownTag) {
		t.Errorf("expected ErrUnknownTag, got %v", err)
	}
}
