package nmea

import (
	"errors"
	"testing"
)

func TestParseSentenceType(t *testing.T) {
	for _, id := range []string{"DBS", "dbs", " DBS "} {
		got, ok := ParseSentenceType(id)
		if !ok || got != DBS {
			t.Fatalf("ParseSentenceType(%q) = %v, %v", id, got, ok)
		}
	}
	if got, ok := ParseSentenceType("XYZ"); ok || got != Unknown {
		t.Fatalf("unexpected result for XYZ: %v, %v", got, ok)
	}
}

func TestSentenceTypeString(t *testing.T) {
	if DBT.String() != "DBT" {
		t.Fatalf("unexpected name %s", DBT)
	}
	if SentenceType(999).String() != "UNKNOWN" {
		t.Fatalf("out of range type should render as UNKNOWN")
	}
	for typ, name := range sentenceNames {
		if typ == Unknown {
			continue
		}
		back, ok := ParseSentenceType(name)
		if !ok || back != typ {
			t.Fatalf("name %s does not map back to %d", name, typ)
		}
	}
}

func TestWrongSentenceHeaderError(t *testing.T) {
	var err error = &WrongSentenceHeaderError{Expected: DBS, Found: DBT}
	if !errors.Is(err, ErrWrongSentenceHeader) {
		t.Fatalf("expected errors.Is to match sentinel")
	}
	if errors.Is(err, ErrSyntax) {
		t.Fatalf("header error must not match syntax sentinel")
	}
	if got := err.Error(); got != "wrong sentence header: expected DBS, found DBT" {
		t.Fatalf("unexpected message %q", got)
	}
}
