package flowwriter

import (
	"bytes"
	"strings"
	"testing"
)

var wantedLines = [][]string{
	{"2022-08-09T10:03:27.7257644Z", "NSG-VIEW", "DefaultRule_AllowInternetOutBound", "10.0.0.4", "50276", "51.104.229.52", "443", "out", "allow", "end", "2839", "5801"},
	{"2022-08-09T10:03:27.7257644Z", "NSG-VIEW", "DefaultRule_DenyAllInBound", "117.88.229.255", "50996", "10.0.0.4", "23", "in", "deny", "begin"},
	{"2022-08-09T10:03:27.7257644Z", "NSG-VIEW", "UserRule_ssh", "38.88.252.187", "59246", "10.0.0.4", "22", "in", "allow"},
}

func TestConsoleWriter(t *testing.T) {
	var buffer bytes.Buffer
	testFlowWriter := NewConsoleWriter(&buffer)

	for _, tuple := range testTuples() {
		if err := testFlowWriter.WriteFlowTuple(tuple); err != nil {
			t.Fatalf("failed to set up test: %v", err)
		}
	}

	if err := testFlowWriter.Flush(); err != nil {
		t.Fatalf("failed to flush: %v", err)
	}

	lines := nonEmptyLines(buffer.String())

	t.Run("TestHeader", func(t *testing.T) {
		got := strings.Fields(lines[0])

		for i, h := range tableHeaders {
			if i > (len(got)-1) || got[i] != h {
				t.Errorf("missing header '%v'", h)
			}
		}
	})

	t.Run("TestTableLines", func(t *testing.T) {
		if len(lines)-1 != len(wantedLines) {
			t.Fatalf("unexpected number of table lines. want: %v, got: %v", len(wantedLines), len(lines)-1)
		}

		for i, wanted := range wantedLines {
			got := strings.Fields(lines[i+1])

			for j, w := range wanted {
				if j > (len(got)-1) || w != got[j] {
					t.Errorf("missing table column value: '%v' in line '%v'", w, lines[i+1])
				}
			}
		}
	})

	t.Run("FlushResetsTable", func(t *testing.T) {
		buffer.Reset()
		if err := testFlowWriter.Flush(); err != nil {
			t.Fatalf("failed to flush: %v", err)
		}

		if buffer.Len() != 0 {
			t.Errorf("expected empty table not to be rendered, got %q", buffer.String())
		}
	})
}
