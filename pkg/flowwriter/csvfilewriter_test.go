package flowwriter

import (
	"bytes"
	"strings"
	"testing"
)

var wantedCsvFileLines = []string{
	"2022-08-09T10:03:27.7257644Z,NSG-VIEW,DefaultRule_AllowInternetOutBound,10.0.0.4,50276,51.104.229.52,443,out,allow,end,2839,5801",
	"2022-08-09T10:03:27.7257644Z,NSG-VIEW,DefaultRule_DenyAllInBound,117.88.229.255,50996,10.0.0.4,23,in,deny,begin,,",
	"2022-08-09T10:03:27.7257644Z,NSG-VIEW,UserRule_ssh,38.88.252.187,59246,10.0.0.4,22,in,allow,,,",
}

func TestCsvFileWriter(t *testing.T) {
	var buffer bytes.Buffer
	csvWriter, err := NewCsvFileWriter(&buffer)
	if err != nil {
		t.Error(err)
	}

	for _, tuple := range testTuples() {
		if err := csvWriter.WriteFlowTuple(tuple); err != nil {
			t.Error(err)
		}
	}

	if err := csvWriter.Flush(); err != nil {
		t.Error(err)
	}

	t.Run("TestCsvFileWriterWritesCorrectHeaders", func(t *testing.T) {
		headerLine := strings.Split(buffer.String(), "\n")[0]
		got := strings.Split(headerLine, ",")

		if len(got) != len(csvHeaders) {
			t.Errorf("unexpected number of headers.  want: %v, got: %v", csvHeaders, got)
		}

		for i, h := range csvHeaders {
			if i > (len(got)-1) || got[i] != h {
				t.Errorf("missing header '%v'", h)
			}
		}
	})

	t.Run("TestFileLines", func(t *testing.T) {
		allFileLines := strings.Split(buffer.String(), "\n")
		fileLines := allFileLines[1:(len(allFileLines) - 1)]

		if len(fileLines) != len(wantedCsvFileLines) {
			t.Fatalf("unexpected number of file lines. want: %v, got: %v", len(wantedCsvFileLines), len(fileLines))
		}

		for i, wantedLine := range wantedCsvFileLines {
			if fileLines[i] != wantedLine {
				t.Errorf("unexpected line %v. want: %v, got: %v", i, wantedLine, fileLines[i])
			}
		}
	})
}
