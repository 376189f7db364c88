package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: MakeCode(0, 0x00), expect: "\"\""},
		{code: MakeCode(1, 0x00), expect: "\"0\""},
		{code: MakeCode(1, 0x01), expect: "\"1\""},
		{code: MakeCode(3, 0x05), expect: "\"101\""},
		{code: MakeCode(8, 0x01), expect: "\"00000001\""},
	}
	for _, row := range testData {
		actual := row.code.String()
		if row.expect != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	type testRow struct {
		a      Code
		b      Code
		expect bool
	}

	testData := [...]testRow{
		{a: MakeCode(1, 0x01), b: MakeCode(3, 0x05), expect: true},
		{a: MakeCode(2, 0x02), b: MakeCode(3, 0x05), expect: true},
		{a: MakeCode(3, 0x05), b: MakeCode(3, 0x05), expect: true},
		{a: MakeCode(1, 0x00), b: MakeCode(3, 0x05), expect: false},
		{a: MakeCode(3, 0x05), b: MakeCode(1, 0x01), expect: false},
		{a: MakeCode(2, 0x03), b: MakeCode(3, 0x05), expect: false},
	}
	for _, row := range testData {
		actual := row.a.IsPrefixOf(row.b)
		if row.expect != actual {
			t.Errorf("IsPrefixOf(%s, %s): expected %v, got %v", row.a, row.b, row.expect, actual)
		}
	}
}
