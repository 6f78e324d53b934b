package logger_test

import (
	"testing"

	"github.com/nyanrus/decs/internal/logger"
	"github.com/nyanrus/decs/internal/test"
)

func locationFor(contents string, start int32, length int32) *logger.MsgLocation {
	log := logger.NewDeferLog()
	source := test.SourceForTest(contents)
	log.AddRangeError(&source, logger.Range{Loc: logger.Loc{Start: start}, Len: length}, "")
	return log.Done()[0].Location
}

func TestLineAndColumnForOffset(t *testing.T) {
	expectLocation := func(t *testing.T, contents string, start int32, line int, column int, lineText string) {
		t.Helper()
		loc := locationFor(contents, start, 0)
		test.AssertEqual(t, loc.Line, line)
		test.AssertEqual(t, loc.Column, column)
		test.AssertEqual(t, loc.LineText, lineText)
	}

	expectLocation(t, "a", 0, 1, 0, "a")
	expectLocation(t, "a\nb", 2, 2, 0, "b")
	expectLocation(t, "a\r\nb", 3, 2, 0, "b")
	expectLocation(t, "a\rb", 2, 2, 0, "b")
	expectLocation(t, "a\u2028b", 4, 2, 0, "b")
	expectLocation(t, "a\u2029b", 4, 2, 0, "b")
	expectLocation(t, "ab\ncd\nef", 4, 2, 1, "cd")
	expectLocation(t, "ab\ncd\nef", 8, 3, 2, "ef")
}

func TestDeferLogSortsByLocation(t *testing.T) {
	log := logger.NewDeferLog()
	source := test.SourceForTest("aa\nbb\ncc\n")
	log.AddError(&source, logger.Loc{Start: 6}, "third")
	log.AddError(&source, logger.Loc{Start: 0}, "first")
	log.AddError(&source, logger.Loc{Start: 3}, "second")
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "no location"})

	msgs := log.Done()
	test.AssertEqual(t, len(msgs), 4)
	test.AssertEqual(t, msgs[0].Text, "no location")
	test.AssertEqual(t, msgs[1].Text, "first")
	test.AssertEqual(t, msgs[2].Text, "second")
	test.AssertEqual(t, msgs[3].Text, "third")
}

func TestDeferLogHasErrors(t *testing.T) {
	log := logger.NewDeferLog()
	test.AssertEqual(t, log.HasErrors(), false)
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "w"})
	test.AssertEqual(t, log.HasErrors(), false)
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "e"})
	test.AssertEqual(t, log.HasErrors(), true)
}

func TestMsgString(t *testing.T) {
	expectString := func(t *testing.T, msg logger.Msg, expected string) {
		t.Helper()
		text := msg.String(logger.StderrOptions{IncludeSource: true}, logger.TerminalInfo{})
		test.AssertEqual(t, text, expected)
	}

	source := test.SourceForTest("let x = @dec class {};\n")
	log := logger.NewDeferLog()
	log.AddRangeError(&source, logger.Range{Loc: logger.Loc{Start: 8}, Len: 4}, "Unexpected \"@\"")

	expectString(t, log.Done()[0],
		"<stdin>:1:8: error: Unexpected \"@\"\nlet x = @dec class {};\n        ~~~~\n")

	expectString(t, logger.Msg{Kind: logger.Warning, Text: "no location"},
		"warning: no location\n")
}

func TestRangeOfString(t *testing.T) {
	source := test.SourceForTest("x = 'abc'")
	r := source.RangeOfString(logger.Loc{Start: 4})
	test.AssertEqual(t, r.Loc.Start, int32(4))
	test.AssertEqual(t, r.Len, int32(5))

	source = test.SourceForTest("x = \"a\\\"b\"")
	r = source.RangeOfString(logger.Loc{Start: 4})
	test.AssertEqual(t, r.Len, int32(6))
}
