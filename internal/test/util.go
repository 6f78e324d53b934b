package test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/nyanrus/decs/internal/logger"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%v != %v", observed, expected)
	}
}

func AssertEqualWithDiff(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		stringA := fmt.Sprintf("%v", observed)
		stringB := fmt.Sprintf("%v", expected)
		if strings.Contains(stringA, "\n") || strings.Contains(stringB, "\n") {
			t.Fatal("\n" + Diff(stringB, stringA, logger.SupportsColorEscapes))
		} else {
			t.Fatalf("%v != %v", observed, expected)
		}
	}
}

// AssertDeepEqual is for comparing structured values. The diff shows what
// changed and the full dump shows the surrounding context.
func AssertDeepEqual(t *testing.T, observed interface{}, expected interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, observed, opts...); diff != "" {
		t.Fatalf("mismatch (-expected +observed):\n%s\nobserved: %s", diff, spew.Sdump(observed))
	}
}

func SourceForTest(contents string) logger.Source {
	return logger.Source{
		Index:      0,
		PrettyPath: "<stdin>",
		Contents:   contents,
	}
}
