package wrapper_test

import (
	"testing"

	"github.com/hbjs97/shw/internal/wrapper"
	"github.com/stretchr/testify/assert"
)

func TestClassify_NoOp(t *testing.T) {
	res := wrapper.Classify("", 0)
	assert.Equal(t, wrapper.KindNoOp, res.Kind)
	assert.Equal(t, 0, res.ExitCode)
}

func TestClassify_TrailingNewlineOnlyIsNoOp(t *testing.T) {
	res := wrapper.Classify("\n", 0)
	assert.Equal(t, wrapper.KindNoOp, res.Kind)
}

func TestClassify_Printed(t *testing.T) {
	res := wrapper.Classify("hello\n", 0)
	assert.Equal(t, wrapper.KindPrinted, res.Kind)
	assert.Equal(t, "hello", res.Output)
	assert.Equal(t, 0, res.ExitCode)
}

func TestClassify_Directive(t *testing.T) {
	res := wrapper.Classify("EVAL::cd /tmp\n", 0)
	assert.Equal(t, wrapper.KindDirective, res.Kind)
	assert.Equal(t, "cd /tmp", res.Directive)
	assert.Empty(t, res.Output)
}

func TestClassify_EmptyDirective(t *testing.T) {
	res := wrapper.Classify("EVAL::", 0)
	assert.Equal(t, wrapper.KindDirective, res.Kind)
	assert.Empty(t, res.Directive)
}

func TestClassify_ExitCodeWinsOverPrefix(t *testing.T) {
	// 실패한 command의 출력은 해석되지 않는다.
	res := wrapper.Classify("EVAL::pwd\n", 2)
	assert.Equal(t, wrapper.KindShortCircuit, res.Kind)
	assert.Equal(t, 2, res.ExitCode)
	assert.Empty(t, res.Directive)
}

func TestClassify_PrefixMidLineIsPlainOutput(t *testing.T) {
	res := wrapper.Classify("note: EVAL:: is reserved\n", 0)
	assert.Equal(t, wrapper.KindPrinted, res.Kind)
	assert.Equal(t, "note: EVAL:: is reserved", res.Output)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "noop", wrapper.KindNoOp.String())
	assert.Equal(t, "printed", wrapper.KindPrinted.String())
	assert.Equal(t, "directive", wrapper.KindDirective.String())
	assert.Equal(t, "short-circuit", wrapper.KindShortCircuit.String())
}
