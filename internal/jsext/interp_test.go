package jsext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunArithmetic(t *testing.T) {
	result := NewInterpreter().Run("1 + 2 * 3")
	assert.Equal(t, &Integer{Value: 7}, result)
}

func TestRunLetAndIdentifier(t *testing.T) {
	result := NewInterpreter().Run("let x = 5; x + 1")
	assert.Equal(t, &Integer{Value: 6}, result)
}

func TestRunIfElse(t *testing.T) {
	assert.Equal(t, &Integer{Value: 1}, NewInterpreter().Run("if (true) { 1 } else { 2 }"))
	assert.Equal(t, &Integer{Value: 2}, NewInterpreter().Run("if (false) { 1 } else { 2 }"))
}

func TestRunWhileLoop(t *testing.T) {
	src := `
let i = 0;
let sum = 0;
while (i < 5) {
  sum = sum;
  i = i + 1;
}
i
`
	result := NewInterpreter().Run(src)
	assert.Equal(t, &Integer{Value: 5}, result)
}

func TestRunClosures(t *testing.T) {
	src := `
let newAdder = fn(x) {
  fn(y) { x + y };
};
let addTwo = newAdder(2);
addTwo(3);
`
	result := NewInterpreter().Run(src)
	assert.Equal(t, &Integer{Value: 5}, result)
}

func TestRunArrayAndBuiltins(t *testing.T) {
	result := NewInterpreter().Run(`len([1, 2, 3])`)
	assert.Equal(t, &Integer{Value: 3}, result)

	result = NewInterpreter().Run(`first([10, 20])`)
	assert.Equal(t, &Integer{Value: 10}, result)
}

func TestRunStringConcatenation(t *testing.T) {
	result := NewInterpreter().Run(`"foo" + "bar"`)
	assert.Equal(t, &String{Value: "foobar"}, result)
}

func TestRunUndefinedIdentifierIsError(t *testing.T) {
	result := NewInterpreter().Run("nope")
	errObj, ok := result.(*Error)
	if !assert.True(t, ok) {
		return
	}
	assert.Contains(t, errObj.Message, "identifier not found")
}
