package delegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func declaredA(int) {}
func declaredB(int) {}

func TestFuncKey_DeclaredFunctions(t *testing.T) {
	keyA := funcKey(declaredA)
	keyB := funcKey(declaredB)

	assert.NotZero(t, keyA)
	assert.NotZero(t, keyB)
	assert.NotEqual(t, keyA, keyB, "distinct functions need distinct identities")
	assert.Equal(t, keyA, funcKey(declaredA), "identity must be stable")
}

func TestFuncKey_NoIdentity(t *testing.T) {
	closure := func(int) {}
	r := &recorder{}

	assert.Zero(t, funcKey(closure))
	assert.Zero(t, funcKey(r.record), "method values carry no identity")

	var nilFn func(int)
	assert.Zero(t, funcKey(nilFn))
	assert.Zero(t, funcKey(42), "non-functions carry no identity")
}

func TestIsPlainFuncName(t *testing.T) {
	tests := []struct {
		name  string
		plain bool
	}{
		{"main.add", true},
		{"github.com/castfn/delegate.declaredA", true},
		{"main.main.func1", false},
		{"github.com/castfn/delegate.TestFuncKey_NoIdentity.func1", false},
		{"main.main.func1.2", false},
		{"github.com/castfn/delegate.(*recorder).record-fm", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.plain, isPlainFuncName(tt.name), tt.name)
	}
}
