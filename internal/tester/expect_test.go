package tester

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedDiagOnSameLine(t *testing.T) {
	props := Load(`contract C {
    uint256 x = "nope"; //~ ERROR cannot convert string to uint256
}
`, "")

	if assert.Len(t, props.ExpectedDiags, 1) {
		diag := props.ExpectedDiags[0]
		assert.Equal(t, 2, diag.Line)
		assert.Equal(t, DIAG_ERROR, diag.Kind)
		assert.Equal(t, "cannot convert string to uint256", diag.Message)
	}
}

func TestExpectedDiagCaretsPointUp(t *testing.T) {
	props := Load(`contract C {
    uint256 x = bad();
    //~^ ERROR undeclared identifier
    //~^^ WARNING unused variable
}
`, "")

	if assert.Len(t, props.ExpectedDiags, 2) {
		assert.Equal(t, 2, props.ExpectedDiags[0].Line)
		assert.Equal(t, DIAG_ERROR, props.ExpectedDiags[0].Kind)
		assert.Equal(t, 2, props.ExpectedDiags[1].Line)
		assert.Equal(t, DIAG_WARNING, props.ExpectedDiags[1].Kind)
	}
}

func TestExpectedDiagPipeReusesPreviousLine(t *testing.T) {
	props := Load(`bad line here
//~^ ERROR first
//~| NOTE second on the same line
`, "")

	if assert.Len(t, props.ExpectedDiags, 2) {
		assert.Equal(t, 1, props.ExpectedDiags[0].Line)
		assert.Equal(t, 1, props.ExpectedDiags[1].Line)
		assert.Equal(t, DIAG_NOTE, props.ExpectedDiags[1].Kind)
	}
}

func TestExpectedDiagRevisionScope(t *testing.T) {
	const file = `uint256 x; //~[strict] ERROR only under strict
`

	strict := Load(file, "strict")
	assert.Len(t, strict.ExpectedDiags, 1)

	relaxed := Load(file, "")
	assert.Empty(t, relaxed.ExpectedDiags)
}

func TestExpectedDiagUnknownKindIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		Load("uint256 x; //~ OOPS not a kind\n", "")
	})
}

func TestDiagKindStrings(t *testing.T) {
	assert.Equal(t, "ERROR", DIAG_ERROR.String())
	assert.Equal(t, "WARNING", DIAG_WARNING.String())
	assert.Equal(t, "NOTE", DIAG_NOTE.String())
	assert.Equal(t, "HELP", DIAG_HELP.String())
}
