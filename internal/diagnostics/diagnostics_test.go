package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSafeDerivedFromSeverity(t *testing.T) {
	t.Run("empty list is safe", func(t *testing.T) {
		assert.True(t, IsSafe(nil))
	})

	t.Run("warnings and infos never affect safety", func(t *testing.T) {
		l := List{
			NewWarning(CodeTableGradeClamped, "clamped"),
			NewInfo(CodeTablePtClamped, "clamped"),
		}
		assert.True(t, l.IsSafe())
	})

	t.Run("any error makes the list unsafe", func(t *testing.T) {
		l := List{
			NewWarning(CodeHighUtilization, "high"),
			NewError(CodeShearExceedsMax, "too much shear"),
		}
		assert.False(t, l.IsSafe())
		assert.Len(t, l.Errors(), 1)
		assert.Len(t, l.Warnings(), 1)
	})
}

func TestOptionsAndErrorString(t *testing.T) {
	e := NewError(CodeInputNonPositive, "width must be positive",
		WithField("b_mm"), WithHint("enter the web width"), WithClause("26.5.1.1"))

	require.Equal(t, SeverityError, e.Severity)
	assert.Equal(t, "b_mm", e.Field)
	assert.Equal(t, "enter the web width", e.Hint)
	assert.Equal(t, "[E_INPUT_NON_POSITIVE] width must be positive (field: b_mm) [IS 456 26.5.1.1]", e.Error())
}

func TestMergePreservesOrder(t *testing.T) {
	a := List{NewInfo("I_A", "a")}
	b := List{NewInfo("I_B", "b"), NewInfo("I_C", "c")}

	m := Merge(a, nil, b)
	require.Len(t, m, 3)
	assert.Equal(t, []string{"I_A", "I_B", "I_C"}, []string{m[0].Code, m[1].Code, m[2].Code})
	assert.True(t, m.HasCode("I_B"))
	assert.False(t, m.HasCode("I_D"))
}
