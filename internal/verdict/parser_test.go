package verdict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/models"
)

func TestParse(t *testing.T) {
	t.Run("should extract a positive verdict with its justification", func(t *testing.T) {
		raw := "Positive\nThe PR adds @PreAuthorize checks in OrderController.java and introduces validateToken() in JwtFilter.java."

		v, err := Parse(raw)

		require.NoError(t, err)
		assert.Equal(t, models.LabelPositive, v.Label)
		assert.Equal(t, "The PR adds @PreAuthorize checks in OrderController.java and introduces validateToken() in JwtFilter.java.", v.Justification)
		assert.Equal(t, raw, v.Raw)
	})

	t.Run("should extract negative and neutral verdicts", func(t *testing.T) {
		v, err := Parse("Negative\nOnly a dependency version bump in pom.xml, no behavior change.")
		require.NoError(t, err)
		assert.Equal(t, models.LabelNegative, v.Label)

		v, err = Parse("Neutral\nRenames fields in SecurityConfig.java without changing behavior.")
		require.NoError(t, err)
		assert.Equal(t, models.LabelNeutral, v.Label)
	})

	t.Run("should not match labels case-insensitively", func(t *testing.T) {
		v, err := Parse("positive\nlowercase labels do not count")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrUnparseableVerdict))
		assert.Equal(t, models.LabelUnparseable, v.Label)
	})

	t.Run("should not match labels embedded in longer words", func(t *testing.T) {
		v, err := Parse("The change is Positively reviewed")

		require.Error(t, err)
		assert.Equal(t, models.LabelUnparseable, v.Label)
	})

	t.Run("should reject a response with two distinct labels", func(t *testing.T) {
		v, err := Parse("Positive\nOr maybe Negative, hard to say.")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrUnparseableVerdict))
		assert.Equal(t, models.LabelUnparseable, v.Label)
	})

	t.Run("should tolerate the same label repeated", func(t *testing.T) {
		v, err := Parse("Positive\nThis is Positive because SecurityConfig.java now restricts access.")

		require.NoError(t, err)
		assert.Equal(t, models.LabelPositive, v.Label)
	})

	t.Run("should reject an empty response", func(t *testing.T) {
		v, err := Parse("")

		require.Error(t, err)
		assert.Equal(t, models.LabelUnparseable, v.Label)
	})

	t.Run("should collect file class and method references in order", func(t *testing.T) {
		v, err := Parse("Positive\nChanges in JwtFilter.java and application.yml affect AuthController via checkAccess().")

		require.NoError(t, err)
		assert.Equal(t, []string{"JwtFilter.java", "application.yml", "AuthController", "checkAccess()"}, v.FileRefs)
	})

	t.Run("should deduplicate repeated references", func(t *testing.T) {
		v, err := Parse("Positive\nSecurityConfig.java changed; SecurityConfig.java now requires roles.")

		require.NoError(t, err)
		assert.Equal(t, []string{"SecurityConfig.java"}, v.FileRefs)
	})

	t.Run("should return empty references for a vague justification", func(t *testing.T) {
		v, err := Parse("Negative\nNothing relevant here.")

		require.NoError(t, err)
		assert.Empty(t, v.FileRefs)
	})

	t.Run("should drop only the label line from the justification", func(t *testing.T) {
		v, err := Parse("  Negative  \nPlain refactor of formatting in pom.xml.")

		require.NoError(t, err)
		assert.Equal(t, "Plain refactor of formatting in pom.xml.", v.Justification)
	})
}
