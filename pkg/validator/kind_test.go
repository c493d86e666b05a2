package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []validator.Kind{
		validator.KindEmail,
		validator.KindChinese,
		validator.KindEnglish,
		validator.KindDigit,
		validator.KindChineseTel,
		validator.KindChineseIDCard,
		validator.KindVisaCard,
		validator.KindMasterCard,
		validator.KindLink,
	}, validator.Kinds())

	kinds := validator.Kinds()
	kinds[0] = "mutated"
	assert.Equal(t, validator.KindEmail, validator.Kinds()[0], "returned slice is a copy")
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	t.Run("normalizes names", func(t *testing.T) {
		for in, want := range map[string]validator.Kind{
			"email":           validator.KindEmail,
			"EMAIL":           validator.KindEmail,
			"chinese-id-card": validator.KindChineseIDCard,
			"Chinese_Tel":     validator.KindChineseTel,
			" link ":          validator.KindLink,
		} {
			got, err := validator.ParseKind(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, in := range []string{"", "phone", "emails", "luhn"} {
			_, err := validator.ParseKind(in)
			assert.ErrorIs(t, err, validator.ErrUnknownKind, in)
		}
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	samples := map[validator.Kind]string{
		validator.KindEmail:         "test@gmail.com",
		validator.KindChinese:       "测试",
		validator.KindEnglish:       "test",
		validator.KindDigit:         "12345",
		validator.KindChineseTel:    "13812345678",
		validator.KindChineseIDCard: "15210319861215033x",
		validator.KindVisaCard:      "4111111111111111",
		validator.KindMasterCard:    "5500000000000004",
		validator.KindLink:          "visit http://example.com/page now",
	}
	require.Len(t, samples, len(validator.Kinds()))

	for kind, value := range samples {
		ok, err := validator.Check(kind, value)
		require.NoError(t, err, kind)
		assert.True(t, ok, kind)

		ok, err = validator.Check(kind, "!")
		require.NoError(t, err, kind)
		assert.False(t, ok, kind)
	}

	_, err := validator.Check("phone", "13812345678")
	assert.ErrorIs(t, err, validator.ErrUnknownKind)
}

func TestRuleFor(t *testing.T) {
	t.Parallel()

	rule, err := validator.RuleFor(validator.KindChineseTel, "phone", "12812345678")
	require.NoError(t, err)
	assert.False(t, rule.Check())
	assert.Equal(t, "phone", rule.Error.Field)
	assert.Equal(t, "validation.chinese_tel", rule.Error.TranslationKey)

	_, err = validator.RuleFor("phone", "phone", "13812345678")
	assert.ErrorIs(t, err, validator.ErrUnknownKind)
}
