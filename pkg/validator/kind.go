package validator

import (
	"fmt"
	"strings"
)

// Kind names one of the supported string formats.
type Kind string

const (
	KindEmail         Kind = "email"
	KindChinese       Kind = "chinese"
	KindEnglish       Kind = "english"
	KindDigit         Kind = "digit"
	KindChineseTel    Kind = "chinese_tel"
	KindChineseIDCard Kind = "chinese_id_card"
	KindVisaCard      Kind = "visa_card"
	KindMasterCard    Kind = "master_card"
	KindLink          Kind = "link"
)

type kindEntry struct {
	kind Kind
	pred func(string) bool
	rule func(field, value string) Rule
}

// Declaration order is the order reported by Kinds.
var kindTable = []kindEntry{
	{KindEmail, IsEmail, ValidEmail},
	{KindChinese, IsAllChinese, AllChinese},
	{KindEnglish, IsAllEnglish, AllEnglish},
	{KindDigit, IsAllDigit, AllDigit},
	{KindChineseTel, IsChineseTel, ValidChineseTel},
	{KindChineseIDCard, IsChineseIDCard, ValidChineseIDCard},
	{KindVisaCard, IsVisaCard, ValidVisaCard},
	{KindMasterCard, IsMasterCard, ValidMasterCard},
	{KindLink, IsLink, ContainsLink},
}

func (k Kind) String() string { return string(k) }

// Kinds returns every supported kind.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindTable))
	for i, e := range kindTable {
		kinds[i] = e.kind
	}
	return kinds
}

// ParseKind resolves a kind name. Matching ignores case and treats '-' like '_',
// so "Chinese-ID-Card" resolves to KindChineseIDCard.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if _, ok := lookupKind(Kind(name)); ok {
		return Kind(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Check runs the predicate registered for kind against value.
func Check(kind Kind, value string) (bool, error) {
	e, ok := lookupKind(kind)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e.pred(value), nil
}

// RuleFor builds the Rule registered for kind.
func RuleFor(kind Kind, field, value string) (Rule, error) {
	e, ok := lookupKind(kind)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e.rule(field, value), nil
}

func lookupKind(kind Kind) (kindEntry, bool) {
	for _, e := range kindTable {
		if e.kind == kind {
			return e, true
		}
	}
	return kindEntry{}, false
}
