// Package validator provides pure predicates for common string formats and
// Rule adapters that turn them into translation-friendly validation errors.
//
// # Predicates
//
// Each predicate takes a string and returns a bool. They never panic and never
// normalize their input: no trimming, no case folding (IsEmail is the one
// case-insensitive check), no Unicode normalization.
//
//   - IsEmail          – localpart@domain.tld, optional two-letter country suffix
//   - IsAllChinese     – every rune in U+4E00..U+9FA5 (true for "")
//   - IsAllEnglish     – ASCII letters only, non-empty
//   - IsAllDigit       – ASCII digits only, non-empty
//   - IsChineseTel     – 11-digit mainland mobile number (13x/14x/15x/17x/18x)
//   - IsChineseIDCard  – 18-character resident ID: birth date and mod-11 check code
//   - IsVisaCard       – 4 followed by 12 or 15 digits
//   - IsMasterCard     – 51-55 followed by 14 digits
//   - IsLink           – contains an http:// or https:// link
//
// Card predicates check prefix and length only; no Luhn digit is verified.
// IsLink matches anywhere in the input, not only the whole string.
//
// # Rules
//
// Every predicate has a Rule constructor (ValidEmail, AllChinese, ...,
// ContainsLink). Rules are evaluated with Apply, which aggregates failures into
// ValidationErrors:
//
//	err := validator.Apply(
//	    validator.Required("phone", form.Phone),
//	    validator.ValidChineseTel("phone", form.Phone),
//	    validator.ValidChineseIDCard("id_number", form.IDNumber),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[i].TranslationKey, e.g. "validation.chinese_tel"
//	}
//
// # Kinds
//
// Kind names a format ("email", "chinese_id_card", ...). ParseKind, Check and
// RuleFor dispatch by name, which is what the CLI and HTTP API use.
// RegisterTags exposes the same predicates as go-playground/validator tags
// named "is_<kind>".
//
// All package state is read-only after init, so everything here is safe for
// concurrent use.
package validator
