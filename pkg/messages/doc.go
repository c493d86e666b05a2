// Package messages renders validator.ValidationError values in the caller's
// language.
//
// Catalogs are YAML files named after their language tag (en.yaml, zh.yaml)
// holding two-level maps:
//
//	validation:
//	  chinese_tel: "{field}必须是有效的手机号码"
//
// Keys are flattened to "validation.chinese_tel", which is the TranslationKey
// produced by the validator package. Placeholders in braces are filled from
// TranslationValues.
//
// The en and zh catalogs are embedded; WithFS replaces them with catalogs read
// from any fs.FS. Match picks the best loaded language for an Accept-Language
// header using golang.org/x/text/language.
package messages
