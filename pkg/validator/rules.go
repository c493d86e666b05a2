package validator

// ValidEmail validates that a string is an email address as accepted by IsEmail.
func ValidEmail(field, value string) Rule {
	return predicateRule(field, value, IsEmail, "must be a valid email address", "validation.email")
}

// AllChinese validates that a string consists of Chinese ideographs only.
// An empty value passes; combine with Required when the field is mandatory.
func AllChinese(field, value string) Rule {
	return predicateRule(field, value, IsAllChinese, "must contain only Chinese characters", "validation.all_chinese")
}

func AllEnglish(field, value string) Rule {
	return predicateRule(field, value, IsAllEnglish, "must contain only English letters", "validation.all_english")
}

func AllDigit(field, value string) Rule {
	return predicateRule(field, value, IsAllDigit, "must contain only digits", "validation.all_digit")
}

// ValidChineseTel validates a mainland China mobile number.
func ValidChineseTel(field, value string) Rule {
	return predicateRule(field, value, IsChineseTel, "must be a valid Chinese mobile number", "validation.chinese_tel")
}

// ValidChineseIDCard validates an 18-character resident ID number, including its check digit.
func ValidChineseIDCard(field, value string) Rule {
	return predicateRule(field, value, IsChineseIDCard, "must be a valid Chinese ID card number", "validation.chinese_id_card")
}

func ValidVisaCard(field, value string) Rule {
	return predicateRule(field, value, IsVisaCard, "must be a valid Visa card number", "validation.visa_card")
}

func ValidMasterCard(field, value string) Rule {
	return predicateRule(field, value, IsMasterCard, "must be a valid MasterCard number", "validation.master_card")
}

// ContainsLink validates that a string contains an http or https link.
func ContainsLink(field, value string) Rule {
	return predicateRule(field, value, IsLink, "must contain a link", "validation.link")
}

// Required validates that a string is not empty. No trimming is applied.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func predicateRule(field, value string, pred func(string) bool, message, key string) Rule {
	return Rule{
		Check: func() bool {
			return pred(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
