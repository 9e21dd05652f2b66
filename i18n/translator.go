package i18n

// Translator retrieves localized reason phrases for violation codes.
// data provides optional metadata to embed in the phrase (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			if k := data["key"]; k != "" {
				return "必須フィールド \"" + k + "\" がありません"
			}
			return "必須フィールドがありません"
		case "invalid_type":
			return "型が不正です"
		case "unknown_key":
			return "不正なキーが含まれています"
		case "pattern":
			return "パターンに一致しません"
		case "regex_input":
			return "正規表現に適用できません"
		case "empty_array":
			return "空にできません"
		case "invalid_element":
			return "要素の型が不正です"
		case "predicate":
			return "述語が失敗しました"
		}
	default: // "en"
		switch code {
		case "required":
			if k := data["key"]; k != "" {
				return "required field with key \"" + k + "\" is missing"
			}
			return "required field is missing"
		case "invalid_type":
			switch data["expected"] {
			case "string":
				return "is not a string"
			case "number":
				return "is not a number"
			case "bool":
				return "is not a boolean"
			case "object":
				return "is not an object"
			case "array":
				return "is not an array"
			case "null":
				return "is not null"
			}
			return "invalid type"
		case "unknown_key":
			return "contains an illegal key"
		case "pattern":
			return "does not fit pattern"
		case "regex_input":
			return "cannot be used in a regex"
		case "empty_array":
			return "should not be empty"
		case "invalid_element":
			return "has invalid type"
		case "predicate":
			return "predicate failed"
		}
	}
	return code
}

// Default returns the built-in English Translator.
func Default() Translator { return dictTranslator{lang: "en"} }

// ForLanguage returns a dictionary-based Translator for the given language
// tag ("en"/"ja"). Unknown languages fall back to English.
func ForLanguage(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}
