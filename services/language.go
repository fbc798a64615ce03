package services

import "wellness-coach-backend/models"

// DetectLanguage returns Hindi if the text contains any Devanagari
// codepoint (U+0900..U+097F), English otherwise.
func DetectLanguage(text string) models.Language {
    for _, r := range text {
        if r >= 0x0900 && r <= 0x097F {
            return models.LanguageHindi
        }
    }
    return models.LanguageEnglish
}
