package services

import (
    "strings"

    "wellness-coach-backend/models"
)

// CrisisDetector scans messages against the crisis lexicon. It is pure:
// the lexicon snapshot is passed in per call so a hot config swap never
// races a running detection.
type CrisisDetector struct{}

func NewCrisisDetector() *CrisisDetector {
    return &CrisisDetector{}
}

// Detect checks the text against the crisis keyword sets, suicide intent
// first. Matching is case-insensitive substring containment, so a short
// phrase can match inside a longer word. The first hit wins and carries
// the fixed emergency message for the detected language.
func (cd *CrisisDetector) Detect(text string, lexicon models.CrisisLexicon) models.CrisisResult {
    cleaned := strings.ToLower(strings.TrimSpace(text))
    lang := DetectLanguage(text)

    for _, keywords := range []models.CrisisKeywords{lexicon.SuicideIntent, lexicon.SelfHarm} {
        for _, word := range keywords.Words(lang) {
            if strings.Contains(cleaned, strings.ToLower(word)) {
                return models.CrisisResult{
                    IsCrisis: true,
                    Trigger:  word,
                    Message:  emergencyResponse(lang),
                    Language: lang,
                }
            }
        }
    }

    return models.CrisisResult{IsCrisis: false, Language: lang}
}

// emergencyResponse is fixed per language and always carries a real
// helpline number. It deliberately does not come from the template pools:
// a broken config replace must never blank out the crisis reply.
func emergencyResponse(lang models.Language) string {
    if lang == models.LanguageHindi {
        return "मैं वास्तव में आपकी बातों से चिंतित हूं। कृपया जानें कि आप अकेले नहीं हैं। आप तुरंत एक भरोसेमंद व्यक्ति से बात करें या हेल्पलाइन 9152987821 (Vandrevala Foundation) पर कॉल करें। मैं एक AI हूं और पेशेवर मदद की जगह नहीं ले सकता।"
    }
    return "I'm really concerned about what you're sharing. Please know that you're not alone. Reach out to a trusted person immediately or call the iCall helpline at 9152987821. I am an AI and cannot provide professional medical or crisis intervention."
}
