package services

import (
    "regexp"
    "sort"
    "strings"

    "wellness-coach-backend/models"
)

// confidenceNormalizer is the score at which confidence saturates at 1.0
const confidenceNormalizer = 5.0

// mixedEmotionGap: if the top two scores differ by less than this, the
// result is flagged as mixed.
const mixedEmotionGap = 2

// EmotionScorer scores messages against every configured emotion category.
// It is a pure function of its input text and the config snapshot.
type EmotionScorer struct{}

func NewEmotionScorer() *EmotionScorer {
    return &EmotionScorer{}
}

// Analyze scores the text against each category's lexicon for the detected
// language. Keywords match on whole-word boundaries (unlike crisis
// detection, which uses substring containment) and every occurrence
// counts, weighted by the entry's weight. Categories that score zero are
// dropped; the rest are sorted by score descending with configured order
// as the tie-break.
func (es *EmotionScorer) Analyze(text string, emotions []models.EmotionCategory) models.AnalysisResult {
    lang := DetectLanguage(text)
    cleaned := strings.ToLower(strings.TrimSpace(text))

    var scored []models.DetectedEmotion
    for _, emotion := range emotions {
        score := 0
        var matched []string

        for _, entry := range emotion.Keywords.Entries(lang) {
            word := strings.ToLower(entry.Word)
            count := countWholeWord(cleaned, word)
            if count > 0 {
                score += entry.Weight * count
                matched = append(matched, word)
            }
        }

        if score > 0 {
            scored = append(scored, models.DetectedEmotion{
                Name:            emotion.Name,
                Score:           score,
                MatchedKeywords: matched,
                Mode:            emotion.Mode,
            })
        }
    }

    sort.SliceStable(scored, func(i, j int) bool {
        return scored[i].Score > scored[j].Score
    })

    result := models.AnalysisResult{
        Language:         lang,
        DetectedEmotions: scored,
    }

    if len(scored) > 0 {
        result.DominantEmotion = &scored[0]
        result.Confidence = float64(scored[0].Score) / confidenceNormalizer
        if result.Confidence > 1.0 {
            result.Confidence = 1.0
        }
    }

    result.IsMixed = len(scored) > 1 && scored[0].Score-scored[1].Score < mixedEmotionGap

    return result
}

// countWholeWord counts word-boundary occurrences of word in text.
// Both arguments are expected to be lower-cased already.
// \b is ASCII-only, so Devanagari-script keywords will not match on
// word boundaries; Hindi lexicon entries must stay romanized.
func countWholeWord(text, word string) int {
    re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
    if err != nil {
        return 0
    }
    return len(re.FindAllStringIndex(text, -1))
}
