package models

import (
    "time"
)

// Language is the detected input language
type Language string

const (
    LanguageEnglish Language = "en"
    LanguageHindi   Language = "hi"
)

// Mode is the coarse response tone attached to each emotion category
type Mode string

const (
    ModeCalm    Mode = "Calm"
    ModeClarity Mode = "Clarity"
    ModePower   Mode = "Power"
)

// LexiconEntry is a single weighted keyword
type LexiconEntry struct {
    Word   string `bson:"word" json:"word"`
    Weight int    `bson:"weight" json:"weight"`
}

// BilingualLexicon holds keyword lists per language
type BilingualLexicon struct {
    En []LexiconEntry `bson:"en" json:"en"`
    Hi []LexiconEntry `bson:"hi" json:"hi"`
}

// Entries returns the keyword list for the given language.
// There is no fallback here: scoring only uses the detected language.
func (b BilingualLexicon) Entries(lang Language) []LexiconEntry {
    if lang == LanguageHindi {
        return b.Hi
    }
    return b.En
}

// TemplatePool holds response templates per language
type TemplatePool struct {
    En []string `bson:"en" json:"en"`
    Hi []string `bson:"hi" json:"hi"`
}

// TemplateSet holds the template pools for each slot of a composed reply
type TemplateSet struct {
    Validation TemplatePool `bson:"validation" json:"validation"`
    Reflection TemplatePool `bson:"reflection" json:"reflection"`
    Insight    TemplatePool `bson:"insight" json:"insight"`
    Action     TemplatePool `bson:"action" json:"action"`
    FollowUp   TemplatePool `bson:"follow_up" json:"followUp"`
}

// EmotionCategory is one configured emotion with its lexicon and templates
type EmotionCategory struct {
    Name      string           `bson:"name" json:"name"`
    Keywords  BilingualLexicon `bson:"keywords" json:"keywords"`
    Templates TemplateSet      `bson:"templates" json:"templates"`
    Mode      Mode             `bson:"mode" json:"mode"`
}

// CrisisKeywords holds plain (unweighted) crisis phrases per language
type CrisisKeywords struct {
    En []string `bson:"en" json:"en"`
    Hi []string `bson:"hi" json:"hi"`
}

// Words returns the phrase list for the given language
func (c CrisisKeywords) Words(lang Language) []string {
    if lang == LanguageHindi {
        return c.Hi
    }
    return c.En
}

// CrisisLexicon holds the crisis keyword sets. Suicide intent is always
// checked before self harm.
type CrisisLexicon struct {
    SuicideIntent CrisisKeywords `bson:"suicide_intent" json:"suicideIntent"`
    SelfHarm      CrisisKeywords `bson:"self_harm" json:"selfHarm"`
}

// GlobalTemplates are category-independent template pools
type GlobalTemplates struct {
    Fallback  TemplatePool `bson:"fallback" json:"fallback"`
    Greetings TemplatePool `bson:"greetings" json:"greetings"`
    Emergency TemplatePool `bson:"emergency" json:"emergency"`
}

// EngineConfig is the full hot-swappable engine configuration document
type EngineConfig struct {
    Emotions        []EmotionCategory `bson:"emotions" json:"emotions"`
    CrisisKeywords  CrisisLexicon     `bson:"crisis_keywords" json:"crisisKeywords"`
    GlobalTemplates GlobalTemplates   `bson:"global_templates" json:"globalTemplates"`
    UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

// FindEmotion returns the configured category with the given name, or nil
func (ec *EngineConfig) FindEmotion(name string) *EmotionCategory {
    for i := range ec.Emotions {
        if ec.Emotions[i].Name == name {
            return &ec.Emotions[i]
        }
    }
    return nil
}

// DetectedEmotion is one scored category in an analysis result
type DetectedEmotion struct {
    Name            string   `json:"name"`
    Score           int      `json:"score"`
    MatchedKeywords []string `json:"matched_keywords"`
    Mode            Mode     `json:"mode"`
}

// AnalysisResult is the output of the emotion scorer for a single message.
// DetectedEmotions is sorted by score descending; equal scores keep the
// configured category order.
type AnalysisResult struct {
    Language         Language          `json:"language"`
    DetectedEmotions []DetectedEmotion `json:"detected_emotions"`
    DominantEmotion  *DetectedEmotion  `json:"dominant_emotion,omitempty"`
    Confidence       float64           `json:"confidence"`
    IsMixed          bool              `json:"is_mixed"`
}

// CrisisResult is the output of the crisis detector
type CrisisResult struct {
    IsCrisis bool     `json:"is_crisis"`
    Trigger  string   `json:"trigger,omitempty"`
    Message  string   `json:"message,omitempty"`
    Language Language `json:"language,omitempty"`
}
