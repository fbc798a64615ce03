package services

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"

    "wellness-coach-backend/models"
)

const coachSystemPrompt = `You are the AI Wellness Coach for "Manshik Santulan", personalized for medical professionals (doctors, nurses, residents, and frontline healthcare workers).
Your persona is a wise, empathetic senior colleague who understands the unique pressures of the medical field.
Acknowledge the weight of clinical responsibility, long shifts, and emotional labor.
Focus on burnout, compassion fatigue, moral injury, and imposter syndrome in high-stakes environments.
NEVER provide medical advice or diagnosis. Always maintain the boundary of a mental wellness coach.`

// GeminiService calls the Gemini REST API to produce the reflection and
// insight portion of a reply. It implements Augmenter; any failure is
// reported as an error so the composer can fall back to templates.
type GeminiService struct {
    apiKey     string
    apiURL     string
    httpClient *http.Client
}

func NewGeminiService(apiKey, model string, timeout time.Duration) *GeminiService {
    if model == "" {
        model = "gemini-1.5-flash"
    }
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &GeminiService{
        apiKey: apiKey,
        apiURL: fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model),
        httpClient: &http.Client{
            Timeout: timeout,
        },
    }
}

// Configured reports whether an API key is present. Without one, Augment
// fails fast and the rule-based path carries every turn.
func (s *GeminiService) Configured() bool {
    return s.apiKey != ""
}

func (s *GeminiService) Augment(ctx context.Context, userMessage string, analysis models.AnalysisResult, exchanges []models.ConversationExchange) (string, error) {
    if !s.Configured() {
        return "", fmt.Errorf("gemini API key not configured")
    }

    prompt := s.buildPrompt(userMessage, analysis, exchanges)

    payload := map[string]interface{}{
        "systemInstruction": map[string]interface{}{
            "parts": []map[string]interface{}{
                {"text": coachSystemPrompt},
            },
        },
        "contents": []map[string]interface{}{
            {
                "parts": []map[string]interface{}{
                    {"text": prompt},
                },
            },
        },
        "generationConfig": map[string]interface{}{
            "temperature":     0.7,
            "maxOutputTokens": 500,
        },
    }

    jsonData, err := json.Marshal(payload)
    if err != nil {
        return "", err
    }

    endpoint := fmt.Sprintf("%s?key=%s", s.apiURL, s.apiKey)
    req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
    if err != nil {
        return "", err
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := s.httpClient.Do(req)
    if err != nil {
        return "", err
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return "", err
    }

    if resp.StatusCode != http.StatusOK {
        return "", fmt.Errorf("gemini API error: %s", string(body))
    }

    return extractText(body)
}

func (s *GeminiService) buildPrompt(userMessage string, analysis models.AnalysisResult, exchanges []models.ConversationExchange) string {
    var history strings.Builder
    for _, ex := range exchanges {
        fmt.Fprintf(&history, "User: %s\nAI: %s\n", ex.UserMessage, ex.AIResponse)
    }

    emotion := "Neutral"
    if analysis.DominantEmotion != nil {
        emotion = analysis.DominantEmotion.Name
    }

    language := "English"
    if analysis.Language == models.LanguageHindi {
        language = "Hindi (mix with professional English if natural)"
    }

    return fmt.Sprintf(
        "Detected Emotion: %s\n"+
            "Analysis Language: %s\n\n"+
            "Context from past interactions:\n%s\n"+
            "Current user message: %q\n\n"+
            "TASK: Provide a deep reflection and insight for a medical professional. "+
            "The reflection should mirror their struggle the way a senior colleague would; "+
            "the insight should offer a small perspective shift or validation of their role. "+
            "Keep the response concise (max 3-4 sentences) and respond in %s.",
        emotion, analysis.Language, history.String(), userMessage, language,
    )
}

// extractText pulls the first candidate's text out of a Gemini response
func extractText(body []byte) (string, error) {
    var result struct {
        Candidates []struct {
            Content struct {
                Parts []struct {
                    Text string `json:"text"`
                } `json:"parts"`
            } `json:"content"`
        } `json:"candidates"`
    }
    if err := json.Unmarshal(body, &result); err != nil {
        return "", err
    }

    if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
        return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
    }

    return "", fmt.Errorf("no response generated")
}
