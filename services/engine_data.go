package services

import (
    "time"

    "wellness-coach-backend/models"
)

// DefaultEngineConfig returns the built-in engine configuration. It seeds
// the database on first boot and serves as the fallback when no stored
// configuration exists. Admins replace it at runtime through the config API.
func DefaultEngineConfig() *models.EngineConfig {
    return &models.EngineConfig{
        Emotions:        defaultEmotions(),
        CrisisKeywords:  defaultCrisisLexicon(),
        GlobalTemplates: defaultGlobalTemplates(),
        UpdatedAt:       time.Now(),
    }
}

func defaultEmotions() []models.EmotionCategory {
    return []models.EmotionCategory{
        {
            Name: "Stress",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "stress", Weight: 3}, {Word: "pressure", Weight: 2}, {Word: "overwhelmed", Weight: 4},
                    {Word: "burden", Weight: 2}, {Word: "tension", Weight: 3}, {Word: "heavy", Weight: 2},
                    {Word: "too much", Weight: 2}, {Word: "busy", Weight: 1}, {Word: "hectic", Weight: 2},
                },
                Hi: []models.LexiconEntry{
                    {Word: "tanaav", Weight: 3}, {Word: "bojh", Weight: 2}, {Word: "pareshan", Weight: 2},
                    {Word: "dabav", Weight: 3},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "I can hear how much pressure you're under right now.",
                        "It sounds like you're carrying a very heavy load.",
                    },
                    Hi: []string{
                        "Main samajh sakta hoon ki aap par is waqt kitna dabav hai.",
                        "Aap kaafi bhari bojh mehsoos kar rahe hain.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling overwhelmed by the weight of everything on your plate.",
                        "It feels like there's 'too much' happening all at once.",
                    },
                    Hi: []string{
                        "Aap har cheez ke bojh se dabe hue mehsoos kar rahe hain.",
                        "Aisa lag raha hai jaise sab kuch ek saath ho raha hai.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Stress is often our system's way of trying to protect us when we feel out of control.",
                        "Sometimes the only way to manage the 'too much' is to focus on just 'one small thing' at a time.",
                    },
                    Hi: []string{
                        "Tanaav hamare dimag ka ek tareeka hai humein bachane ka jab humein lagta hai ki sab hamare hath se nikal raha hai.",
                        "Kabhi kabhi 'sab kuch' sambhalne ka rasta sirf 'ek choti cheez' par dhyan dena hota hai.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Let's try a 2-minute reset. Pick one small task we can mentally set aside for now.",
                        "Would it help to just breathe through this next minute together?",
                    },
                    Hi: []string{
                        "Chaliye 2-minute ka aaram karte hain. Ek aisi cheez chuniye jise hum abhi ke liye side mein rakh de.",
                        "Kya ek minute ke liye saath saans lena madadgaar hoga?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What is the single loudest thing in your head right now?",
                        "If you could drop one responsibility today without consequences, what would it be?",
                    },
                    Hi: []string{
                        "Is waqt aapke dimag mein sabse badi cheez kya chal rahi hai?",
                        "Agar aap aaj ek zimmedari chhod sakein, toh wo kya hogi?",
                    },
                },
            },
            Mode: models.ModeCalm,
        },
        {
            Name: "Anxiety",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "anxious", Weight: 3}, {Word: "panic", Weight: 4}, {Word: "scared", Weight: 3},
                    {Word: "fear", Weight: 3}, {Word: "worried", Weight: 2}, {Word: "shaking", Weight: 3},
                    {Word: "heart racing", Weight: 4}, {Word: "uneasy", Weight: 2}, {Word: "nervous", Weight: 2},
                },
                Hi: []models.LexiconEntry{
                    {Word: "ghabrahat", Weight: 4}, {Word: "dar", Weight: 3}, {Word: "chinta", Weight: 2},
                    {Word: "bechaini", Weight: 3},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "I can feel how tight your chest feels right now. Anxiety is a powerful physical sensation.",
                        "It's okay to feel scared. Your body is just trying to alert you.",
                    },
                    Hi: []string{
                        "Main samajh sakta hoon ki aapka dil kitni tez dhadak raha hai.",
                        "Darna swabhavik hai, aapki body bas aapko alert kar rahi hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling a sense of unease or fear about what's coming next.",
                        "It sounds like your mind is racing with 'what-ifs'.",
                    },
                    Hi: []string{
                        "Aap is waqt kaafi bechain aur dare hue mehsoos kar rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Anxiety is often just our imagination projecting a difficult future into the present.",
                        "The body doesn't know the difference between a real threat and a thought.",
                    },
                    Hi: []string{
                        "Chinta aksar hamari kalpana hi hoti hai jo mushkil bhavishya ko aaj mein dikhati hai.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Let's use the Grounding tool—can you name 3 things you can see right now?",
                        "Try slow, even breaths: Inhale for 4, exhale for 6.",
                    },
                    Hi: []string{
                        "Chaliye Grounding karte hain—kya aap 3 aisi cheezein bata sakte hain jo aap abhi dekh rahe hain?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What's one thing in this room that feels very steady and real?",
                        "Is there a small part of you that knows you're safe in this very moment?",
                    },
                    Hi: []string{
                        "Is kamre mein aisi kaunsi cheez hai jo bahut mazboot aur sach hai?",
                    },
                },
            },
            Mode: models.ModeClarity,
        },
        {
            Name: "Sadness",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "sad", Weight: 3}, {Word: "unhappy", Weight: 2}, {Word: "crying", Weight: 3},
                    {Word: "depressed", Weight: 4}, {Word: "hopeless", Weight: 4}, {Word: "heartbroken", Weight: 3},
                    {Word: "empty", Weight: 2}, {Word: "grief", Weight: 3}, {Word: "miserable", Weight: 3},
                },
                Hi: []models.LexiconEntry{
                    {Word: "dukh", Weight: 3}, {Word: "udaas", Weight: 3}, {Word: "rona", Weight: 2},
                    {Word: "nirasha", Weight: 4}, {Word: "dukhy", Weight: 2},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "I can feel the weight of your sadness, and I want you to know it's okay to feel this way.",
                        "It sounds like you're carrying a lot of pain right now.",
                    },
                    Hi: []string{
                        "Main aapka dukh samajh sakta hoon, aur ye bilkul swabhavik hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling a deep sense of loss or sadness right now.",
                        "It feels like things are very heavy for you at the moment.",
                    },
                    Hi: []string{
                        "Aap is waqt kaafi udaas mehsoos kar rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Sadness often reminds us of what we truly value in life.",
                        "Sometimes the heart needs time to process things that words can't explain.",
                    },
                    Hi: []string{
                        "Dukh humein un cheezon ki yaad dilata hai jo hamare liye mahatvapurna hain.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Maybe we can start by just taking one slow, deep breath together?",
                        "Would it help to write down one small thing that brought peace today?",
                    },
                    Hi: []string{
                        "Kya hum ek gehri saans saath le sakte hain?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What feels like the heaviest part of this right now?",
                        "I'm here for as long as you need to talk—what else is on your mind?",
                    },
                    Hi: []string{
                        "Is waqt sabse mushkil kya lag raha hai?",
                    },
                },
            },
            Mode: models.ModeCalm,
        },
        {
            Name: "Anger",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "angry", Weight: 3}, {Word: "mad", Weight: 2}, {Word: "furious", Weight: 4},
                    {Word: "frustrated", Weight: 2}, {Word: "hate", Weight: 3}, {Word: "annoyed", Weight: 2},
                    {Word: "irritated", Weight: 2}, {Word: "rage", Weight: 4},
                },
                Hi: []models.LexiconEntry{
                    {Word: "gussa", Weight: 3}, {Word: "chidchidapan", Weight: 2}, {Word: "nafrat", Weight: 3},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "It's completely valid to feel angry when things are unfair.",
                        "I can hear the frustration in your words.",
                    },
                    Hi: []string{
                        "Gussa aana swabhavik hai jab cheezein galat ho rahi hon.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling a lot of heat and intensity right now.",
                        "Something has really crossed a line for you.",
                    },
                    Hi: []string{
                        "Aap is waqt kaafi gusse mein hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Anger is often a protector; it tells us our boundaries have been violated.",
                        "Beneath anger, there's often a need for respect.",
                    },
                    Hi: []string{
                        "Gussa aksar ek suraksha kavach hota hai.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Would you like to try a 'Power Release' exercise here?",
                        "How about we channel this energy into one constructive action?",
                    },
                    Hi: []string{
                        "Kya aap is gusse ko nikalne ke liye kuch karna chahenge?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What is the main thing that triggered this feeling?",
                        "Does this anger feel like it's pointing you toward a change?",
                    },
                    Hi: []string{
                        "Sabse zyada gussa kis baat par aa raha hai?",
                    },
                },
            },
            Mode: models.ModePower,
        },
        {
            Name: "Overthinking",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "overthinking", Weight: 4}, {Word: "racing thoughts", Weight: 3},
                    {Word: "stuck in my head", Weight: 3}, {Word: "analyzing", Weight: 2}, {Word: "what if", Weight: 2},
                },
                Hi: []models.LexiconEntry{
                    {Word: "soch raha hoon", Weight: 2}, {Word: "dimag chal raha hai", Weight: 3},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "The mind can be a noisy place, and it's exhausting to be stuck in a loop.",
                        "I see how much energy you're spending trying to figure everything out.",
                    },
                    Hi: []string{
                        "Dimag kabhi kabhi bahut zyada sochne lagta hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "It sounds like your thoughts are racing faster than you can keep up.",
                        "You're caught in a cycle of endless analysis.",
                    },
                    Hi: []string{
                        "Aaisa lag raha hai ki aap bahot zyada soch rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Overthinking is often the brain's way of trying to feel safe.",
                        "Not every thought needs an answer right now.",
                    },
                    Hi: []string{
                        "Har vichaar ka jawab hona zaroori nahi hai.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Let's try a grounding exercise to get back to the present.",
                        "Can we focus on just one thing that is true right now?",
                    },
                    Hi: []string{
                        "Chaliye ek exercise karte hain.",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "Of all these thoughts, which one feels the loudest?",
                        "Would it help to set a 'worry timer' for later?",
                    },
                    Hi: []string{
                        "In sab vichaaron mein se, sabse zyada kya pareshan kar raha hai?",
                    },
                },
            },
            Mode: models.ModeClarity,
        },
        {
            Name: "Loneliness",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "lonely", Weight: 4}, {Word: "alone", Weight: 2}, {Word: "no one", Weight: 3},
                    {Word: "disconnected", Weight: 3},
                },
                Hi: []models.LexiconEntry{
                    {Word: "akela", Weight: 3}, {Word: "akelapan", Weight: 4},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "Loneliness is a very human feeling, and it's brave to admit it.",
                        "I'm here with you right now.",
                    },
                    Hi: []string{
                        "Akelapan mehsoos karna insani hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling a lack of connection or understanding.",
                        "It feels like you're on an island by yourself.",
                    },
                    Hi: []string{
                        "Aap khud ko akela mehsoos kar rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Sometimes being alone is a call to reconnect with our inner self.",
                        "Connection starts with being a friend to ourselves first.",
                    },
                    Hi: []string{
                        "Rishte khud se dosti karne se shuru hote hain.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Could we write down three things you appreciate about yourself?",
                        "Is there one person you could reach out to today?",
                    },
                    Hi: []string{
                        "Kya hum teen aisi cheezein likh sakte hain jo aapko pasand hain?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What does 'connection' look like to you ideally?",
                        "When do you feel most 'seen'?",
                    },
                    Hi: []string{
                        "Aapke liye 'sath' ka kya matlab hai?",
                    },
                },
            },
            Mode: models.ModeCalm,
        },
        {
            Name: "Motivation",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "stuck", Weight: 2}, {Word: "procrastinating", Weight: 3}, {Word: "no energy", Weight: 3},
                    {Word: "unmotivated", Weight: 4}, {Word: "fail", Weight: 2}, {Word: "give up", Weight: 3},
                },
                Hi: []models.LexiconEntry{
                    {Word: "mann nahi kar raha", Weight: 3}, {Word: "alas", Weight: 2}, {Word: "haar maan", Weight: 3},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "It's okay to not have all the energy you want right now. Rest is part of the process.",
                        "Motivation wakes and wanes, and it's normal to feel 'low' sometimes.",
                    },
                    Hi: []string{
                        "Zaroori nahi ki har waqt urja rahe. Aaram bhi zaroori hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling a lack of drive or direction at the moment.",
                        "It sounds like you're putting a lot of pressure on yourself to be 'on'.",
                    },
                    Hi: []string{
                        "Aapko lag raha hai ki aap kuch nahi kar paa rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Action often creates motivation, not the other way around.",
                        "Even the smallest step forward is still progress.",
                    },
                    Hi: []string{
                        "Ek chota kadam bhi kadam hi hota hai.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "What's the absolute tiniest, 2-minute task you could do right now?",
                        "Let's use the 'Power' mode to find one thing that excites you.",
                    },
                    Hi: []string{
                        "Aisa kaunsa chota kaam hai jo aap abhi 2 minute mein kar sakte hain?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "If you had unlimited energy for just one hour, what would you do?",
                        "What's the biggest barrier you're facing right now?",
                    },
                    Hi: []string{
                        "Sabse badi rukavat kya lag rahi hai?",
                    },
                },
            },
            Mode: models.ModePower,
        },
        {
            Name: "Self-Doubt",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "not good enough", Weight: 4}, {Word: "failure", Weight: 3}, {Word: "imposter", Weight: 3},
                    {Word: "useless", Weight: 4}, {Word: "stupid", Weight: 3}, {Word: "doubt", Weight: 3},
                },
                Hi: []models.LexiconEntry{
                    {Word: "main bekaar hoon", Weight: 3}, {Word: "mujhse nahi hoga", Weight: 4},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "That inner critic can be very loud, but its voice isn't the truth.",
                        "I'm hearing a lot of self-judgment, and I want to offer you some compassion.",
                    },
                    Hi: []string{
                        "Hamara andar ka aalochak kabhi kabhi bahut tez bolta hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're questioning your worth or abilities right now.",
                        "It feels like you're focusing only on what you think are your flaws.",
                    },
                    Hi: []string{
                        "Aap apni kshamtaon par shak kar rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "We are often much harder on ourselves than we would ever be to a friend.",
                        "You are a work in progress, and that's a beautiful thing.",
                    },
                    Hi: []string{
                        "Hum aksar apne liye jitne sakht hote hain, utne doston ke liye nahi hote.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Can we name one thing you've accomplished, no matter how small?",
                        "Let's try a 'Self-Compassion' pause together.",
                    },
                    Hi: []string{
                        "Kya aap apni kisi ek kamyabi ke baare mein bata sakte hain?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What would you say to a dear friend who was feeling this way?",
                        "What's one strength you sometimes forget you have?",
                    },
                    Hi: []string{
                        "Agar aapka koi dost aisa mehsoos karta, toh aap usse kya kehte?",
                    },
                },
            },
            Mode: models.ModeClarity,
        },
        {
            Name: "Relationship",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "breakup", Weight: 4}, {Word: "divorce", Weight: 4}, {Word: "heartbreak", Weight: 3},
                    {Word: "fight", Weight: 2}, {Word: "rejection", Weight: 3}, {Word: "partner", Weight: 1},
                },
                Hi: []models.LexiconEntry{
                    {Word: "dhokha", Weight: 4}, {Word: "ladai", Weight: 3}, {Word: "rishta", Weight: 2},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "Heartache is one of the deepest pains we feel. I'm so sorry you're going through this.",
                        "It's okay to feel lost when a connection changes or ends.",
                    },
                    Hi: []string{
                        "Dil ka dukh sabse gehra hota hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling a deep sense of hurt or betrayal in your personal life.",
                        "It sounds like you're struggling with the end of a connection.",
                    },
                    Hi: []string{
                        "Aap rishton mein takleef mehsoos kar rahe hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "Your worth is not defined by how someone else treats you.",
                        "Grief for a relationship is proof of your capacity to love deeply.",
                    },
                    Hi: []string{
                        "Aapki keemat is baat se nahi hai ki koi aur aapko kaise treat karta hai.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Could we focus on one act of 'Self-Care' today just for you?",
                        "Let's write down one thing you've learned about yourself.",
                    },
                    Hi: []string{
                        "Kyu na aaj aap sirf apne liye kuch karein?",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "What is the hardest part of the 'letting go' process for you?",
                        "How can you be your own best friend today?",
                    },
                    Hi: []string{
                        "Is waqt sabse zyada kya yaad aa raha hai?",
                    },
                },
            },
            Mode: models.ModeCalm,
        },
        {
            Name: "Career",
            Keywords: models.BilingualLexicon{
                En: []models.LexiconEntry{
                    {Word: "job", Weight: 1}, {Word: "career", Weight: 1}, {Word: "boss", Weight: 2},
                    {Word: "fired", Weight: 4}, {Word: "unemployment", Weight: 3}, {Word: "salary", Weight: 1},
                },
                Hi: []models.LexiconEntry{
                    {Word: "naukri", Weight: 2}, {Word: "kaam ka dabav", Weight: 3},
                },
            },
            Templates: models.TemplateSet{
                Validation: models.TemplatePool{
                    En: []string{
                        "Work is a huge part of our lives, and it's natural for it to affect your peace.",
                        "I hear the stress you're feeling about your professional path.",
                    },
                    Hi: []string{
                        "Kaam hamari zindagi ka bada hissa hai.",
                    },
                },
                Reflection: models.TemplatePool{
                    En: []string{
                        "You're feeling uncertain or stressed about your career.",
                        "It sounds like the pressure at work is starting to spill over.",
                    },
                    Hi: []string{
                        "Aap apne career ko lekar chintit hain.",
                    },
                },
                Insight: models.TemplatePool{
                    En: []string{
                        "You are more than your job title or your productivity.",
                        "Sometimes a detour in our career is a chance to find a better path.",
                    },
                    Hi: []string{
                        "Aap aapki naukri se kahin badkar hain.",
                    },
                },
                Action: models.TemplatePool{
                    En: []string{
                        "Let's list three skills you have that have nothing to do with your job.",
                        "What's one small professional goal for this week?",
                    },
                    Hi: []string{
                        "Teen aisi baatein likhiye jo aapko apne baare mein pasand hain.",
                    },
                },
                FollowUp: models.TemplatePool{
                    En: []string{
                        "If you could change one thing about your work, what would it be?",
                        "What does 'success' look like to you beyond money?",
                    },
                    Hi: []string{
                        "Aapke liye 'safalta' ka kya matlab hai?",
                    },
                },
            },
            Mode: models.ModeClarity,
        },
    }
}

func defaultCrisisLexicon() models.CrisisLexicon {
    return models.CrisisLexicon{
        SuicideIntent: models.CrisisKeywords{
            En: []string{"suicide", "kill myself", "want to die", "end my life", "zero hope", "no point living"},
            Hi: []string{"आत्महत्या", "मरना चाहता हूँ", "जान दे दूंगा", "जीने का मन नहीं"},
        },
        SelfHarm: models.CrisisKeywords{
            En: []string{"self harm", "harm myself", "cutting", "overdose"},
            Hi: []string{"खुद को चोट", "नहा काटना", "जहर"},
        },
    }
}

func defaultGlobalTemplates() models.GlobalTemplates {
    return models.GlobalTemplates{
        Fallback: models.TemplatePool{
            En: []string{
                "I'm here and I'm listening. Could you tell me a bit more about that?",
                "Thank you for sharing. How else can I support you right now?",
            },
            Hi: []string{
                "Main sun raha hoon. Kya aap mujhe thoda aur bata sakte hain?",
                "Bata ne ke liye shukriya. Main aur kaise madad kar sakta hoon?",
            },
        },
        Greetings: models.TemplatePool{
            En: []string{
                "Hello! I'm your AI Wellness Coach.",
                "Hey! I'm here to support your mental wellbeing.",
            },
            Hi: []string{
                "नमस्ते! मैं आपका AI वेलनेस कोच हूं।",
                "नमस्ते! मैं आपकी मदद के लिए यहां हूं।",
            },
        },
        Emergency: models.TemplatePool{
            En: []string{
                "I'm really concerned about what you're sharing. Please reach out to a professional or a helpline immediately.",
                "You're not alone, but I'm an AI and can't provide the emergency care you need right now.",
            },
            Hi: []string{
                "Main apki baato se chintit hu. Kripya kisi helpline se sampark kare.",
                "Aap akele nahi hai, par kripya madad maange.",
            },
        },
    }
}
