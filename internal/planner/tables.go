package planner

import "github.com/jonathan/talk-coach/internal/types"

// Tables are read-only after package initialization. Plan copies any slice it returns.

type areaGuide struct {
	exercises []string
	resources []string
}

var areaGuides = map[types.Criterion]areaGuide{
	types.Fluency: {
		exercises: []string{
			"Practice speaking at a consistent pace using a metronome",
			"Record yourself and identify filler word patterns",
			"Practice tongue twisters to improve articulation",
			"Read aloud for 10 minutes daily to build speaking stamina",
			"Use breathing exercises to control speech rhythm",
		},
		resources: []string{
			"TED Talks for listening to natural speech patterns",
			"Podcasts with clear speakers",
			"Speech rate control apps",
			"Breathing and relaxation techniques",
		},
	},
	types.Pronunciation: {
		exercises: []string{
			"Practice minimal pairs (ship/sheep, bit/beat)",
			"Record and compare your pronunciation with native speakers",
			"Use pronunciation apps like ELSA or Speechling",
			"Practice stress patterns in multi-syllable words",
			"Work on intonation patterns for questions and statements",
		},
		resources: []string{
			"YouTube pronunciation channels",
			"IPA (International Phonetic Alphabet) guides",
			"Pronunciation dictionaries",
			"Speech therapy apps",
		},
	},
	types.Vocabulary: {
		exercises: []string{
			"Learn 5-10 new words daily and use them in sentences",
			"Practice synonyms and antonyms",
			"Read diverse materials to encounter new vocabulary",
			"Keep a vocabulary journal with context and usage",
			"Practice describing objects without using common words",
		},
		resources: []string{
			"Vocabulary building apps (Quizlet, Memrise)",
			"Academic word lists",
			"Contextual reading materials",
			"Word of the day subscriptions",
		},
	},
	types.Grammar: {
		exercises: []string{
			"Practice specific grammar points with exercises",
			"Write sentences using different tenses",
			"Study sentence structure patterns",
			"Practice subject-verb agreement",
			"Work on article usage (a/an/the)",
		},
		resources: []string{
			"Grammar practice websites (Grammarly, Purdue OWL)",
			"Grammar workbooks",
			"Online grammar courses",
			"Language exchange partners",
		},
	},
	types.Coherence: {
		exercises: []string{
			"Practice organizing thoughts before speaking",
			"Use transition words and phrases",
			"Practice telling stories with clear structure",
			"Work on topic sentences and supporting details",
			"Practice summarizing information clearly",
		},
		resources: []string{
			"Public speaking courses",
			"Storytelling workshops",
			"Logic and reasoning exercises",
			"Debate clubs or discussion groups",
		},
	},
}

type levelGuide struct {
	timeline    string
	months      int     // typical time spent reaching the level
	target      float64 // score that completes the level
	goals       []string
	checkpoints []string
	tips        []string
}

// Defaults for a level missing from levelGuides
const (
	defaultCurrentMonths = 12
	defaultNextMonths    = 18
	defaultTarget        = 3.5
	tipsFallback         = types.Intermediate
)

var levelGuides = map[types.Level]levelGuide{
	types.Beginner: {
		timeline: "3-6 months",
		months:   6,
		target:   1.5,
		goals: []string{
			"Speak clearly with basic pronunciation",
			"Use simple but correct grammar",
			"Build basic vocabulary (500-1000 words)",
			"Speak in complete sentences",
		},
		checkpoints: []string{
			"Can pronounce basic sounds clearly",
			"Uses simple present tense correctly",
			"Has basic vocabulary of 500+ words",
			"Speaks in complete sentences",
		},
		tips: []string{
			"Every expert was once a beginner. Focus on progress, not perfection.",
			"Practice for just 10 minutes daily - consistency beats intensity.",
			"Celebrate small wins like pronouncing a new word correctly.",
			"Remember that making mistakes is how we learn and improve.",
		},
	},
	types.LowerIntermediate: {
		timeline: "6-12 months",
		months:   12,
		target:   2.5,
		goals: []string{
			"Reduce filler words significantly",
			"Expand vocabulary to 2000-3000 words",
			"Improve grammar accuracy",
			"Speak with more confidence",
		},
		checkpoints: []string{
			"Reduced filler words by 50%",
			"Vocabulary expanded to 2000+ words",
			"Uses past and future tenses",
			"Speaks with more confidence",
		},
		tips: []string{
			"You're building a strong foundation. Keep pushing through challenges.",
			"Your vocabulary is growing - notice how many more words you know now.",
			"Fluency comes with practice. Trust the process.",
			"Compare yourself to who you were yesterday, not to others.",
		},
	},
	types.Intermediate: {
		timeline: "12-18 months",
		months:   18,
		target:   3.5,
		goals: []string{
			"Use advanced vocabulary appropriately",
			"Master complex grammar structures",
			"Organize thoughts logically",
			"Speak naturally and fluently",
		},
		checkpoints: []string{
			"Uses complex sentences naturally",
			"Vocabulary of 3000+ words",
			"Good grammar accuracy",
			"Organizes thoughts logically",
		},
		tips: []string{
			"You're becoming more confident. Let that confidence show in your speech.",
			"Complex grammar is within your reach. Break it down into smaller parts.",
			"Your communication skills are opening new opportunities.",
			"You're developing your unique voice in English.",
		},
	},
	types.UpperIntermediate: {
		timeline: "18-24 months",
		months:   24,
		target:   4.5,
		goals: []string{
			"Achieve near-native fluency",
			"Master academic vocabulary",
			"Express ideas precisely and eloquently",
			"Handle complex topics confidently",
		},
		checkpoints: []string{
			"Near-native fluency",
			"Academic vocabulary mastery",
			"Precise expression",
			"Handles complex topics",
		},
		tips: []string{
			"You're approaching advanced levels. Your hard work is paying off.",
			"Precision in expression sets you apart. Focus on the details.",
			"You can handle complex topics. Trust your abilities.",
			"You're becoming a role model for other learners.",
		},
	},
	types.Advanced: {
		timeline: "Ongoing",
		months:   36,
		target:   5.0,
		goals: []string{
			"Refine pronunciation to near-native level",
			"Master specialized vocabulary for your field",
			"Excel in public speaking and presentations",
			"Serve as a language model for others",
		},
		checkpoints: []string{
			"Native-like pronunciation",
			"Specialized vocabulary",
			"Excellent public speaking",
			"Can teach others",
		},
		tips: []string{
			"You're refining excellence. Every detail matters now.",
			"Your skills can help others. Consider mentoring or teaching.",
			"You're mastering the nuances that make speech truly natural.",
			"You've achieved what many aspire to. Keep pushing your boundaries.",
		},
	},
}
