package lexical

// Word tables are read-only after package initialization.

var fillerPhrases = phrases(
	"um", "uh", "er", "ah", "like", "you know", "i mean", "basically",
	"actually", "literally", "sort of", "kind of", "right", "okay",
	"well", "so", "then", "now", "just", "really", "very", "quite",
)

var vaguePhrases = phrases(
	"thing", "stuff", "something", "anything", "everything", "nothing",
	"somewhere", "anywhere", "everywhere", "nowhere", "somehow", "anyhow",
	"whatever", "whenever", "wherever", "whoever", "whichever",
)

var weakPhrases = phrases(
	"maybe", "perhaps", "possibly", "probably", "might", "could", "would",
	"should", "seems", "appears", "looks like", "sort of", "kind of",
)

var topicShiftPhrases = phrases("anyway", "by the way", "speaking of", "on another note")

var (
	incompleteMarkers = wordSet("but", "however", "although", "though")
	danglingEndings   = wordSet("but", "however", "although")
	connectorWords    = wordSet("and", "but", "or", "however", "therefore", "because", "although", "while", "since", "as")

	agreementSubjects = wordSet("he", "she", "it")
	agreementVerbs    = wordSet("are", "were", "have")

	presentMarkers = wordSet("am", "is", "are", "do", "does")
	pastMarkers    = wordSet("was", "were", "did", "had")
)

const vowels = "aeiou"

func phrases(list ...string) []phrase {
	out := make([]phrase, len(list))
	for i, s := range list {
		out[i] = newPhrase(s)
	}
	return out
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
