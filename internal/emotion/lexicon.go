package emotion

// lexiconTerm is a keyword or phrase carrying evidence for an emotion.
// Phrases (terms containing a space) are matched as substrings; single
// words are matched token-by-token so modifiers and negation apply.
type lexiconTerm struct {
	term   string
	weight float64
}

var lexicon = map[string][]lexiconTerm{
	Happy: {
		{"happy", 1.0}, {"glad", 0.8}, {"joy", 1.0}, {"joyful", 1.0},
		{"wonderful", 0.9}, {"great", 0.6}, {"good", 0.5}, {"smile", 0.7},
		{"smiled", 0.7}, {"laughed", 0.8}, {"enjoyed", 0.8}, {"love", 0.8},
		{"loved", 0.8}, {"excited", 0.8}, {"grateful", 0.8}, {"proud", 0.7},
		{"cheerful", 0.9}, {"delighted", 0.9},
	},
	Sad: {
		{"sad", 1.0}, {"unhappy", 0.9}, {"cry", 0.8}, {"cried", 0.8},
		{"crying", 0.8}, {"tears", 0.7}, {"grief", 0.9}, {"mourning", 0.9},
		{"heartbroken", 1.0}, {"miserable", 0.9}, {"sorrow", 0.9},
		{"down", 0.5}, {"gloomy", 0.8},
	},
	Angry: {
		{"angry", 1.0}, {"mad", 0.8}, {"furious", 1.0}, {"rage", 1.0},
		{"annoyed", 0.7}, {"irritated", 0.7}, {"hate", 0.8},
		{"hated", 0.8}, {"shouted", 0.7}, {"yelled", 0.7},
	},
	Anxious: {
		{"anxious", 1.0}, {"anxiety", 1.0}, {"worried", 0.9},
		{"worry", 0.8}, {"worrying", 0.8}, {"nervous", 0.8},
		{"panic", 0.9}, {"panicked", 0.9}, {"uneasy", 0.7},
		{"stressed", 0.8}, {"restless", 0.7}, {"on edge", 0.9},
		{"overwhelmed", 0.8},
	},
	Fearful: {
		{"afraid", 1.0}, {"scared", 1.0}, {"fear", 0.9},
		{"terrified", 1.0}, {"frightened", 0.9}, {"dread", 0.8},
		{"dreading", 0.8},
	},
	Confused: {
		{"confused", 1.0}, {"confusing", 0.8}, {"lost", 0.7},
		{"forget", 0.7}, {"forgot", 0.7}, {"forgetting", 0.8},
		{"mixed up", 0.8}, {"disoriented", 0.9}, {"blank", 0.6},
		{"can't remember", 0.9}, {"cannot remember", 0.9},
	},
	Frustrated: {
		{"frustrated", 1.0}, {"frustrating", 0.9}, {"stuck", 0.6},
		{"fed up", 0.9}, {"give up", 0.8}, {"gave up", 0.8},
		{"useless", 0.7}, {"pointless", 0.6},
	},
	Calm: {
		{"calm", 1.0}, {"peaceful", 0.9}, {"relaxed", 0.9},
		{"rested", 0.7}, {"serene", 0.9}, {"content", 0.7},
		{"at ease", 0.9}, {"quiet", 0.5},
	},
	Lonely: {
		{"lonely", 1.0}, {"alone", 0.8}, {"isolated", 0.9},
		{"nobody", 0.7}, {"no one visits", 1.0}, {"no one calls", 1.0},
		{"abandoned", 0.9}, {"left out", 0.8}, {"by myself", 0.7},
	},
	Depressed: {
		{"depressed", 1.0}, {"hopeless", 0.9}, {"empty", 0.7},
		{"worthless", 0.9}, {"numb", 0.7}, {"no energy", 0.8},
		{"low", 0.5}, {"can't go on", 1.0}, {"tired of everything", 1.0},
		{"nothing matters", 0.9}, {"no point", 0.8},
	},
}

// Modifier tokens adjusting the weight of the following keyword.
// "so" is deliberately absent: the preprocessor strips it as filler
// before tokens reach the classifier.
var boosterWords = map[string]bool{
	"very": true, "really": true, "extremely": true,
	"incredibly": true, "terribly": true, "completely": true,
	"totally": true,
}

var dampenerWords = map[string]bool{
	"bit": true, "slightly": true, "little": true, "somewhat": true,
	"mildly": true,
}

var negationWords = map[string]bool{
	"not": true, "never": true, "no": true, "don't": true,
	"doesn't": true, "didn't": true, "isn't": true, "wasn't": true,
	"aren't": true, "won't": true, "can't": true,
}
