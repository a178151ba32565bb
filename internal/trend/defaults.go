package trend

// Default keyword bags. Callers with special corpora (or tests) inject
// their own lists through the config structs.

// DefaultStopwords are filler words excluded from title bigram
// extraction (lowercase).
var DefaultStopwords = []string{
	"the", "and", "for", "with", "from", "this", "that", "what", "when",
	"where", "which", "while", "will", "would", "could", "should", "have",
	"has", "had", "was", "were", "are", "been", "being", "its", "it's",
	"into", "onto", "over", "under", "about", "after", "before", "between",
	"your", "you", "our", "their", "they", "them", "than", "then", "there",
	"here", "how", "why", "who", "whom", "can", "cannot", "not", "but",
	"all", "any", "each", "more", "most", "other", "some", "such", "only",
	"own", "same", "too", "very", "just", "now", "new", "out", "use",
	"using", "via", "per", "get", "gets", "got", "make", "makes", "made",
}

// DefaultPositiveMarkers flag community voices leaning positive
// (lowercase, substring-matched).
var DefaultPositiveMarkers = []string{
	"amazing", "awesome", "impressive", "incredible", "excellent", "great",
	"love", "loving", "fantastic", "brilliant", "game changer", "game-changer",
	"breakthrough", "mind-blowing", "mindblowing", "best", "excited",
	"exciting", "huge improvement", "works great", "finally", "insane",
	"wow", "underrated", "recommend",
}

// DefaultNegativeMarkers flag community voices leaning negative
// (lowercase, substring-matched).
var DefaultNegativeMarkers = []string{
	"terrible", "awful", "disappointing", "disappointed", "worse", "worst",
	"broken", "buggy", "useless", "garbage", "hate", "scam", "overhyped",
	"overrated", "downgrade", "regression", "unusable", "lobotomized",
	"nerfed", "refund", "cancelled my", "canceled my", "stopped working",
	"waste of", "frustrating",
}
