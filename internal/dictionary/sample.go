package dictionary

// SampleEnglishDictionary returns a built-in word list covering common
// English words, grouped roughly by length the way a hand-assembled crossword
// lexicon is usually built up. It is meant as a reasonable default when no
// external word list is configured, not as an authoritative source --
// callers that care about completeness should Load their own list.
func SampleEnglishDictionary() *Dictionary {
	d := New()

	for _, w := range []string{
		"at", "in", "on", "it", "is", "an", "as", "so", "to", "of", "or", "no",
	} {
		d.Add(w)
	}

	for _, w := range []string{
		"ant", "art", "ash", "ate", "cat", "din", "din", "din", "dim", "dim", "dot",
		"era", "eat", "ear", "elm", "end", "fan", "far", "fat", "fin", "fir",
		"fit", "for", "fur", "gas", "gin", "got", "had", "ham", "has", "hat",
		"hid", "him", "his", "hit", "hot", "ins", "ion", "lab", "lad", "lam",
		"lap", "lat", "led", "let", "lid", "lie", "lit", "lot", "mad", "man",
		"map", "mat", "met", "mid", "mud", "nap", "net", "nor", "not", "nut",
		"oar", "oat", "odd", "old", "one", "opt", "ore", "our", "out", "pad",
		"pan", "par", "pat", "pea", "pen", "pet", "pie", "pin", "pit", "pod",
		"pot", "pre", "pro", "pun", "pus", "put", "rag", "ram", "ran", "rap",
		"rat", "red", "rid", "rim", "rip", "rod", "rot", "rub", "rue", "rug",
		"rum", "run", "sad", "sat", "set", "she", "sin", "sip", "sir", "sit",
		"sod", "son", "sop", "sot", "spa", "spit", "sri", "sue", "sum", "sun",
		"tab", "tad", "tan", "tap", "tar", "ten", "tin", "tip", "ton", "top",
		"tot", "tun", "urn",
	} {
		d.Add(w)
	}

	for _, w := range []string{
		"able", "acid", "aide", "also", "area", "arid", "arms", "atom",
		"band", "bane", "bard", "barn", "bars", "base", "bath", "bead",
		"bean", "bear", "beat", "bend", "bent", "best", "bide", "bind",
		"bird", "bite", "bolt", "bond", "bone", "born", "both", "bred",
		"brim", "bull", "burn", "bust", "cage", "calm", "came", "card",
		"care", "cart", "case", "cash", "cast", "cent", "chat", "chin",
		"clap", "clip", "coal", "coat", "cold", "come", "cord", "cost",
		"cube", "cull", "curl", "dams", "dare", "dark", "darn", "dart",
		"data", "date", "dean", "deal", "dear", "debt", "deed", "deep",
		"deft", "dent", "dial", "dice", "diet", "dime", "dine", "dirt",
		"dish", "dive", "dole", "done", "dose", "dost", "dots", "drag",
		"dram", "drat", "drip", "drop", "drum", "dual", "duel", "dumb",
		"dune", "dusk", "dust", "duty", "earl", "earn", "east", "easy",
		"edit", "else", "emit", "epic", "etch", "even", "ever", "exit",
		"face", "fact", "fade", "fads", "fail", "fair", "fall", "fame",
		"fare", "farm", "fast", "fate", "feat", "feed", "feel", "feet",
		"fell", "felt", "fern", "figs", "file", "fill", "film", "find",
		"fine", "fire", "firm", "fish", "fist", "fits", "five", "flat",
		"flea", "flip", "flit", "flop", "foal", "foam", "fold", "folk",
		"fond", "font", "food", "fool", "foot", "fore", "form", "fort",
		"foul", "four", "free", "from", "fuel", "full", "fund", "fuse",
		"gain", "gait", "gale", "game", "gape", "gash", "gate", "gaze",
		"gear", "gift", "gild", "gilt", "girl", "girt", "give", "glad",
		"glam", "glen", "glue", "glum", "gnat", "goad", "goal", "goat",
		"gold", "golf", "gone", "good", "gram", "gran", "gray", "grid",
		"grim", "grin", "grip", "grit", "grub", "gulf", "gull", "gulp",
		"hair", "hale", "half", "hall", "halt", "hand", "hang", "hard",
		"hare", "harm", "harp", "hash", "hasp", "haste", "hate", "haul",
		"have", "hazy", "head", "heal", "heap", "hear", "heat", "heed",
		"heir", "held", "help", "herd", "here", "hero", "hers", "hide",
		"high", "hike", "hill", "hilt", "hind", "hint", "hire", "hold",
		"hole", "home", "hone", "hood", "hoof", "hope", "horn", "host",
		"hour", "huge", "hull", "hunt", "hurl", "hurt", "idea", "idle",
		"into", "iota", "iron", "item", "july", "jump", "jute", "keel",
		"keen", "keep", "kelp", "kept", "kids", "kiln", "kilo", "kilt",
		"kind", "king", "kiss", "kite", "knee", "knit", "lace", "lack",
		"lade", "lads", "lair", "lake", "lame", "lamp", "land", "lane",
		"lank", "lard", "lark", "last", "late", "lath", "lead", "leaf",
		"leak", "lean", "lent", "less", "lest", "life", "lift", "like",
		"lime", "limp", "line", "link", "lint", "lion", "list", "live",
		"load", "loaf", "loan", "lobe", "lock", "lode", "loft", "lone",
		"long", "look", "loom", "loop", "loot", "lord", "lore", "lose",
		"loss", "lost", "loud", "love", "luck", "lull", "lump", "lung",
		"lure", "lurk", "lust", "made", "mail", "main", "make", "male",
		"mall", "malt", "mane", "many", "maps", "mare", "mark", "mars",
		"mart", "mash", "mask", "mass", "mast", "mate", "math", "maze",
		"mead", "meal", "mean", "meat", "meld", "melt", "mend", "menu",
		"mere", "mesh", "mild", "mile", "milk", "mill", "mind", "mine",
		"mint", "mire", "miss", "mist", "moan", "moat", "mode", "mold",
		"mole", "monk", "moon", "moor", "more", "moss", "most", "moth",
		"mould", "mound", "mount", "mourn", "mouth", "move", "muck",
		"mule", "mull", "mush", "must", "mute", "name", "nape", "near",
		"neat", "neon", "nerd", "nest", "nets", "news", "next", "nice",
		"nine", "node", "none", "noon", "norm", "nose", "note", "noun",
		"oath", "oats", "odds", "omen", "once", "only", "onto", "open",
		"oral", "pace", "pack", "pact", "pail", "pain", "pair", "pale",
		"pals", "pant", "park", "part", "past", "path", "pear", "peat",
		"peel", "peer", "pelt", "pest", "pets", "pick", "pier", "pile",
		"pill", "pine", "pink", "pins", "pint", "pipe", "pith", "plan",
		"plea", "plod", "plot", "plow", "plug", "plum", "plus", "poet",
		"pole", "poll", "pond", "pore", "pork", "port", "pose", "post",
		"pour", "pout", "prod", "prop", "pull", "pulp", "puma", "pump",
		"punt", "pure", "push", "putt", "quit", "race", "rack", "raft",
		"rage", "raid", "rail", "rain", "rake", "ramp", "rang", "rank",
		"rant", "rare", "rash", "rate", "rats", "read", "real", "reap",
		"rear", "reed", "reef", "reel", "rein", "rely", "rend", "rent",
		"rest", "rice", "rich", "ride", "rift", "ring", "riot", "ripe",
		"rise", "risk", "road", "roam", "roar", "robe", "rode", "role",
		"roll", "roof", "room", "root", "rope", "rose", "rude", "rule",
		"rump", "rung", "rush", "rust", "sack", "safe", "sage", "said",
		"sail", "sale", "salt", "same", "sand", "sane", "sang", "sank",
		"sash", "save", "seal", "seam", "seat", "sect", "seed", "seek",
		"seem", "seen", "self", "sell", "send", "sent", "shed", "shin",
		"ship", "shod", "shop", "shot", "shun", "shut", "sick", "side",
		"sift", "sign", "silk", "silt", "sing", "sink", "site", "sire",
		"site", "size", "skid", "skim", "skin", "skip", "slab", "slam",
		"slap", "sled", "slid", "slim", "slip", "slit", "slot", "slow",
		"slug", "slum", "smut", "snag", "snap", "snip", "snit", "snub",
		"snug", "soap", "soar", "sock", "soda", "sofa", "soft", "soil",
		"sold", "sole", "solo", "some", "song", "soon", "sore", "sort",
		"soul", "soup", "sour", "span", "spar", "spat", "spin", "spit",
		"spot", "spun", "spur", "stag", "star", "stay", "stem", "step",
		"stew", "stir", "stop", "stud", "stun", "such", "suit", "sulk",
		"sump", "sung", "sunk", "sure", "surf", "swab", "swam", "swan",
		"swap", "swat", "swig", "swim", "swum", "tack", "tact", "tail",
		"take", "tale", "tall", "tame", "tang", "tank", "tape", "tart",
		"task", "teal", "team", "tear", "tend", "tent", "term", "test",
		"text", "than", "that", "them", "then", "they", "thin", "this",
		"thud", "thug", "thus", "tide", "tidy", "tied", "tile", "till",
		"tilt", "time", "tint", "tiny", "tire", "toad", "told", "toll",
		"tomb", "tone", "tops", "tore", "torn", "toss", "tour", "town",
		"trap", "tray", "trim", "trip", "trod", "trot", "true", "tube",
		"tuft", "tune", "turf", "turn", "twin", "type", "undo", "unit",
		"upon", "urge", "used", "user", "vain", "vale", "vane", "vast",
		"veal", "vein", "vent", "verb", "very", "vest", "view", "vine",
		"visa", "void", "vote", "wade", "wage", "wail", "wait", "wake",
		"walk", "wall", "wand", "want", "ward", "warm", "warn", "wart",
		"wash", "wasp", "wave", "weak", "wear", "weed", "week", "weld",
		"well", "welt", "went", "were", "west", "what", "when", "whet",
		"whim", "whip", "whit", "whom", "wick", "wide", "wild", "wile",
		"will", "wilt", "wind", "wine", "wing", "wink", "wipe", "wire",
		"wise", "wish", "with", "wolf", "wood", "wool", "word", "wore",
		"work", "worm", "worn", "wort", "wove", "yard", "yarn", "yawn",
		"year", "yell", "yoga", "yoke", "your", "zeal", "zero", "zest",
		"zinc",
	} {
		d.Add(w)
	}

	for _, w := range []string{
		"about", "above", "alarm", "album", "alert", "align", "alike",
		"alive", "allow", "alone", "along", "altar", "amber", "angel",
		"anger", "angle", "ankle", "apart", "apple", "apply", "April",
		"arena", "argue", "arise", "armed", "aroma", "array", "arrow",
		"aside", "asset", "audit", "avoid", "awake", "award", "aware",
		"badge", "baker", "basic", "basin", "basis", "batch", "beach",
		"beard", "beast", "began", "begin", "being", "belie", "below",
		"bench", "birth", "blade", "blame", "blank", "blast", "blaze",
		"bleed", "blend", "bless", "blind", "blink", "bliss", "block",
		"blond", "blood", "bloom", "blown", "blues", "blunt", "blush",
		"board", "boast", "bonds", "bonus", "boost", "booth", "bored",
		"borne", "bound", "brace", "brain", "brake", "brand", "brass",
		"brave", "bread", "break", "breed", "brick", "bride", "brief",
		"bring", "brisk", "broad", "broke", "brook", "broom", "brown",
		"brush", "build", "built", "bulky", "bunch", "burst", "cabin",
		"cable", "camel", "candy", "canal", "candy", "canoe", "cargo",
		"carry", "carve", "catch", "cause", "cease", "chain", "chair",
		"chalk", "champ", "chant", "chaos", "charm", "chart", "chase",
		"cheap", "check", "cheek", "cheer", "chess", "chest", "chief",
		"child", "chill", "choir", "chord", "chose", "civic", "civil",
		"claim", "clamp", "clash", "clasp", "class", "clean", "clear",
		"clerk", "click", "cliff", "climb", "cling", "clock", "clone",
		"close", "cloth", "cloud", "clown", "clump", "coach", "coast",
		"comet", "comfy", "comic", "could", "count", "court", "cover",
		"crack", "craft", "crane", "crash", "crawl", "crazy", "cream",
		"creek", "creep", "crept", "crest", "crime", "crisp", "cross",
		"crowd", "crown", "crude", "cruel", "crumb", "crush", "crust",
		"curve", "cycle", "daily", "dairy", "dance", "dealt", "death",
		"debut", "decay", "deck", "delay", "depth", "devil", "diary",
		"digit", "dodge", "doing", "doubt", "dough", "dozen", "draft",
		"drain", "drama", "drank", "drawn", "dread", "dream", "dress",
		"dried", "drift", "drill", "drink", "drive", "drove", "dwell",
		"eager", "eagle", "early", "earth", "ease", "eight", "elbow",
		"elder", "elect", "elite", "empty", "enemy", "enjoy", "enter",
		"entry", "equal", "error", "essay", "event", "every", "exact",
		"exist", "extra", "fable", "faith", "false", "fancy", "fatal",
		"fault", "favor", "feast", "fence", "ferry", "fetch", "fever",
		"fiber", "field", "fifth", "fifty", "fight", "final", "first",
		"flame", "flash", "fleet", "flesh", "flint", "float", "flock",
		"flood", "floor", "flora", "flour", "fluid", "flush", "focus",
		"force", "forge", "forth", "forty", "forum", "found", "frame",
		"fresh", "front", "frost", "frown", "fruit", "fudge", "fully",
		"gamma", "gauge", "ghost", "giant", "given", "glare", "glass",
		"glide", "globe", "glory", "glove", "grace", "grade", "grain",
		"grand", "grant", "grape", "graph", "grasp", "grass", "grave",
		"gravy", "graze", "great", "greed", "green", "greet", "grief",
		"grill", "grind", "gripe", "groan", "gross", "group", "grove",
		"grown", "guard", "guess", "guest", "guide", "guild", "habit",
		"happy", "harsh", "haste", "hatch", "haven", "heart", "heavy",
		"hedge", "hello", "hinge", "honor", "horse", "hotel", "house",
		"human", "humid", "hurry", "ideal", "image", "imply", "index",
		"inner", "input", "irony", "issue", "ivory", "jelly", "joint",
		"joker", "judge", "juice", "known", "label", "labor", "large",
		"laser", "later", "laugh", "layer", "learn", "least", "leave",
		"legal", "lemon", "level", "light", "limit", "linen", "lodge",
		"logic", "loose", "lover", "lower", "loyal", "lucky", "lunar",
		"lunch", "lying", "magic", "maker", "mango", "march", "marsh",
		"match", "maybe", "mayor", "meant", "medal", "media", "merge",
		"merit", "merry", "metal", "meter", "might", "minor", "minus",
		"mixed", "model", "moist", "money", "month", "moral", "motor",
		"mound", "mount", "mouse", "mouth", "movie", "music", "naive",
		"naked", "never", "newly", "night", "noble", "noise", "north",
		"noted", "novel", "nurse", "nylon", "ocean", "offer", "often",
		"olive", "onion", "opera", "orbit", "organ", "other", "ought",
		"ounce", "outer", "owner", "paint", "panel", "panic", "paper",
		"party", "pause", "peace", "peach", "pearl", "phase", "phone",
		"photo", "piano", "piece", "pilot", "pitch", "pizza", "place",
		"plain", "plane", "plant", "plate", "point", "polar", "porch",
		"pound", "power", "press", "price", "pride", "prime", "print",
		"prior", "prize", "proof", "proud", "prove", "proxy", "pulse",
		"punch", "pupil", "puppy", "purse", "queen", "query", "quick",
		"quiet", "quilt", "quite", "quote", "radio", "raise", "range",
		"rapid", "ratio", "reach", "ready", "realm", "rebel", "refer",
		"reign", "relax", "reply", "reset", "retry", "ridge", "rifle",
		"right", "rinse", "risky", "rival", "river", "roast", "robin",
		"robot", "rocky", "rogue", "roman", "rough", "round", "route",
		"royal", "rugby", "ruler", "rumor", "rural", "salad", "sauce",
		"scale", "scarf", "scene", "scent", "scope", "score", "scout",
		"scrap", "screw", "scrub", "sense", "serve", "seven", "shade",
		"shaft", "shake", "shame", "shape", "share", "shark", "sharp",
		"shave", "sheep", "sheet", "shelf", "shell", "shift", "shine",
		"shiny", "shirt", "shock", "shoot", "shore", "short", "shown",
		"shrug", "sight", "silly", "since", "sixth", "sixty", "skill",
		"skirt", "skull", "slave", "sleek", "sleep", "slice", "slide",
		"slime", "slope", "small", "smart", "smell", "smile", "smoke",
		"snake", "sneak", "sniff", "solid", "solve", "sorry", "sound",
		"south", "space", "spare", "spark", "speak", "spear", "speed",
		"spell", "spend", "spice", "spike", "spine", "spite", "split",
		"spoil", "spoke", "sport", "spray", "squad", "staff", "stage",
		"stain", "stair", "stake", "stale", "stalk", "stall", "stamp",
		"stand", "stare", "start", "state", "steak", "steal", "steam",
		"steel", "steep", "steer", "stick", "stiff", "still", "sting",
		"stock", "stone", "stood", "stool", "stoop", "store", "storm",
		"story", "stove", "strap", "straw", "stray", "strip", "stuck",
		"study", "stuff", "style", "sugar", "suite", "sunny", "super",
		"surge", "swamp", "swarm", "swear", "sweat", "sweep", "sweet",
		"swell", "swift", "swing", "swirl", "sword", "table", "taste",
		"teach", "thank", "theme", "there", "thick", "thief", "thigh",
		"thing", "think", "third", "thorn", "those", "three", "threw",
		"throb", "throw", "thumb", "tiger", "tight", "timer", "tired",
		"title", "toast", "today", "token", "tooth", "topic", "torch",
		"total", "touch", "tough", "tower", "trace", "track", "trade",
		"trail", "train", "trait", "tramp", "trash", "treat", "trend",
		"trial", "tribe", "trick", "tried", "troop", "trout", "truck",
		"trunk", "trust", "truth", "tulip", "tumor", "tutor", "twist",
		"ultra", "uncle", "under", "undue", "unfit", "union", "unite",
		"unity", "until", "upper", "upset", "urban", "usage", "usual",
		"valid", "value", "vapor", "vault", "vegan", "venue", "verse",
		"video", "virus", "visit", "vital", "vivid", "vocal", "voice",
		"voter", "waist", "waive", "wagon", "wheat", "wheel", "where",
		"which", "while", "white", "whole", "whose", "witch", "woman",
		"world", "worry", "worse", "worst", "worth", "would", "wound",
		"wreck", "wrist", "write", "wrong", "yield", "young", "youth",
	} {
		d.Add(w)
	}

	for _, w := range []string{
		"abandon", "ability", "absence", "academy", "account", "accused",
		"achieve", "acquire", "address", "advance", "adviser", "airline",
		"airport", "alcohol", "already", "analyst", "ancient", "android",
		"animals", "another", "anxiety", "anybody", "applies", "arrange",
		"arrival", "article", "athlete", "attempt", "attract", "average",
		"balance", "balloon", "banking", "barrier", "battery", "bedroom",
		"believe", "benefit", "besides", "between", "beyond", "billion",
		"blanket", "blossom", "brother", "brought", "builder", "burning",
		"cabinet", "caption", "capture", "careful", "carrier", "cartoon",
		"ceiling", "century", "chamber", "channel", "chapter", "charity",
		"chicken", "circuit", "citizen", "climate", "clothes", "cluster",
		"collect", "college", "combine", "comfort", "command", "comment",
		"company", "compare", "compete", "complex", "concept", "concern",
		"concert", "conduct", "confirm", "connect", "consist", "contact",
		"contain", "content", "contest", "context", "control", "convert",
		"cooking", "correct", "cottage", "council", "counter", "country",
		"courage", "cracker", "creator", "crystal", "culture", "curious",
		"current", "custody", "cushion", "dancing", "dangers", "darling",
		"dealing", "decided", "defense", "deliver", "density", "deposit",
		"descend", "despite", "destiny", "develop", "diamond", "digital",
		"discuss", "disease", "dispute", "divided", "doorway", "drawing",
		"dreamed", "dropped", "dwelled", "economy", "edition", "educate",
		"elegant", "element", "elevate", "embrace", "emerald", "emotion",
		"enhance", "enquiry", "entered", "episode", "equally", "escaped",
		"essence", "evening", "example", "exhibit", "expense", "explain",
		"exploit", "explore", "exposed", "express", "extreme", "factory",
		"failure", "fantasy", "farmers", "fashion", "feather", "feature",
		"feeling", "fiction", "fighter", "finance", "finding", "fishing",
		"fitness", "footage", "forever", "forgive", "formula", "forward",
		"founder", "freedom", "freight", "friends", "furniture",
		"garbage", "gateway", "general", "genuine", "gesture", "glacier",
		"grammar", "granite", "greater", "hamster", "handful", "harmony",
		"harvest", "heading", "healthy", "helpful", "heritage",
		"highway", "history", "holiday", "honesty", "hundred", "husband",
		"imagine", "impress", "improve", "incline", "inquiry", "inspect",
		"install", "instead", "invalid", "inviter", "journal", "journey",
		"justice", "keyword", "kingdom", "landing", "largely", "learner",
		"leisure", "liberty", "library", "license", "limited", "lineage",
		"listing", "litmus", "machine", "magnify", "manager", "mansion",
		"marble", "margin", "married", "massive", "meaning", "measure",
		"medical", "meeting", "melting", "mention", "mermaid", "message",
		"midterm", "mineral", "miracle", "mission", "mistake", "monitor",
		"monster", "morning", "mustard", "mystery", "natural", "nearest",
		"neither", "network", "neutral", "nowhere", "nuclear", "obvious",
		"octopus", "offense", "officer", "opening", "opinion", "organic",
		"outcome", "outdoor", "outline", "overall", "package", "painter",
		"parking", "partial", "passage", "passion", "patient", "pattern",
		"payment", "penalty", "pension", "perfect", "perform", "perhaps",
		"picture", "pioneer", "plastic", "popular", "portion", "posture",
		"pottery", "present", "prevent", "primary", "printer", "privacy",
		"private", "problem", "process", "product", "program", "project",
		"promise", "protect", "protest", "publish", "quality", "quarter",
		"radical", "railway", "reality", "receipt", "receive", "recover",
		"regular", "relieve", "remains", "removal", "request", "require",
		"reserve", "resolve", "respect", "respond", "restore", "reunion",
		"revenue", "reverse", "revisit", "routine", "running", "sailing",
		"satisfy", "science", "seafood", "seasons", "section", "segment",
		"session", "setting", "several", "shelter", "shipped", "shorten",
		"silence", "similar", "society", "soldier", "someone", "species",
		"specify", "spirits", "stadium", "stomach", "storage", "strange",
		"stretch", "student", "studied", "subject", "success", "suggest",
		"summary", "supply", "support", "suppose", "surgery", "surplus",
		"surprise", "survive", "teacher", "tension", "theatre", "thereby",
		"thought", "through", "tonight", "trouble", "tunnels", "unknown",
		"upgrade", "vehicle", "venture", "village", "vintage", "visible",
		"warrant", "weather", "welcome", "western", "without", "witness",
		"working", "worship", "writing",
	} {
		d.Add(w)
	}

	return d
}
