package model

// Argument is the output of one generation call. All fields are set at
// construction and never mutated.
type Argument struct {
	Text       string   `json:"text"`       // Full surface form, a well-formed sentence sequence
	RuleType   string   `json:"rule_type"`  // Valid rule name or fallacy name, depending on IsValid
	IsValid    bool     `json:"is_valid"`   // Whether the argument realizes the valid form
	Language   string   `json:"language"`   // Language code ("en", "es")
	Complexity string   `json:"complexity"` // Resolved level, never "mixed"
	Premises   []string `json:"premises"`   // The sentences bound into the argument, in draw order
	Conclusion string   `json:"conclusion"` // The conclusion clause as it appears in the text
}

// ArgumentPair holds a valid argument and its fallacy counterpart built from
// the same rule pairing.
type ArgumentPair struct {
	Valid   Argument `json:"valid"`
	Invalid Argument `json:"invalid"`

	GoodRule string `json:"good_rule"` // Valid rule name
	BadRule  string `json:"bad_rule"`  // Its bijective fallacy counterpart

	// Shared reports whether both members were bound to the identical
	// sentence set. When true, logical structure is the only difference
	// between the two texts.
	Shared bool `json:"shared"`
}
