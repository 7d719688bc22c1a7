package language

import "github.com/mpeirce/logipair/internal/model"

// English returns the English pattern bank.
//
// Basic and intermediate share the everyday connective vocabulary (they
// differ in structure, not wording); advanced shifts to formal connectives;
// expert keeps the formal register and adds the symbolic therefore sign.
func English() Bank {
	basicConditional := []string{
		"if {p}, then {q}",
		"if {p} then {q}",
		"{q} if {p}",
		"given {p}, {q}",
	}
	formalConditional := []string{
		"if {p}, then {q}",
		"given that {p}, {q}",
		"provided that {p}, {q}",
		"on the condition that {p}, {q}",
	}
	expertConditional := []string{
		"if {p}, then {q}",
		"{p} implies {q}",
		"{p} entails that {q}",
	}

	basicConjunction := []string{
		"{p} and {q}",
		"{p}, and {q}",
		"both {p} and {q}",
		"{p} as well as {q}",
	}
	formalConjunction := []string{
		"{p} and {q}",
		"both {p} and {q}",
		"{p} in conjunction with {q}",
		"{p} together with {q}",
	}

	basicDisjunction := []string{
		"{p} or {q}",
		"either {p} or {q}",
	}
	formalDisjunction := []string{
		"{p} or {q}",
		"either {p} or {q}",
		"at least one of {p} and {q}",
	}

	basicNegation := []string{
		"it is not the case that {s}",
		"{s} is false",
		"{s} doesn't hold",
	}
	formalNegation := []string{
		"it is not the case that {s}",
		"it is false that {s}",
		"{s} is not true",
	}

	basicConclusion := []string{"therefore", "thus", "hence", "so", "consequently"}
	formalConclusion := []string{"therefore", "thus", "hence", "consequently", "it follows that"}
	expertConclusion := []string{"therefore", "it follows that", "∴"}

	basicPremise := []string{"after all,", "because", "since"}
	formalPremise := []string{"after all,", "given that", "this follows because"}

	return &table{
		code: "en",
		name: "English",
		markers: map[MarkerKind]map[model.Complexity][]string{
			MarkerConditional: levels(basicConditional, basicConditional, formalConditional, expertConditional),
			MarkerConjunction: levels(basicConjunction, basicConjunction, formalConjunction, formalConjunction),
			MarkerDisjunction: levels(basicDisjunction, basicDisjunction, formalDisjunction, formalDisjunction),
			MarkerNegation:    levels(basicNegation, basicNegation, formalNegation, formalNegation),
			MarkerConclusion:  levels(basicConclusion, basicConclusion, formalConclusion, expertConclusion),
			MarkerPremise:     levels(basicPremise, basicPremise, formalPremise, formalPremise),
		},
		skeletons: standardSkeletons(),
		compWhole: levels(
			[]string{"the group as a whole has the property that {s}", "the team as a whole is such that {s}"},
			[]string{"the group as a whole has the property that {s}", "the team as a whole is such that {s}"},
			[]string{"the collective has the property that {s}", "the organization as a whole is such that {s}"},
			[]string{"the collective has the property that {s}", "the organization as a whole is such that {s}"},
		),
		compPart: levels(
			[]string{"every member has the property that {s}", "each part is such that {s}"},
			[]string{"every member has the property that {s}", "each part is such that {s}"},
			[]string{"each constituent has the property that {s}", "every individual member is such that {s}"},
			[]string{"each constituent has the property that {s}", "every individual member is such that {s}"},
		),
		exclusivity: levels(
			[]string{"one of these must be true", "these are the only options"},
			[]string{"one of these must be true", "these are the only options"},
			[]string{"no other possibility exists", "these exhaust the alternatives"},
			[]string{"no other possibility exists", "these exhaust the alternatives"},
		),
	}
}
