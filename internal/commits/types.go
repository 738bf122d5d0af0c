package commits

// TypeTag is the canonical classification of a commit subject.
type TypeTag string

// Recognized commit types, in display order.
const (
	TypeFeat     TypeTag = "feat"
	TypeFix      TypeTag = "fix"
	TypeRefactor TypeTag = "refactor"
	TypePerf     TypeTag = "perf"
	TypeDocs     TypeTag = "docs"
	TypeTest     TypeTag = "test"
	TypeChore    TypeTag = "chore"
	TypeBuild    TypeTag = "build"
	TypeCI       TypeTag = "ci"
	TypeStyle    TypeTag = "style"
	TypeOther    TypeTag = "other"
)

// DisplayOrder is the fixed order in which commit type groups are rendered.
var DisplayOrder = []TypeTag{
	TypeFeat,
	TypeFix,
	TypeRefactor,
	TypePerf,
	TypeDocs,
	TypeTest,
	TypeChore,
	TypeBuild,
	TypeCI,
	TypeStyle,
	TypeOther,
}

var typeLabels = map[TypeTag]string{
	TypeFeat:     "Features",
	TypeFix:      "Fixes",
	TypeRefactor: "Refactors",
	TypePerf:     "Performance",
	TypeDocs:     "Docs",
	TypeTest:     "Tests",
	TypeChore:    "Chores",
	TypeBuild:    "Build",
	TypeCI:       "CI",
	TypeStyle:    "Style",
	TypeOther:    "Other",
}

// Label returns the human-readable group heading for a type.
func (t TypeTag) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return typeLabels[TypeOther]
}

// Known reports whether t is one of the recognized commit types.
func (t TypeTag) Known() bool {
	_, ok := typeLabels[t]
	return ok
}

// Canonical maps unrecognized types to TypeOther so every stored record
// carries exactly one member of the closed type set.
func (t TypeTag) Canonical() TypeTag {
	if t.Known() {
		return t
	}
	return TypeOther
}

// Record is a single decoded commit: its classified type, the cleaned
// subject message, and how many files the commit touched.
type Record struct {
	Type         TypeTag
	Message      string
	FilesChanged int
}
