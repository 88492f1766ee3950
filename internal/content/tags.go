package content

// Area is a domain of expertise, e.g. "Backend" or "Game Development".
type Area string

// Tool is software (or a physical tool) used to get something done.
type Tool string

// Label is a freeform article topic that is neither an Area nor a Tool.
type Label string

// Placeholders returned by lookups that must produce a value.
const (
	AreaNotFound Area = "<ERR: Area not found>"
	ToolNotFound Tool = "<ERR: Tool not found>"
)

func (a Area) String() string  { return string(a) }
func (t Tool) String() string  { return string(t) }
func (l Label) String() string { return string(l) }

// Topic classifies an Article. The set of implementations is closed:
// Area, Tool and Label.
type Topic interface {
	String() string
	topic()
}

func (Area) topic()  {}
func (Tool) topic()  {}
func (Label) topic() {}

// Competency is an ordinal skill rating.
type Competency int

const (
	CompetencyNone Competency = iota
	CompetencyNovice
	CompetencyIntermediate
	CompetencyAdvanced
	CompetencyExpert
)

var competencyNames = [...]string{"None", "Novice", "Intermediate", "Advanced", "Expert"}

// CompetencyFromInt clamps i into [0,4].
func CompetencyFromInt(i int) Competency {
	return Competency(clamp(i, int(CompetencyNone), int(CompetencyExpert)))
}

func (c Competency) Int() int {
	return int(c)
}

func (c Competency) String() string {
	return competencyNames[CompetencyFromInt(int(c))]
}

// MarshalYAML writes the competency label.
func (c Competency) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
