package models

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// DefaultLength is used when the request does not carry a length.
const DefaultLength = LengthMedium

// DefaultStyle is interpolated into the prompt when the request has no style.
const DefaultStyle = "fictional"

// LengthPolicy maps a story length to its target word-count range.
var LengthPolicy = map[Length]string{
	LengthShort:  "200-300",
	LengthMedium: "500-700",
	LengthLong:   "1000-1500",
}

func (l Length) Valid() bool {
	_, ok := LengthPolicy[l]
	return ok
}

// WordCount returns the target word-count range for the length.
func (l Length) WordCount() (string, bool) {
	wc, ok := LengthPolicy[l]
	return wc, ok
}

// Validated generation input
type GenerationRequest struct {
	Topic  string `json:"topic" jsonschema:"The main topic or theme for the story"`
	Style  string `json:"style,omitempty" jsonschema:"Writing style (e.g. adventure, mystery, sci-fi)"`
	Length Length `json:"length,omitempty" jsonschema:"Story length: short, medium or long (default: medium)"`
}

// Structured story returned by the model
type GenerationResult struct {
	Title     string   `json:"title" description:"Story title"`
	Genre     string   `json:"genre" description:"Story genre"`
	Story     string   `json:"story" description:"Full story text"`
	WordCount float64  `json:"wordCount" description:"Number of words in the story"`
	Themes    []string `json:"themes" description:"Themes explored by the story"`
}

// Inbound HTTP body. Every field is optional; defaults are applied by the transport.
type StoryRequest struct {
	Topic  string `json:"topic,omitempty" description:"The main topic or theme for the story (default: a brave explorer on an alien planet)"`
	Style  string `json:"style,omitempty" description:"Writing style (default: adventure)"`
	Length string `json:"length,omitempty" description:"short, medium or long (default: medium)"`
}

type SuccessResponse struct {
	Success bool             `json:"success" description:"Always true"`
	Data    GenerationResult `json:"data" description:"Generated story"`
}

type FailureResponse struct {
	Success bool   `json:"success" description:"Always false"`
	Error   string `json:"error" description:"Error message"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}
