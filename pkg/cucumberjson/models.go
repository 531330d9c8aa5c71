package cucumberjson

// Element types used by cucumber JSON reports.
const (
	ElementScenario   = "scenario"
	ElementBackground = "background"
)

// Feature is one feature of a cucumber JSON report.
type Feature struct {
	URI         string    `json:"uri"`
	ID          string    `json:"id"`
	Keyword     string    `json:"keyword"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Line        int64     `json:"line"`
	Tags        []Tag     `json:"tags,omitempty"`
	Elements    []Element `json:"elements,omitempty"`
}

// Element is a scenario, an outline instance or a background.
// Backgrounds precede the scenario they ran for.
type Element struct {
	ID          string `json:"id"`
	Keyword     string `json:"keyword"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Line        int64  `json:"line"`
	Type        string `json:"type"`
	Tags        []Tag  `json:"tags,omitempty"`
	Before      []Hook `json:"before,omitempty"`
	Steps       []Step `json:"steps,omitempty"`
	After       []Hook `json:"after,omitempty"`
}

type Tag struct {
	Name string `json:"name"`
	Line int64  `json:"line"`
}

type Step struct {
	Keyword    string      `json:"keyword"`
	Name       string      `json:"name"`
	Line       int64       `json:"line"`
	DocString  *DocString  `json:"doc_string,omitempty"`
	Rows       []Row       `json:"rows,omitempty"`
	Match      Match       `json:"match"`
	Result     Result      `json:"result"`
	Embeddings []Embedding `json:"embeddings,omitempty"`
	Output     []string    `json:"output,omitempty"`
}

// Hook is a before or after scenario hook.
type Hook struct {
	Match      Match       `json:"match"`
	Result     Result      `json:"result"`
	Embeddings []Embedding `json:"embeddings,omitempty"`
	Output     []string    `json:"output,omitempty"`
}

type DocString struct {
	Value       string `json:"value"`
	ContentType string `json:"content_type"`
	Line        int64  `json:"line"`
}

type Row struct {
	Cells []string `json:"cells"`
}

type Match struct {
	Location string `json:"location"`
}

// Result is a step or hook outcome. Duration is in nanoseconds.
type Result struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Duration     *int64 `json:"duration,omitempty"`
}

// Embedding is a base64 encoded attachment.
type Embedding struct {
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}
