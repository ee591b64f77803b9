// Package kb holds the static knowledge base: the pre-authored answer
// material for every campus topic. It is loaded once at startup and
// never mutated afterwards, so readers need no locking.
package kb

import (
	"encoding/json"
	"fmt"
	"os"
)

// QA is a single question/answer pair in a FAQ list.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Institute describes one college of the campus.
type Institute struct {
	Name               string   `json:"name"`
	Overview           string   `json:"overview"`
	ApplicationProcess string   `json:"application_process"`
	Courses            []string `json:"courses"`
	FAQ                []QA     `json:"faq"`
}

// Campus holds campus-wide facility information.
type Campus struct {
	Overview   string   `json:"overview"`
	Facilities []string `json:"facilities"`
}

// Contacts holds the main contact channels for the campus.
type Contacts struct {
	MainPhone string `json:"main_phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
}

// General groups campus-wide information that is not tied to one college.
type General struct {
	Campus   Campus   `json:"campus"`
	Contacts Contacts `json:"contacts"`
}

// KnowledgeBase is the full campus dataset. All answer projections read
// from this structure; a zero value for any field is valid and simply
// means that topic has no authored content.
type KnowledgeBase struct {
	PHCET   Institute `json:"phcet"`
	PHCASC  Institute `json:"phcasc"`
	PHCP    Institute `json:"phcp"`
	PHCER   Institute `json:"phcer"`
	General General   `json:"general"`
}

// Load reads and parses the knowledge base JSON file at path.
func Load(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base %s: %w", path, err)
	}

	var k KnowledgeBase
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("parsing knowledge base %s: %w", path, err)
	}
	return &k, nil
}
