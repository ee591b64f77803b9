// Package intent defines the intent catalog and the keyword matcher that
// maps raw query text to an intent name.
package intent

// Intent is a named category of user request with its trigger substrings
// and the follow-up questions suggested after it is answered.
type Intent struct {
	Name      string   `yaml:"name"`
	Triggers  []string `yaml:"triggers"`
	FollowUps []string `yaml:"followups"`
}

// DefaultCatalog returns the built-in intent catalog. Order matters:
// when a query contains triggers from more than one intent, the
// earlier-declared intent wins.
func DefaultCatalog() []Intent {
	return []Intent{
		{
			Name:     "phcet_info",
			Triggers: []string{"phcet", "entrance exam", "entrance test", "admission test", "phc common entrance"},
			FollowUps: []string{
				"How do I apply for PHCET?",
				"What is the PHCET syllabus?",
			},
		},
		{
			Name:     "phcet_apply",
			Triggers: []string{"how to apply phcet", "phcet application", "phcet registration", "phcet form"},
			FollowUps: []string{
				"What is the PHCET syllabus?",
				"What documents do I need?",
			},
		},
		{
			Name:     "phcet_syllabus",
			Triggers: []string{"phcet syllabus", "phcet subjects", "phcet exam pattern"},
			FollowUps: []string{
				"How do I apply for PHCET?",
			},
		},
		{
			Name:     "phcasc_info",
			Triggers: []string{"phcasc", "arts college", "commerce college", "science college", "pillai arts science"},
			FollowUps: []string{
				"What courses does PHCASC offer?",
				"Tell me about the campus",
			},
		},
		{
			Name:     "phcp_info",
			Triggers: []string{"polytechnic", "phcp", "diploma", "pillai polytechnic"},
			FollowUps: []string{
				"Tell me about placements",
			},
		},
		{
			Name:     "phcer_info",
			Triggers: []string{"phcer", "education college", "b.ed", "teacher education"},
			FollowUps: []string{
				"How do I contact the college?",
			},
		},
		{
			Name:     "campus_info",
			Triggers: []string{"campus", "facilities", "hostel", "transport", "library", "wifi"},
			FollowUps: []string{
				"Tell me about placements",
				"How do I contact the college?",
			},
		},
		{
			Name:     "placements_info",
			Triggers: []string{"placements", "jobs", "recruiters", "salary", "internship"},
			FollowUps: []string{
				"What is PHCET?",
			},
		},
		{
			Name:     "contact_info",
			Triggers: []string{"contact", "phone", "email", "address", "location"},
		},
		{
			Name:     "faq",
			Triggers: []string{"faq", "questions", "doubt", "help"},
			FollowUps: []string{
				"What is PHCET?",
				"Tell me about the campus",
			},
		},
	}
}
