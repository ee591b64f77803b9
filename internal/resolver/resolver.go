// Package resolver projects a resolved intent into pre-authored answer
// text from the knowledge base.
package resolver

import (
	"fmt"
	"strings"

	"github.com/pillaihoc/phoccy/internal/kb"
)

// Projection composes an answer from the knowledge base for one intent.
// It returns false when the KB lacks the material for a usable answer,
// in which case the caller falls back.
type Projection func(k *kb.KnowledgeBase) (string, bool)

// Resolver maps intent names to answer projections over an immutable
// knowledge base. New intents are added by registering a projection,
// not by extending a dispatch switch.
type Resolver struct {
	kb          *kb.KnowledgeBase
	projections map[string]Projection
}

// New creates a Resolver over the given knowledge base with the built-in
// projections registered.
func New(k *kb.KnowledgeBase) *Resolver {
	r := &Resolver{
		kb:          k,
		projections: make(map[string]Projection),
	}
	r.registerDefaults()
	return r
}

// Register adds or replaces the projection for an intent name.
func (r *Resolver) Register(name string, p Projection) {
	r.projections[name] = p
}

// Known reports whether a projection is registered for the intent.
func (r *Resolver) Known(name string) bool {
	_, ok := r.projections[name]
	return ok
}

// Names returns the registered intent names, unordered.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.projections))
	for name := range r.projections {
		names = append(names, name)
	}
	return names
}

// Resolve produces the answer text for the intent. The second return is
// false for unrecognized intents or when the projection has nothing to
// say; Resolve never panics on missing KB fields.
func (r *Resolver) Resolve(name string) (string, bool) {
	p, ok := r.projections[name]
	if !ok {
		return "", false
	}
	return p(r.kb)
}

func (r *Resolver) registerDefaults() {
	r.Register("phcet_info", func(k *kb.KnowledgeBase) (string, bool) {
		if k.PHCET.Overview == "" {
			return "", false
		}
		return k.PHCET.Overview + "\n\nYou can ask how to apply or about the syllabus.", true
	})

	r.Register("phcet_apply", func(k *kb.KnowledgeBase) (string, bool) {
		if k.PHCET.ApplicationProcess != "" {
			return k.PHCET.ApplicationProcess, true
		}
		return "You can apply online at https://phcet.in during the registration window.", true
	})

	r.Register("phcet_syllabus", func(k *kb.KnowledgeBase) (string, bool) {
		return "PHCET syllabus includes Physics, Chemistry, Mathematics, and Biology (for Pharmacy). The exam pattern is multiple choice questions lasting 2 hours.", true
	})

	r.Register("phcasc_info", func(k *kb.KnowledgeBase) (string, bool) {
		if k.PHCASC.Overview != "" {
			return k.PHCASC.Overview, true
		}
		if k.PHCASC.Name == "" {
			return "", false
		}
		return k.PHCASC.Name + "\n\nCourses offered: " + strings.Join(k.PHCASC.Courses, ", "), true
	})

	r.Register("phcp_info", func(k *kb.KnowledgeBase) (string, bool) {
		if k.PHCP.Overview != "" {
			return k.PHCP.Overview, true
		}
		return "PHCP offers diploma engineering courses like Computer, Mechanical, Civil, Electronics.", true
	})

	r.Register("phcer_info", func(k *kb.KnowledgeBase) (string, bool) {
		if k.PHCER.Overview != "" {
			return k.PHCER.Overview, true
		}
		return "PHCER offers B.Ed and M.Ed programs for teacher education.", true
	})

	r.Register("campus_info", func(k *kb.KnowledgeBase) (string, bool) {
		if k.General.Campus.Overview == "" {
			return "", false
		}
		answer := k.General.Campus.Overview
		if len(k.General.Campus.Facilities) > 0 {
			answer += "\nFacilities include " + strings.Join(k.General.Campus.Facilities, ", ") + "."
		} else {
			answer += "\nFacilities include library, sports, hostel, transport, wifi."
		}
		return answer, true
	})

	r.Register("placements_info", func(k *kb.KnowledgeBase) (string, bool) {
		return "Placement cell organizes drives with companies like TCS, Infosys. Average package ₹2.5 LPA, highest ₹4 LPA.", true
	})

	r.Register("contact_info", func(k *kb.KnowledgeBase) (string, bool) {
		var lines []string
		if k.General.Contacts.MainPhone != "" {
			lines = append(lines, fmt.Sprintf("Phone: %s", k.General.Contacts.MainPhone))
		}
		if k.General.Contacts.Email != "" {
			lines = append(lines, fmt.Sprintf("Email: %s", k.General.Contacts.Email))
		}
		if k.General.Contacts.Website != "" {
			lines = append(lines, fmt.Sprintf("Website: %s", k.General.Contacts.Website))
		}
		if len(lines) == 0 {
			return "", false
		}
		return "Main Contact:\n" + strings.Join(lines, "\n"), true
	})

	r.Register("faq", func(k *kb.KnowledgeBase) (string, bool) {
		if len(k.PHCET.FAQ) > 0 {
			first := k.PHCET.FAQ[0]
			return fmt.Sprintf("Example FAQ:\nQ: %s\nA: %s", first.Question, first.Answer), true
		}
		return "You can ask me anything about the college!", true
	})
}
