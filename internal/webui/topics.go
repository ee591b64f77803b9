package webui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/pillaihoc/phoccy/internal/kb"
)

// topic is one browseable KB section.
type topic struct {
	Name  string
	Title string
	Body  func(k *kb.KnowledgeBase) string
}

// topics lists the KB sections in display order.
var topics = []topic{
	{"phcet", "PHCET Entrance Exam", func(k *kb.KnowledgeBase) string {
		var b strings.Builder
		b.WriteString(k.PHCET.Overview)
		if k.PHCET.ApplicationProcess != "" {
			b.WriteString("\n\n## How to apply\n\n" + k.PHCET.ApplicationProcess)
		}
		if len(k.PHCET.FAQ) > 0 {
			b.WriteString("\n\n## FAQ\n")
			for _, qa := range k.PHCET.FAQ {
				fmt.Fprintf(&b, "\n**Q: %s**\n\n%s\n", qa.Question, qa.Answer)
			}
		}
		return b.String()
	}},
	{"phcasc", "Arts, Science and Commerce", func(k *kb.KnowledgeBase) string {
		var b strings.Builder
		if k.PHCASC.Name != "" {
			b.WriteString("# " + k.PHCASC.Name + "\n\n")
		}
		b.WriteString(k.PHCASC.Overview)
		if len(k.PHCASC.Courses) > 0 {
			b.WriteString("\n\n## Courses\n")
			for _, c := range k.PHCASC.Courses {
				b.WriteString("\n- " + c)
			}
		}
		return b.String()
	}},
	{"phcp", "Polytechnic", func(k *kb.KnowledgeBase) string { return k.PHCP.Overview }},
	{"phcer", "Education and Research", func(k *kb.KnowledgeBase) string { return k.PHCER.Overview }},
	{"campus", "Campus and Facilities", func(k *kb.KnowledgeBase) string {
		var b strings.Builder
		b.WriteString(k.General.Campus.Overview)
		if len(k.General.Campus.Facilities) > 0 {
			b.WriteString("\n\n## Facilities\n")
			for _, f := range k.General.Campus.Facilities {
				b.WriteString("\n- " + f)
			}
		}
		return b.String()
	}},
}

// markdown is the shared renderer for topic bodies. KB answer text is
// authored as markdown.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

var topicTemplate = template.Must(template.New("topic").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}} — PHOCCy</title></head>
<body>
<nav><a href="/">Chat</a> | <a href="/topics">Topics</a></nav>
<main>{{.Body}}</main>
</body>
</html>
`))

func (u *UI) handleTopicList(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, t := range topics {
		fmt.Fprintf(&b, `<li><a href="/topics/%s">%s</a></li>`+"\n", t.Name, template.HTMLEscapeString(t.Title))
	}
	b.WriteString("</ul>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	topicTemplate.Execute(w, map[string]any{
		"Title": "Topics",
		"Body":  template.HTML(b.String()),
	})
}

func (u *UI) handleTopicPage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var found *topic
	for i := range topics {
		if topics[i].Name == name {
			found = &topics[i]
			break
		}
	}
	if found == nil {
		http.Error(w, "unknown topic", http.StatusNotFound)
		return
	}

	body := strings.TrimSpace(found.Body(u.kb))
	if body == "" {
		http.Error(w, "no content for topic", http.StatusNotFound)
		return
	}

	var rendered bytes.Buffer
	if err := markdown.Convert([]byte(body), &rendered); err != nil {
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	topicTemplate.Execute(w, map[string]any{
		"Title": found.Title,
		"Body":  template.HTML(rendered.String()),
	})
}
