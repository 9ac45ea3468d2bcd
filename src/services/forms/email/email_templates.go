package email

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"
)

type FormStoppedEmailData struct {
	HostName      string
	FormTitle     string
	ResponseCount int64
	StoppedAt     time.Time
	ResultsLink   string
}

//go:embed email_form_stopped.html
var formStoppedHTML string

var formStoppedTmpl = template.Must(
	template.New("form_stopped").
		Funcs(template.FuncMap{
			"formatDateTime": func(t time.Time) string {
				return t.Format("2 Jan 2006 15:04")
			},
		}).
		Parse(formStoppedHTML),
)

// RenderFormStoppedHTML fills the stopped-form summary template.
func RenderFormStoppedHTML(data FormStoppedEmailData) (string, error) {
	var buf bytes.Buffer
	if err := formStoppedTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
