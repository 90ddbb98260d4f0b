package core

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// ExecuteTemplate renders the given content with the provided data,
// usually a *SystemContext. missingkey=zero keeps optional fields
// working with Sprig's 'default'.
func ExecuteTemplate(content string, data interface{}) (string, error) {
	tmpl, err := template.New("alpforge").Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
