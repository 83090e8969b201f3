package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "admin.html", map[string]any{
		"Section":  "news",
		"Username": "alice",
		"Counts":   map[string]int{"Artists": 3, "Videos": 4, "Events": 1, "News": 7, "Subscribers": 12},
	}))
	assert.Contains(t, buf.String(), `<a href="/admin/news" class="active">`)
	assert.Contains(t, buf.String(), "Signed in as alice")

	buf.Reset()
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "login.html", map[string]any{"Next": "/admin"}))
	assert.Contains(t, buf.String(), "/api/auth/login")
}
