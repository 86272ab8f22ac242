package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_StripsMarkup(t *testing.T) {
	html := `<html><head><title>Post</title>
<script type="text/javascript">var tracking = "payload";</script>
<style>.hero { color: red; }</style></head>
<body><h1>The   Headline</h1><p>First paragraph.</p><p>Second&nbsp;paragraph.</p></body></html>`

	text := ExtractText(html)

	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<")
	assert.Contains(t, text, "The Headline")
	assert.Contains(t, text, "First paragraph. Second paragraph.")
}

func TestExtractText_DecodesEntities(t *testing.T) {
	text := ExtractText("Fish &amp; Chips &lt;tested&gt; &quot;daily&quot; at Bob&#39;s")

	assert.Equal(t, `Fish & Chips <tested> "daily" at Bob's`, text)
}

func TestExtractText_MultilineScript(t *testing.T) {
	html := "<p>kept</p><SCRIPT>\nline one\nline two\n</SCRIPT><p>also kept</p>"

	text := ExtractText(html)

	assert.Equal(t, "kept also kept", text)
}

func TestExtractText_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
	assert.Equal(t, "", ExtractText("<div><span></span></div>"))
}
