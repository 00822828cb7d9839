package contest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemPage = `<html><body>
<div class="sample-test">
  <div class="input">
    <div class="title">Input</div>
    <pre><div class="test-example-line">5</div><div class="test-example-line">1</div><div class="test-example-line">1</div><div class="test-example-line">3</div><div class="test-example-line">1 2 3</div></pre>
  </div>
  <div class="output">
    <div class="title">Output</div>
    <pre>0
1</pre>
  </div>
  <div class="input">
    <div class="title">Input</div>
    <pre>1<br>4<br>2 4 6 8</pre>
  </div>
  <div class="output">
    <div class="title">Output</div>
    <pre>0</pre>
  </div>
</div>
</body></html>`

func TestExtractSamples(t *testing.T) {
	t.Parallel()
	samples, err := ExtractSamples(strings.NewReader(problemPage))
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "5\n1\n1\n3\n1 2 3", samples[0].Input)
	assert.Equal(t, "0\n1", samples[0].Output)
	assert.Equal(t, "1\n4\n2 4 6 8", samples[1].Input)
	assert.Equal(t, "0", samples[1].Output)
}

func TestExtractSamplesNoSections(t *testing.T) {
	t.Parallel()
	samples, err := ExtractSamples(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestExtractSamplesUnpairedInput(t *testing.T) {
	t.Parallel()
	page := `<div class="input"><pre>1</pre></div>`
	samples, err := ExtractSamples(strings.NewReader(page))
	require.NoError(t, err)
	assert.Empty(t, samples)
}
