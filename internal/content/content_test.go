package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	site, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), site)
}

func TestLoad_OverridesSections(t *testing.T) {
	path := writeFile(t, `
name: Test Person
slides:
  - title: One
  - title: Two
education:
  - degree: B.Sc
    institution: ABC College
    duration: 2018-2022
    grade: A
`)
	site, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Person", site.Name)
	require.Len(t, site.Slides, 2)
	assert.Equal(t, "Two", site.Slides[1].Title)
	require.Len(t, site.Education, 1)
	assert.Equal(t, "ABC College", site.Education[0].Institution)
	assert.Equal(t, Default().Skills, site.Skills, "sections not in the file keep defaults")
}

func TestLoad_RejectsInvalidEducation(t *testing.T) {
	path := writeFile(t, `
education:
  - degree: B.Sc
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNoSlides(t *testing.T) {
	_, err := Load(writeFile(t, "slides: []\n"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "slides: [\n"))
	assert.Error(t, err)
}

func TestShippedContentParses(t *testing.T) {
	site, err := Load("../../content/site.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, site.Slides)
	assert.NotEmpty(t, site.Education)
}
