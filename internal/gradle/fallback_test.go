package gradle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWrapperProperties(t *testing.T, root, distributionURL string) {
	t.Helper()
	dir := filepath.Join(root, "gradle", "wrapper")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "distributionBase=GRADLE_USER_HOME\ndistributionUrl=" + distributionURL + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gradle-wrapper.properties"), []byte(content), 0644))
}

func TestDetectWrapperVersion(t *testing.T) {
	root := t.TempDir()
	writeWrapperProperties(t, root, `https\://services.gradle.org/distributions/gradle-7.6.4-bin.zip`)

	version, err := DetectWrapperVersion(root)
	require.NoError(t, err)
	assert.Equal(t, "7.6.4", version)
}

func TestDetectWrapperVersionAllDistribution(t *testing.T) {
	root := t.TempDir()
	writeWrapperProperties(t, root, `https\://services.gradle.org/distributions/gradle-8.5-all.zip`)

	version, err := DetectWrapperVersion(root)
	require.NoError(t, err)
	assert.Equal(t, "8.5", version)
}

func TestDetectWrapperVersionMissingMarker(t *testing.T) {
	version, err := DetectWrapperVersion(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, VersionUnknown, version)
}

func TestDetectWrapperVersionNoMatch(t *testing.T) {
	root := t.TempDir()
	writeWrapperProperties(t, root, `https\://example.com/custom-distribution.zip`)

	version, err := DetectWrapperVersion(root)
	require.Error(t, err)
	assert.Equal(t, VersionUnknown, version)

	var parseErr *VersionParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCountModules(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected int
	}{
		{
			name:     "groovy multi include",
			file:     "settings.gradle",
			content:  "rootProject.name = 'demo'\ninclude ':app', ':lib', ':core'\n",
			expected: 4,
		},
		{
			name:     "kotlin dsl include",
			file:     "settings.gradle.kts",
			content:  "rootProject.name = \"demo\"\ninclude(\"app\")\ninclude(\"lib\")\n",
			expected: 3,
		},
		{
			name:     "no includes",
			file:     "settings.gradle",
			content:  "rootProject.name = 'solo'\n",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, tt.file), []byte(tt.content), 0644))
			assert.Equal(t, tt.expected, CountModules(root))
		})
	}
}

func TestCountModulesNoSettings(t *testing.T) {
	assert.Equal(t, 1, CountModules(t.TempDir()))
}
