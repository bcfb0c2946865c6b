package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func knownSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(s string) bool { return set[s] }
}

func TestResolveCategory_Languages(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryLanguage, c.ResolveCategory("python"))
	assert.Equal(t, CategoryLanguage, c.ResolveCategory("Python"))
	assert.Equal(t, CategoryLanguage, c.ResolveCategory("  Go  "))
	assert.Equal(t, CategoryLanguage, c.ResolveCategory("C++"))
	assert.Equal(t, CategoryLanguage, c.ResolveCategory("r"))
}

func TestResolveCategory_SingleLetterLanguagesMatchExactlyOnly(t *testing.T) {
	c := NewClassifier(nil)

	// "r" is a language keyword but must not match by containment,
	// otherwise nearly every skill would bucket as a language.
	assert.Equal(t, CategoryDevOps, c.ResolveCategory("terraform"))
	assert.Equal(t, CategoryDatabase, c.ResolveCategory("redis"))
}

func TestResolveCategory_Frontend(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryFrontend, c.ResolveCategory("React"))
	assert.Equal(t, CategoryFrontend, c.ResolveCategory("next.js"))
	assert.Equal(t, CategoryFrontend, c.ResolveCategory("Tailwind CSS"))
}

func TestResolveCategory_Backend(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryBackend, c.ResolveCategory("Django"))
	assert.Equal(t, CategoryBackend, c.ResolveCategory("node.js"))
	assert.Equal(t, CategoryBackend, c.ResolveCategory("REST API"))
}

func TestResolveCategory_DataML(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryDataML, c.ResolveCategory("TensorFlow"))
	assert.Equal(t, CategoryDataML, c.ResolveCategory("machine learning"))
	assert.Equal(t, CategoryDataML, c.ResolveCategory("Power BI"))
	assert.Equal(t, CategoryDataML, c.ResolveCategory("scikit-learn"))
}

func TestResolveCategory_DatabaseAndDevOps(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryDatabase, c.ResolveCategory("PostgreSQL"))
	assert.Equal(t, CategoryDatabase, c.ResolveCategory("MongoDB"))
	assert.Equal(t, CategoryDevOps, c.ResolveCategory("Docker"))
	assert.Equal(t, CategoryDevOps, c.ResolveCategory("k8s"))
	assert.Equal(t, CategoryDevOps, c.ResolveCategory("GitHub Actions"))
}

func TestResolveCategory_Mobile(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryMobile, c.ResolveCategory("Flutter"))
	assert.Equal(t, CategoryMobile, c.ResolveCategory("android"))
}

func TestResolveCategory_PrecedenceOrderWins(t *testing.T) {
	c := NewClassifier(nil)

	// "sql" sits in the language set, which is scanned before databases.
	assert.Equal(t, CategoryLanguage, c.ResolveCategory("sql"))

	// "react native" contains "react" (frontend) and the frontend rule
	// is scanned before mobile, so it buckets as frontend. The scan
	// order, not the table we would intuitively place it in, decides.
	assert.Equal(t, CategoryFrontend, c.ResolveCategory("react native"))
}

func TestResolveCategory_KnownIconFallsBackToTool(t *testing.T) {
	c := NewClassifier(knownSet("figma", "blender"))

	assert.Equal(t, CategoryTool, c.ResolveCategory("Figma"))
	assert.Equal(t, CategoryTool, c.ResolveCategory("blender"))
}

func TestResolveCategory_UnknownFallsBackToOther(t *testing.T) {
	c := NewClassifier(knownSet("figma"))

	assert.Equal(t, CategoryOther, c.ResolveCategory("quantum-flux-analyzer-9000"))
	assert.Equal(t, CategoryOther, c.ResolveCategory(""))
	assert.Equal(t, CategoryOther, c.ResolveCategory("   "))
}

func TestResolveCategory_NilKnownNeverPanics(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryOther, c.ResolveCategory("figma"))
}

func TestAllCategories_StableOrder(t *testing.T) {
	cats := AllCategories()

	assert.Equal(t, 9, len(cats))
	assert.Equal(t, CategoryLanguage, cats[0])
	assert.Equal(t, CategoryOther, cats[8])
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Programming Languages", CategoryLanguage.Title())
	assert.Equal(t, "Data Science & ML", CategoryDataML.Title())
	assert.Equal(t, "Other Skills", CategoryOther.Title())
	assert.Equal(t, "Other Skills", Category("bogus").Title())
}
