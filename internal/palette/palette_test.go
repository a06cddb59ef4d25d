package palette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in      string
		want    Grade
		wantErr bool
	}{
		{"1", Grade1, false},
		{"2級", Grade2, false},
		{"grade3", Grade3, false},
		{" Grade1 ", Grade1, false},
		{"4", "", true},
		{"", "", true},
		{"first", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrade(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownGrade)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGradeLabels(t *testing.T) {
	assert.Equal(t, "1級", Grade1.Label())
	assert.Equal(t, "Grade 3 (3級)", Grade3.Title())
	assert.True(t, Grade2.Valid())
	assert.False(t, Grade("0").Valid())
}

func names(entries []taxonomy.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestDefaultBook(t *testing.T) {
	b := Default()

	g3, err := b.Entries(Grade3)
	require.NoError(t, err)
	assert.Equal(t, []string{"桜色", "青", "緑"}, names(g3))

	g2, err := b.Entries(Grade2)
	require.NoError(t, err)
	assert.Equal(t, []string{"黄色", "紫", "ピンク"}, names(g2))

	g1, err := b.Entries(Grade1)
	require.NoError(t, err)
	assert.Equal(t, append(names(g2), names(g3)...), names(g1))

	assert.Equal(t, taxonomy.OriginForeign, g2[2].Origin)
	assert.Equal(t, "p24+", g3[0].PCCS)
	assert.Empty(t, Lint(b))
}

func TestBookUnionKeepsDuplicates(t *testing.T) {
	a := taxonomy.Entry{Name: "赤", Hex: "#FF0000", PCCS: "v2"}
	b := NewBook([]taxonomy.Entry{a}, []taxonomy.Entry{a})
	assert.Equal(t, 2, b.Len(Grade1))
	assert.Equal(t, 0, b.Len(Grade("9")))

	_, err := b.Entries(Grade("9"))
	assert.ErrorIs(t, err, ErrUnknownGrade)
}

func TestBookEntriesAreCopies(t *testing.T) {
	b := Default()
	g3, err := b.Entries(Grade3)
	require.NoError(t, err)
	g3[0].Name = "changed"

	again, err := b.Entries(Grade3)
	require.NoError(t, err)
	assert.Equal(t, "桜色", again[0].Name)
}

func TestNewBookFillsOrigin(t *testing.T) {
	b := NewBook(nil, []taxonomy.Entry{{Name: "x", Hex: "#000000"}})
	g3, err := b.Entries(Grade3)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.OriginNative, g3[0].Origin)
}

func TestParse(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Parse([]byte("grade2: []\n"))
		assert.ErrorIs(t, err, ErrNoEntries)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Parse([]byte("grade2: [\n"))
		assert.Error(t, err)
	})
	t.Run("bad origin", func(t *testing.T) {
		_, err := Parse([]byte("grade3:\n  - name: x\n    origin: martian\n"))
		assert.Error(t, err)
	})
	t.Run("filter origin on entry", func(t *testing.T) {
		doc := "grade3:\n" +
			"  - name: A\n    hex: \"#FF0000\"\n    pccs: v2\n    origin: any\n" +
			"  - name: B\n    hex: \"#00FF00\"\n    pccs: v12\n    origin: native\n" +
			"  - name: C\n    hex: \"#0000FF\"\n    pccs: v18\n    origin: foreign\n"
		_, err := Parse([]byte(doc))
		assert.ErrorContains(t, err, `"any"`)
	})
	t.Run("roundtrip defaults", func(t *testing.T) {
		data, err := Marshal(Default())
		require.NoError(t, err)
		b, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, Default().File(), b.File())
	})
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	doc := "grade3:\n  - name: 白\n    hex: \"#FFFFFF\"\n    pccs: W\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len(Grade3))
	assert.Equal(t, 0, b.Len(Grade2))
	assert.Equal(t, 1, b.Len(Grade1))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

type fakeSource struct {
	tiers map[Grade][]taxonomy.Entry
	err   error
}

func (f fakeSource) Entries(g Grade) ([]taxonomy.Entry, error) {
	return f.tiers[g], f.err
}

func TestLoadFrom(t *testing.T) {
	def := Default().File()
	b, err := LoadFrom(fakeSource{tiers: map[Grade][]taxonomy.Entry{
		Grade2: def.Grade2,
		Grade3: def.Grade3,
	}})
	require.NoError(t, err)
	assert.Equal(t, 6, b.Len(Grade1))

	_, err = LoadFrom(fakeSource{})
	assert.ErrorIs(t, err, ErrNoEntries)

	_, err = LoadFrom(fakeSource{tiers: map[Grade][]taxonomy.Entry{
		Grade3: {{Name: "A", Hex: "#FF0000", Origin: taxonomy.OriginAny}},
	}})
	assert.ErrorContains(t, err, `"any"`)

	boom := errors.New("boom")
	_, err = LoadFrom(fakeSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestLint(t *testing.T) {
	b := NewBook(
		[]taxonomy.Entry{
			{Name: "赤", Hex: "#FF0000", PCCS: "v2", Munsell: "5R 4/14", Description: "d"},
			{Name: "赤", Hex: "#FF0000", PCCS: "v2", Munsell: "5R 4/14", Description: "d"},
		},
		[]taxonomy.Entry{
			{Name: "", Hex: "nothex", PCCS: "??", Munsell: "", Description: ""},
			{Name: "青", Hex: "#0000FF", PCCS: "v18", Munsell: "2.5PB 4/10", Description: "d", Origin: taxonomy.OriginAny},
		},
	)

	findings := Lint(b)
	require.True(t, HasErrors(findings))

	var errs, warns []string
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs = append(errs, f.Message)
		} else {
			warns = append(warns, f.Message)
		}
	}
	assert.ElementsMatch(t, []string{
		"duplicate name (first at #0)",
		"empty name",
		`invalid hex "nothex"`,
		`invalid origin "any"`,
	}, errs)
	assert.ElementsMatch(t, []string{
		`unparsed PCCS "??"`,
		"missing munsell",
		"missing description",
	}, warns)
	assert.Contains(t, findings[0].String(), "grade 2 #1")
}
