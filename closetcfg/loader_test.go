package closetcfg_test

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/outfitforge/closet/closetcfg"
	"github.com/outfitforge/closet/item"
	"github.com/outfitforge/closet/outfit"
)

const sampleDocument = `
families:
  - name: shirts
    items: [blue, red]
  - name: pants
    items: [jeans, slacks]
exclusions:
  - [blue, jeans]
inclusions:
  - selection: jeans
    inclusion: red
`

func TestLoadBuildsExpectedCloset(t *testing.T) {
	b, err := closetcfg.Load(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	c := b.MustBuild()

	out, err := outfit.Complete(c, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(out.Items()))
	for _, it := range out.Items() {
		names = append(names, it.String())
	}
	require.Equal(t, []string{"jeans", "red"}, names)
	require.True(t, c.HasItem(item.New("slacks")))
}

func TestLoadEmptyDocument(t *testing.T) {
	b, err := closetcfg.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestLoadRejectsMalformedExclusion(t *testing.T) {
	doc := `
families:
  - name: shirts
    items: [blue]
exclusions:
  - ["", jeans]
`
	_, err := closetcfg.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, closetcfg.ErrMalformedDocument)
}

func TestResolveClosetPathPrecedence(t *testing.T) {
	t.Setenv("CLOSETCTL_CLOSET", "/env/closet.yaml")

	v := closetcfg.NewResolver()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("closet", "", "path to closet definition")
	require.NoError(t, closetcfg.BindClosetFlag(v, flags))

	path, err := closetcfg.ResolveClosetPath(v)
	require.NoError(t, err)
	require.Equal(t, "/env/closet.yaml", path)

	require.NoError(t, flags.Set("closet", "/flag/closet.yaml"))
	path, err = closetcfg.ResolveClosetPath(v)
	require.NoError(t, err)
	require.Equal(t, "/flag/closet.yaml", path)
}

func TestLoadBuilderAcceptsUnknownKeysAndDuplicateRules(t *testing.T) {
	doc := `
families:
  - name: shirts
    items: [blue, red]
  - name: pants
    items: [jeans, slacks]
exclusions:
  - [blue, jeans]
  - [jeans, blue]
notes: this key is not part of the document shape
`
	b, err := closetcfg.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestResolveClosetPathMissing(t *testing.T) {
	v := closetcfg.NewResolver()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("closet", "", "path to closet definition")
	require.NoError(t, closetcfg.BindClosetFlag(v, flags))

	_, err := closetcfg.ResolveClosetPath(v)
	require.ErrorIs(t, err, closetcfg.ErrNoClosetFile)
}
