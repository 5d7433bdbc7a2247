package closetcfg

// document mirrors the YAML closet-definition shape described in doc.go.
// The yaml tags map the exported fields to the lowercase keys shown there.
type document struct {
	Families   []familyDoc    `yaml:"families"`
	Exclusions [][2]string    `yaml:"exclusions"`
	Inclusions []inclusionDoc `yaml:"inclusions"`
}

type familyDoc struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type inclusionDoc struct {
	Selection string `yaml:"selection"`
	Inclusion string `yaml:"inclusion"`
}
