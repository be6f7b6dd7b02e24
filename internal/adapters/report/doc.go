package report

import "go.trai.ch/buildgate/internal/core/domain"

type resolutionDoc struct {
	Tasks          []string                     `json:"tasks" yaml:"tasks"`
	Classification domain.ReleaseClassification `json:"classification" yaml:"classification"`
	Variant        domain.Variant               `json:"variant" yaml:"variant"`
	Signing        signingDoc                   `json:"signing" yaml:"signing"`
	Defines        []defineDoc                  `json:"defines" yaml:"defines"`
}

// signingDoc carries fingerprints in place of passwords.
type signingDoc struct {
	Identity      domain.SigningIdentity `json:"identity" yaml:"identity"`
	StoreFile     string                 `json:"store_file,omitempty" yaml:"store_file,omitempty"`
	KeyAlias      string                 `json:"key_alias,omitempty" yaml:"key_alias,omitempty"`
	StorePassword string                 `json:"store_password,omitempty" yaml:"store_password,omitempty"`
	KeyPassword   string                 `json:"key_password,omitempty" yaml:"key_password,omitempty"`
}

// defineDoc carries either the revealed value or its fingerprint.
type defineDoc struct {
	Key         string  `json:"key" yaml:"key"`
	Value       *string `json:"value,omitempty" yaml:"value,omitempty"`
	Fingerprint string  `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

type classificationDoc struct {
	Tasks                        []string `json:"tasks" yaml:"tasks"`
	domain.ReleaseClassification `yaml:",inline"`
}

func newResolutionDoc(res *domain.Resolution, reveal bool) resolutionDoc {
	doc := resolutionDoc{
		Tasks:          nonNil(res.Tasks),
		Classification: res.Classification,
		Variant:        res.Variant,
		Signing:        signingDoc{Identity: res.Signing.Identity},
		Defines:        newDefineDocs(res.Defines, reveal),
	}
	if c := res.Signing.Credentials; c != nil {
		doc.Signing.StoreFile = c.StoreFile
		doc.Signing.KeyAlias = c.KeyAlias
		doc.Signing.StorePassword = Fingerprint(c.StorePassword)
		doc.Signing.KeyPassword = Fingerprint(c.KeyPassword)
	}
	return doc
}

func newDefineDocs(defines domain.DefineMap, reveal bool) []defineDoc {
	docs := make([]defineDoc, 0, len(defines))
	for _, k := range defines.Keys() {
		d := defineDoc{Key: k}
		if reveal {
			v := defines[k]
			d.Value = &v
		} else {
			d.Fingerprint = Fingerprint(defines[k])
		}
		docs = append(docs, d)
	}
	return docs
}
