// Package vocab resolves controlled vocabularies: the ANZSRC FOR 2008 to
// 2020 crosswalk, license identifiers, institutional affiliations, target
// contributor roles and file-format subjects.
//
// The crosswalk and affiliation registries are versioned external inputs
// shipped as embedded YAML tables; their contents are data, not engine
// logic. Lookups never fail hard except for role mapping, where an unmapped
// role would produce a record the target schema rejects.
package vocab

import (
	"embed"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

var (
	loadOnce     sync.Once
	forByCode    map[string][]forEntry2020
	forByName    map[string][]forEntry2020
	affByName    map[string]affEntry
	affByAcronym map[string]affEntry
)

type forEntry2020 struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type forMapping struct {
	Code2008  string         `yaml:"code_2008"`
	Name2008  string         `yaml:"name_2008"`
	Codes2020 []forEntry2020 `yaml:"codes_2020"`
}

type forTable struct {
	Codes []forMapping `yaml:"codes"`
}

type affEntry struct {
	Name    string `yaml:"name"`
	Acronym string `yaml:"acronym"`
	ID      string `yaml:"id"`
}

type affTable struct {
	Entries []affEntry `yaml:"entries"`
}

// load parses the embedded tables once. A malformed table leaves its lookups
// empty and is logged; batch ingestion keeps running with degraded output.
func load() {
	loadOnce.Do(func() {
		forByCode = make(map[string][]forEntry2020)
		forByName = make(map[string][]forEntry2020)
		affByName = make(map[string]affEntry)
		affByAcronym = make(map[string]affEntry)

		if data, err := embeddedTables.ReadFile("tables/for_2008_2020.yaml"); err == nil {
			var table forTable
			if err := yaml.Unmarshal(data, &table); err != nil {
				slog.Error("parsing FOR crosswalk table", "error", err)
			} else {
				for _, m := range table.Codes {
					forByCode[m.Code2008] = m.Codes2020
					forByName[m.Name2008] = m.Codes2020
				}
			}
		}

		if data, err := embeddedTables.ReadFile("tables/affiliations.yaml"); err == nil {
			var table affTable
			if err := yaml.Unmarshal(data, &table); err != nil {
				slog.Error("parsing affiliation table", "error", err)
			} else {
				for _, e := range table.Entries {
					affByName[e.Name] = e
					if e.Acronym != "" {
						affByAcronym[e.Acronym] = e
					}
				}
			}
		}
	})
}
