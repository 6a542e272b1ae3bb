// Copyright 2026 Veridian Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dataset

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/veridian-labs/cofoundry/core"
)

var firstNames = []string{
	"Ava", "Noah", "Mia", "Liam", "Zoe", "Ethan", "Ines", "Ravi", "Lena",
	"Omar", "Sofia", "Felix", "Nina", "Arjun", "Clara", "Dmitri", "Yuki",
	"Amara", "Tomas", "Priya",
}

var lastNames = []string{
	"Chen", "Okafor", "Petrov", "Silva", "Hansen", "Iyer", "Moreau",
	"Tanaka", "Weber", "Osei", "Lindqvist", "Rahman", "Costa", "Novak",
	"Fischer", "Mbeki", "Kaur", "Dubois", "Varga", "Sato",
}

var companySuffixes = []string{
	"Labs", "Systems", "Technologies", "Works", "Digital", "Dynamics",
	"Collective", "Industries", "Ventures", "Networks",
}

var jobTitles = []string{
	"product manager", "data scientist", "supply chain analyst",
	"clinical researcher", "operations lead", "solutions architect",
	"growth marketer", "compliance officer", "site reliability engineer",
	"UX researcher",
}

var skills = []string{"Python", "React", "Data Analysis"}

var enablers = []string{"AI", "ML", "blockchain"}

// detailedStages are the stages assigned to profiles with rich bios.
var detailedStages = []core.Stage{core.StageSeed, core.StageSeriesA, core.StageGrowth}

// Generator produces synthetic founder profiles from a seeded PRNG.
// The same seed always yields the same dataset, ids included.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces n profiles. Roughly 15% get detailed bios and a
// later funding stage; 20% carry free-form notes.
func (g *Generator) Generate(n int) []*core.Profile {
	profiles := make([]*core.Profile, 0, n)
	for i := 0; i < n; i++ {
		profiles = append(profiles, g.generateOne())
	}
	return profiles
}

func (g *Generator) generateOne() *core.Profile {
	name := g.pick(firstNames) + " " + g.pick(lastNames)
	company := g.pick(lastNames) + " " + g.pick(companySuffixes)

	var idea, about string
	var stage core.Stage
	if g.rng.Float64() < 0.15 {
		idea = fmt.Sprintf(
			"A cutting-edge %s platform that uses %s to optimize %s workflows. The solution is focused on achieving a 10x improvement in efficiency.",
			g.pick(core.KeywordPool), g.pick(enablers), g.pick(jobTitles))
		about = fmt.Sprintf(
			"Former lead engineer at %s and two-time startup founder. Successfully raised a $5M seed round. Specializes in scalable architecture and system design. Has a strong track record of building and exiting companies in the %s space.",
			g.pick(lastNames)+" "+g.pick(companySuffixes), g.pick(core.KeywordPool))
		stage = detailedStages[g.rng.Intn(len(detailedStages))]
	} else {
		idea = fmt.Sprintf(
			"Building a simple, yet effective, %s solution for %ss.",
			g.pick(core.KeywordPool), g.pick(jobTitles))
		about = fmt.Sprintf(
			"Started career as a %s. Has strong skills in %s and is passionate about shipping useful products.",
			g.pick(jobTitles), g.pick(skills))
		stage = core.Stages[g.rng.Intn(len(core.Stages))]
	}

	notes := ""
	if g.rng.Float64() < 0.2 {
		notes = fmt.Sprintf("Met at a %s meetup. Follow up next quarter.", g.pick(core.KeywordPool))
	}

	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))

	return &core.Profile{
		Id:          core.ID(g.newId()),
		FounderName: name,
		Email:       slug + "@example.com",
		Role:        core.Roles[g.rng.Intn(len(core.Roles))],
		Company:     company,
		Location:    core.Locations[g.rng.Intn(len(core.Locations))],
		Idea:        idea,
		About:       about,
		Keywords:    strings.Join(g.sampleKeywords(), ", "),
		Stage:       stage,
		LinkedIn:    "https://linkedin.com/in/" + slug,
		Notes:       notes,
	}
}

// sampleKeywords picks 2 to 4 unique keywords from the pool.
func (g *Generator) sampleKeywords() []string {
	k := 2 + g.rng.Intn(3)
	indices := g.rng.Perm(len(core.KeywordPool))[:k]
	kws := make([]string, k)
	for i, idx := range indices {
		kws[i] = core.KeywordPool[idx]
	}
	return kws
}

// newId derives a UUID from the generator's PRNG so ids are stable for
// a given seed.
func (g *Generator) newId() string {
	var raw [16]byte
	g.rng.Read(raw[:])
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		// 16 bytes always form a valid UUID
		panic(err)
	}
	return id.String()
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
