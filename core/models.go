package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is the opaque unique identifier of a profile, assigned by the data
// producer and stable across runs. It is the join key between the vector
// index and the record store.
type ID string

// Role categorizes what a person does.
type Role string

const (
	RoleFounder   Role = "Founder"
	RoleCoFounder Role = "Co-founder"
	RoleEngineer  Role = "Engineer"
	RolePM        Role = "PM"
	RoleInvestor  Role = "Investor"
	RoleOther     Role = "Other"
)

// Roles lists all valid roles.
var Roles = []Role{RoleFounder, RoleCoFounder, RoleEngineer, RolePM, RoleInvestor, RoleOther}

// Stage is a company funding stage.
type Stage string

const (
	StageNone    Stage = "none"
	StagePreSeed Stage = "pre-seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series A"
	StageGrowth  Stage = "growth"
)

// Stages lists all valid funding stages.
var Stages = []Stage{StageNone, StagePreSeed, StageSeed, StageSeriesA, StageGrowth}

// Locations is the fixed set of city+country strings profiles may carry.
var Locations = []string{
	"San Francisco, USA", "New York, USA", "London, UK", "Berlin, Germany",
	"Bangalore, India", "Singapore, Singapore", "Toronto, Canada", "Paris, France",
}

// KeywordPool is the fixed pool of industry tags profiles draw from.
var KeywordPool = []string{
	"healthtech", "AI", "marketplace", "fintech", "saas", "devtools",
	"biotech", "e-commerce", "edtech", "social", "blockchain",
	"cleantech", "robotics", "foodtech", "agritech", "cybersecurity",
}

// SearchFields names the profile fields eligible for matching. It is
// reported verbatim in result provenance.
const SearchFields = "idea, about, keywords, role, company, location, stage"

// Profile is a founder's canonical data row. Created once by the data
// producer and immutable thereafter; the pipeline only reads it.
type Profile struct {
	Id          ID
	FounderName string
	Email       string
	Role        Role
	Company     string
	Location    string
	Idea        string
	About       string
	Keywords    string // comma-separated tags from KeywordPool
	Stage       Stage
	LinkedIn    string
	Notes       string
}

// Document is the embedding-searchable projection of a Profile. It pairs
// the rendered text with the metadata used for hard filtering.
// Invariant: Id equals the source Profile's Id.
type Document struct {
	Id        ID
	Location  string
	Stage     Stage
	Text      string
	Vector    []float32 // populated by the ingestion pipeline
	IndexedAt time.Time
}

// RenderDocument builds the indexed document for a profile. The text
// concatenates the searchable fields into a natural-language rendering.
func RenderDocument(p *Profile) *Document {
	text := fmt.Sprintf(
		"Founder: %s. Role: %s. Company: %s. Location: %s. Idea: %s. About: %s. Keywords: %s. Stage: %s.",
		p.FounderName, p.Role, p.Company, p.Location, p.Idea, p.About, p.Keywords, p.Stage,
	)
	return &Document{
		Id:       p.Id,
		Location: p.Location,
		Stage:    p.Stage,
		Text:     text,
	}
}

// Filter holds the structured constraints extracted from a query.
// Zero values mean the constraint is absent.
type Filter struct {
	Location string
	Stage    Stage
}

// Empty reports whether no constraint is set.
func (f Filter) Empty() bool {
	return f.Location == "" && f.Stage == ""
}

// Matches reports whether the given metadata satisfies every constraint
// that is set. An unset constraint matches everything.
func (f Filter) Matches(location string, stage Stage) bool {
	if f.Location != "" && f.Location != location {
		return false
	}
	if f.Stage != "" && f.Stage != stage {
		return false
	}
	return true
}

// Candidate is a retrieved document with its similarity score.
type Candidate struct {
	Document *Document
	Score    float32
}

// Provenance records which fields were eligible for matching and the
// identifier the result was resolved from.
type Provenance struct {
	MatchedOnFields string `json:"matched_on_fields"`
	SourceId        ID     `json:"source_id"`
}

// MatchResult is the validated, enriched unit returned to the caller.
// It is assembled fresh per query and never cached.
type MatchResult struct {
	Id               ID         `json:"id"`
	FounderName      string     `json:"founder_name"`
	Role             Role       `json:"role"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Idea             string     `json:"idea"`
	About            string     `json:"about"`
	Keywords         string     `json:"keywords"`
	Stage            Stage      `json:"stage"`
	LinkedIn         string     `json:"linked_in"`
	Notes            string     `json:"notes,omitempty"`
	MatchExplanation string     `json:"match_explanation"`
	Provenance       Provenance `json:"provenance"`
}

// FingerprintProfiles computes a BLAKE2b digest over a profile set,
// independent of input order. The ingestion pipeline stores it alongside
// the index so a stale or missing index can be detected at startup.
func FingerprintProfiles(profiles []*Profile) string {
	lines := make([]string, 0, len(profiles))
	for _, p := range profiles {
		lines = append(lines, fmt.Sprintf("%s|%s|%s|%s|%s|%s", p.Id, p.FounderName, p.Company, p.Location, p.Stage, p.Keywords))
	}
	sort.Strings(lines)

	h, _ := blake2b.New(16, nil)
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
