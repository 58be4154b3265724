package models

import "encoding/json"

// CoinDetail is the full record returned by the by-id endpoint.
type CoinDetail struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Symbol            string         `json:"symbol"`
	Rank              int            `json:"rank"`
	Type              string         `json:"type"`
	Description       string         `json:"description"`
	Logo              string         `json:"logo"`
	Message           string         `json:"message"`
	IsActive          bool           `json:"is_active"`
	IsNew             bool           `json:"is_new"`
	OpenSource        bool           `json:"open_source"`
	HardwareWallet    bool           `json:"hardware_wallet"`
	DevelopmentStatus string         `json:"development_status"`
	StartedAt         string         `json:"started_at"`
	FirstDataAt       string         `json:"first_data_at"`
	LastDataAt        string         `json:"last_data_at"`
	HashAlgorithm     string         `json:"hash_algorithm"`
	ProofType         string         `json:"proof_type"`
	OrgStructure      string         `json:"org_structure"`
	Links             Links          `json:"links"`
	LinksExtended     []LinkExtended `json:"links_extended"`
	Whitepaper        Whitepaper     `json:"whitepaper"`
	Tags              []Tag          `json:"tags"`
	Team              []TeamMember   `json:"team"`
}

// Links groups the coin's URLs by category.
type Links struct {
	Explorer   []string `json:"explorer"`
	Website    []string `json:"website"`
	SourceCode []string `json:"source_code"`
	Facebook   []string `json:"facebook"`
	Reddit     []string `json:"reddit"`
	Youtube    []string `json:"youtube"`
}

type LinkExtended struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type Whitepaper struct {
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
}

type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CoinCounter int    `json:"coin_counter"`
	IcoCounter  int    `json:"ico_counter"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// NewCoinDetail returns an all-default record with empty, non-nil slices.
func NewCoinDetail() CoinDetail {
	var d CoinDetail
	d.normalize()
	return d
}

// UnmarshalJSON decodes the record and then fills absent or null lists with
// empty slices.
func (d *CoinDetail) UnmarshalJSON(b []byte) error {
	type plain CoinDetail
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = CoinDetail(p)
	d.normalize()
	return nil
}

func (d *CoinDetail) normalize() {
	d.Links.normalize()
	if d.LinksExtended == nil {
		d.LinksExtended = []LinkExtended{}
	}
	if d.Tags == nil {
		d.Tags = []Tag{}
	}
	if d.Team == nil {
		d.Team = []TeamMember{}
	}
}

func (l *Links) normalize() {
	for _, s := range []*[]string{&l.Explorer, &l.Website, &l.SourceCode, &l.Facebook, &l.Reddit, &l.Youtube} {
		if *s == nil {
			*s = []string{}
		}
	}
}
