package storage

import "github.com/feldmann-io/protosnap/internal/models"

// Catalog is the fixed in-memory resource catalog. All slices and maps are
// populated once at construction and never mutated afterwards, so reads need
// no synchronization.
type Catalog struct {
	sites     []models.Site
	plants    []models.Plant
	protocols []models.ClosedProtocol
	snapshots map[string]*models.ProtocolSnapshot
}

// NewCatalog builds the catalog from the seed tables.
func NewCatalog() *Catalog {
	c := &Catalog{
		sites:     seedSites(),
		plants:    seedPlants(),
		protocols: seedProtocols(),
		snapshots: make(map[string]*models.ProtocolSnapshot),
	}
	for _, snap := range seedSnapshots() {
		c.snapshots[snap.ProtocolID] = snap
	}
	return c
}

// Sites returns all sites.
func (c *Catalog) Sites() []models.Site { return c.sites }

// Plants returns all plants.
func (c *Catalog) Plants() []models.Plant { return c.plants }

// ClosedProtocols returns all closed protocols in their internal shape.
func (c *Catalog) ClosedProtocols() []models.ClosedProtocol { return c.protocols }

// ClosedProtocol returns a single protocol by id.
func (c *Catalog) ClosedProtocol(id string) (*models.ClosedProtocol, bool) {
	for i := range c.protocols {
		if c.protocols[i].ID == id {
			return &c.protocols[i], true
		}
	}
	return nil, false
}

// Snapshot returns the computed snapshot for a closed protocol.
func (c *Catalog) Snapshot(protocolID string) (*models.ProtocolSnapshot, bool) {
	snap, ok := c.snapshots[protocolID]
	return snap, ok
}

func strPtr(s string) *string { return &s }

func seedSites() []models.Site {
	return []models.Site{
		{
			ID:               "site-1",
			Name:             "Berlin Manufacturing Hub",
			AbbreviationName: "BMH",
			Zip:              "10115",
			Address:          "Industriestraße 12",
			City:             "Berlin",
			Country:          "Germany",
		},
		{
			ID:               "site-2",
			Name:             "Munich Engineering Center",
			AbbreviationName: "MEC",
			Zip:              "80331",
			Address:          "Technikweg 5",
			City:             "Munich",
			Country:          "Germany",
		},
		{
			ID:               "site-3",
			Name:             "Hamburg Logistics Park",
			AbbreviationName: "HLP",
			Zip:              "20095",
			Address:          "Hafenallee 88",
			City:             "Hamburg",
			Country:          "Germany",
		},
	}
}

func seedPlants() []models.Plant {
	return []models.Plant{
		{
			ID:      "plant-1",
			SiteID:  "site-1",
			Name:    "Assembly Line Alpha",
			Code:    "ALA-001",
			Level1:  "Berlin Manufacturing Hub",
			Zip:     "10115",
			Address: "Industriestraße 12, Halle A",
			City:    "Berlin",
			Country: "Germany",
		},
		{
			ID:      "plant-2",
			SiteID:  "site-1",
			Name:    "Welding Station Beta",
			Code:    "WSB-002",
			Level1:  "Berlin Manufacturing Hub",
			Zip:     "10115",
			Address: "Industriestraße 12, Halle B",
			City:    "Berlin",
			Country: "Germany",
		},
		{
			ID:      "plant-3",
			SiteID:  "site-2",
			Name:    "Paint Shop Gamma",
			Code:    "PSG-003",
			Level1:  "Munich Engineering Center",
			Zip:     "80331",
			Address: "Technikweg 5, Gebäude 3",
			City:    "Munich",
			Country: "Germany",
		},
		{
			ID:      "plant-4",
			SiteID:  "site-3",
			Name:    "Quality Control Delta",
			Code:    "QCD-004",
			Level1:  "Hamburg Logistics Park",
			Zip:     "20095",
			Address: "Hafenallee 88, Block D",
			City:    "Hamburg",
			Country: "Germany",
		},
	}
}

func seedProtocols() []models.ClosedProtocol {
	return []models.ClosedProtocol{
		{
			ID:      "1",
			SiteID:  "site-1",
			PlantID: "plant-1",
			Level1:  "Berlin Manufacturing Hub",
			Name:    "Monthly Safety Inspection - January",
			BasedOn: "Safety Protocol Template v2.1",
			Date:    "2024-01-31",
			Owner:   "inspector.mueller",
			Status:  "closed",
		},
		{
			ID:      "2",
			SiteID:  "site-1",
			PlantID: "plant-2",
			Level1:  "Berlin Manufacturing Hub",
			Name:    "Equipment Calibration Report - Q1",
			BasedOn: "Calibration Standard ISO 17025",
			Date:    "2024-03-31",
			Owner:   "tech.schmidt",
			Status:  "closed",
		},
		{
			ID:      "3",
			SiteID:  "site-2",
			PlantID: "plant-3",
			Level1:  "Munich Engineering Center",
			Name:    "Paint Quality Audit - February",
			BasedOn: "Paint Quality Standard DIN 55633",
			Date:    "2024-02-28",
			Owner:   "auditor.weber",
			Status:  "closed",
		},
		{
			ID:      "4",
			SiteID:  "site-3",
			PlantID: "plant-4",
			Level1:  "Hamburg Logistics Park",
			Name:    "Fire Safety Drill Report",
			BasedOn: "Fire Safety Regulation ASR A2.2",
			Date:    "2024-04-15",
			Owner:   "safety.fischer",
			Status:  "closed",
		},
		{
			ID:      "5",
			SiteID:  "site-1",
			PlantID: "plant-1",
			Level1:  "Berlin Manufacturing Hub",
			Name:    "Electrical Systems Inspection - March",
			BasedOn: "Electrical Safety Standard DIN VDE 0105",
			Date:    "2024-03-20",
			Owner:   "inspector.mueller",
			Status:  "closed",
		},
	}
}

func seedSnapshots() []*models.ProtocolSnapshot {
	return []*models.ProtocolSnapshot{
		{
			ProtocolID:          "1",
			PowerplantID:        "plant-1",
			ProtocolBriefcaseID: strPtr("BRIEF-01"),
			TemplateName: models.LocalizedString{
				"en": "Monthly Safety Inspection",
				"de": "Monatliche Sicherheitsinspektion",
			},
			Name:     "Monthly Safety Inspection - January",
			Date:     1706659200, // 2024-01-31
			Time:     strPtr("09:00"),
			Status:   "closed",
			ReportID: strPtr("REP-1001"),
			Reports:  []models.Report{},
			Owner:    "inspector.mueller",
			Topics: []models.ProtocolTopicSnapshot{
				{
					Name: models.LocalizedString{"en": "Fire Extinguishers", "de": "Feuerlöscher"},
					Items: []models.ProtocolItemSnapshot{
						{
							Name: models.LocalizedString{"en": "Pressure gauge in green zone", "de": "Manometer im grünen Bereich"},
							Data: map[string]interface{}{"result": "pass"},
						},
					},
				},
				{
					Name: models.LocalizedString{"en": "Emergency Exits", "de": "Notausgänge"},
					Items: []models.ProtocolItemSnapshot{
						{
							Name: models.LocalizedString{"en": "Escape routes unobstructed", "de": "Fluchtwege frei"},
							Data: map[string]interface{}{"result": "pass"},
						},
					},
				},
			},
		},
		{
			ProtocolID:          "2",
			PowerplantID:        "plant-2",
			ProtocolBriefcaseID: strPtr("BRIEF-02"),
			TemplateName: models.LocalizedString{
				"en": "Equipment Calibration",
				"de": "Gerätekalibrierung",
			},
			Name:     "Equipment Calibration Report - Q1",
			Date:     1711843200, // 2024-03-31
			Time:     strPtr("14:30"),
			Status:   "closed",
			ReportID: strPtr("REP-2001"),
			Reports:  []models.Report{},
			Owner:    "tech.schmidt",
			Topics: []models.ProtocolTopicSnapshot{
				{
					Name: models.LocalizedString{"en": "Sensor Accuracy", "de": "Sensorgenauigkeit"},
					Items: []models.ProtocolItemSnapshot{
						{
							Name: models.LocalizedString{"en": "Deviation within tolerance", "de": "Abweichung innerhalb der Toleranz"},
							Data: map[string]interface{}{"result": "pass", "deviation": 0.02},
						},
					},
				},
			},
		},
		{
			ProtocolID:          "3",
			PowerplantID:        "plant-3",
			ProtocolBriefcaseID: nil,
			TemplateName: models.LocalizedString{
				"en": "Paint Quality Audit",
				"de": "Lackqualitätsprüfung",
			},
			Name:     "Paint Quality Audit - February",
			Date:     1709078400, // 2024-02-28
			Time:     strPtr("10:15"),
			Status:   "closed",
			ReportID: strPtr("REP-3001"),
			Reports:  []models.Report{},
			Owner:    "auditor.weber",
			Topics:   []models.ProtocolTopicSnapshot{},
		},
		{
			ProtocolID:          "4",
			PowerplantID:        "plant-4",
			ProtocolBriefcaseID: strPtr("BRIEF-04"),
			TemplateName: models.LocalizedString{
				"en": "Fire Safety Drill",
				"de": "Brandschutzübung",
			},
			Name:     "Fire Safety Drill Report",
			Date:     1713139200, // 2024-04-15
			Time:     nil,
			Status:   "closed",
			ReportID: nil,
			Reports:  []models.Report{},
			Owner:    "safety.fischer",
			Topics: []models.ProtocolTopicSnapshot{
				{
					Name: models.LocalizedString{"en": "Evacuation Time", "de": "Evakuierungszeit"},
					Items: []models.ProtocolItemSnapshot{
						{
							Name: models.LocalizedString{"en": "Building cleared under four minutes", "de": "Gebäude in unter vier Minuten geräumt"},
							Data: map[string]interface{}{"result": "acceptable", "seconds": 221},
						},
					},
				},
				{
					Name: models.LocalizedString{"en": "Assembly Point", "de": "Sammelplatz"},
					Items: []models.ProtocolItemSnapshot{
						{
							Name: models.LocalizedString{"en": "Headcount complete", "de": "Vollzähligkeit festgestellt"},
							Data: map[string]interface{}{"result": "pass"},
						},
					},
				},
			},
		},
		{
			ProtocolID:          "5",
			PowerplantID:        "plant-1",
			ProtocolBriefcaseID: strPtr("BRIEF-05"),
			TemplateName: models.LocalizedString{
				"en": "Electrical Systems Inspection",
				"de": "Elektrosysteminspektion",
			},
			Name:     "Electrical Systems Inspection - March",
			Date:     1710892800, // 2024-03-20
			Time:     strPtr("08:00"),
			Status:   "closed",
			ReportID: strPtr("REP-5001"),
			Reports:  []models.Report{},
			Owner:    "inspector.mueller",
			Topics:   []models.ProtocolTopicSnapshot{},
		},
	}
}
