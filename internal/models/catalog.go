package models

// LocalizedString maps a language code to a display string, e.g.
// {"en": "Fire Extinguishers", "de": "Feuerlöscher"}.
type LocalizedString map[string]string

// Site is a physical location that owns one or more plants.
type Site struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	AbbreviationName string `json:"abbreviationName"`
	Zip              string `json:"zip"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Country          string `json:"country"`
}

// Plant is an installation within a site that protocols are recorded against.
type Plant struct {
	ID      string `json:"id"`
	SiteID  string `json:"siteId"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Level1  string `json:"level1"`
	Zip     string `json:"zip"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ClosedProtocol is the internal record of a completed inspection protocol.
// The public API exposes a reduced shape; see Public.
type ClosedProtocol struct {
	ID      string `json:"id"`
	SiteID  string `json:"siteId"`
	PlantID string `json:"plantId"`
	Level1  string `json:"level1"`
	Name    string `json:"name"`
	BasedOn string `json:"basedOn"`
	Date    string `json:"date"`
	Owner   string `json:"owner"`
	Status  string `json:"status"`
}

// ClosedProtocolSummary is the public shape of a closed protocol: internal
// grouping fields are dropped and basedOn is exposed as template.
type ClosedProtocolSummary struct {
	ID       string `json:"id"`
	PlantID  string `json:"plantId"`
	Name     string `json:"name"`
	Template string `json:"template,omitempty"`
	Date     string `json:"date"`
	Owner    string `json:"owner,omitempty"`
	Status   string `json:"status"`
}

// Public translates the internal record to the public API shape.
func (p *ClosedProtocol) Public() ClosedProtocolSummary {
	return ClosedProtocolSummary{
		ID:       p.ID,
		PlantID:  p.PlantID,
		Name:     p.Name,
		Template: p.BasedOn,
		Date:     p.Date,
		Owner:    p.Owner,
		Status:   p.Status,
	}
}

// Report is a rendered document attached to a protocol snapshot.
type Report struct {
	ReportID     string `json:"reportId"`
	VariantName  string `json:"variantName,omitempty"`
	FileName     string `json:"fileName,omitempty"`
	Language     string `json:"language"`
	IsOld        bool   `json:"isOld,omitempty"`
	CreationDate int64  `json:"creationDate,omitempty"`
}

// ProtocolItemSnapshot is a single checklist item within a topic.
type ProtocolItemSnapshot struct {
	Name                       LocalizedString        `json:"name"`
	CreatorPublicParticipantID string                 `json:"creatorPublicParticipantId,omitempty"`
	Data                       map[string]interface{} `json:"data"`
}

// ProtocolTopicSnapshot is a section of a protocol snapshot.
type ProtocolTopicSnapshot struct {
	Name  LocalizedString        `json:"name"`
	Items []ProtocolItemSnapshot `json:"items"`
}

// ProtocolSnapshot is the complete computed snapshot of a closed protocol.
type ProtocolSnapshot struct {
	ProtocolID          string                  `json:"protocolId"`
	PowerplantID        string                  `json:"powerplantId"`
	ProtocolBriefcaseID *string                 `json:"protocolBriefcaseId"`
	TemplateName        LocalizedString         `json:"templateName"`
	Name                string                  `json:"name"`
	Date                int64                   `json:"date,omitempty"`
	Time                *string                 `json:"time"`
	Status              string                  `json:"status"`
	ReportID            *string                 `json:"reportId"`
	Reports             []Report                `json:"reports"`
	Owner               string                  `json:"owner"`
	Topics              []ProtocolTopicSnapshot `json:"topics"`
}
