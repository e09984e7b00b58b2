package sarif

// Report is the top level element of a SARIF log file.
// https://docs.oasis-open.org/sarif/sarif/v2.1.0/os/sarif-v2.1.0-os.html
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []*Run `json:"runs"`
}

// Run describes a single run of an analysis tool.
type Run struct {
	Tool       *Tool            `json:"tool"`
	Results    []*Result        `json:"results"`
	Taxonomies []*ToolComponent `json:"taxonomies,omitempty"`
}

// Tool describes the analysis tool that was run.
type Tool struct {
	Driver *ToolComponent `json:"driver"`
}

// ToolComponent describes a tool component: the driver or a taxonomy.
type ToolComponent struct {
	Name                string                    `json:"name"`
	Version             string                    `json:"version,omitempty"`
	SemanticVersion     string                    `json:"semanticVersion,omitempty"`
	InformationURI      string                    `json:"informationUri,omitempty"`
	DownloadURI         string                    `json:"downloadUri,omitempty"`
	GUID                string                    `json:"guid,omitempty"`
	Organization        string                    `json:"organization,omitempty"`
	ShortDescription    *MultiformatMessageString `json:"shortDescription,omitempty"`
	Language            string                    `json:"language,omitempty"`
	IsComprehensive     bool                      `json:"isComprehensive,omitempty"`
	ReleaseDateUtc      string                    `json:"releaseDateUtc,omitempty"`
	MinimumRequiredLocalizedDataSemanticVersion string `json:"minimumRequiredLocalizedDataSemanticVersion,omitempty"`
	SupportedTaxonomies []*ToolComponentReference `json:"supportedTaxonomies,omitempty"`
	Rules               []*ReportingDescriptor    `json:"rules,omitempty"`
	Taxa                []*ReportingDescriptor    `json:"taxa,omitempty"`
}

// ToolComponentReference identifies a particular tool component.
type ToolComponentReference struct {
	Name string `json:"name"`
	GUID string `json:"guid,omitempty"`
}

// ReportingDescriptor describes a reporting item: a rule or a taxon.
type ReportingDescriptor struct {
	ID                   string                             `json:"id"`
	Name                 string                             `json:"name,omitempty"`
	GUID                 string                             `json:"guid,omitempty"`
	HelpURI              string                             `json:"helpUri,omitempty"`
	ShortDescription     *MultiformatMessageString          `json:"shortDescription,omitempty"`
	FullDescription      *MultiformatMessageString          `json:"fullDescription,omitempty"`
	Help                 *MultiformatMessageString          `json:"help,omitempty"`
	Properties           *PropertyBag                       `json:"properties,omitempty"`
	DefaultConfiguration *ReportingConfiguration            `json:"defaultConfiguration,omitempty"`
	Relationships        []*ReportingDescriptorRelationship `json:"relationships,omitempty"`
}

// ReportingConfiguration holds the default severity of a rule.
type ReportingConfiguration struct {
	Level Level `json:"level"`
}

// ReportingDescriptorRelationship relates a rule to a taxon.
type ReportingDescriptorRelationship struct {
	Target *ReportingDescriptorReference `json:"target"`
	Kinds  []string                      `json:"kinds,omitempty"`
}

// ReportingDescriptorReference references a reporting descriptor.
type ReportingDescriptorReference struct {
	ID            string                  `json:"id"`
	GUID          string                  `json:"guid,omitempty"`
	ToolComponent *ToolComponentReference `json:"toolComponent,omitempty"`
}

// PropertyBag carries arbitrary additional properties.
type PropertyBag map[string]interface{}

// MultiformatMessageString holds a message in plain text form.
type MultiformatMessageString struct {
	Text string `json:"text"`
}

// Message holds a result message.
type Message struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown,omitempty"`
}

// Result describes a single finding.
type Result struct {
	RuleID    string      `json:"ruleId"`
	RuleIndex int         `json:"ruleIndex"`
	Level     Level       `json:"level"`
	Message   *Message    `json:"message"`
	Locations []*Location `json:"locations,omitempty"`
	Fixes     []*Fix      `json:"fixes,omitempty"`
}

// Fix carries a proposed fix for a result.
type Fix struct {
	Description *Message `json:"description"`
}

// Location describes where a result was detected.
type Location struct {
	PhysicalLocation *PhysicalLocation  `json:"physicalLocation,omitempty"`
	LogicalLocations []*LogicalLocation `json:"logicalLocations,omitempty"`
}

// PhysicalLocation points into an artifact.
type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation"`
	Region           *Region           `json:"region,omitempty"`
}

// ArtifactLocation identifies an artifact by URI.
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region is a contiguous portion of an artifact. For compiled class files
// the byte offsets carry the bytecode PC.
type Region struct {
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength,omitempty"`
}

// LogicalLocation names a construct such as a method within a class.
type LogicalLocation struct {
	Name               string `json:"name,omitempty"`
	FullyQualifiedName string `json:"fullyQualifiedName"`
	Kind               string `json:"kind,omitempty"`
}
