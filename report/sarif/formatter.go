package sarif

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/cwe"
	"github.com/classlint/classlint/issue"
)

// GenerateReport Convert a classlint report to a Sarif Report
func GenerateReport(data *classlint.ReportInfo) (*Report, error) {
	type rule struct {
		index int
		rule  *ReportingDescriptor
	}

	rules := make([]*ReportingDescriptor, 0)
	rulesIndices := make(map[string]rule)
	lastRuleIndex := -1

	results := []*Result{}
	cweTaxa := make([]*ReportingDescriptor, 0)
	weaknesses := make(map[string]*cwe.Weakness)

	for _, finding := range data.Issues {
		if finding.Cwe != nil {
			if _, ok := weaknesses[finding.Cwe.ID]; !ok {
				weakness := cwe.Get(finding.Cwe.ID)
				weaknesses[finding.Cwe.ID] = weakness
				cweTaxa = append(cweTaxa, parseSarifTaxon(weakness))
			}
		}

		r, ok := rulesIndices[finding.RuleID]
		if !ok {
			lastRuleIndex++
			r = rule{index: lastRuleIndex, rule: parseSarifRule(finding)}
			rulesIndices[finding.RuleID] = r
			rules = append(rules, r.rule)
		}

		result := NewResult(r.rule.ID, r.index, getSarifLevel(finding.Severity.String()), finding.What, finding.Autofix).
			WithLocations(parseSarifLocation(finding))

		results = append(results, result)
	}

	sort.SliceStable(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	sort.SliceStable(cweTaxa, func(i, j int) bool { return cweTaxa[i].ID < cweTaxa[j].ID })

	tool := NewTool(buildSarifDriver(rules, data.Version))

	cweTaxonomy := buildCWETaxonomy(cweTaxa)

	run := NewRun(tool).
		WithTaxonomies(cweTaxonomy).
		WithResults(results...)

	return NewReport(Version, Schema).
		WithRuns(run), nil
}

// parseSarifRule return SARIF rule field struct
func parseSarifRule(finding *issue.Issue) *ReportingDescriptor {
	weakness := issue.GetCweByRule(finding.RuleID)
	name := finding.RuleID
	if weakness != nil {
		name = weakness.Name
	}
	descriptor := &ReportingDescriptor{
		ID:               finding.RuleID,
		Name:             name,
		ShortDescription: NewMultiformatMessageString(finding.What),
		FullDescription:  NewMultiformatMessageString(finding.What),
		Help: NewMultiformatMessageString(fmt.Sprintf("%s\nSeverity: %s\nConfidence: %s\n",
			finding.What, finding.Severity.String(), finding.Confidence.String())),
		Properties: &PropertyBag{
			"tags":      []string{"correctness", finding.Severity.String()},
			"precision": strings.ToLower(finding.Confidence.String()),
		},
		DefaultConfiguration: &ReportingConfiguration{
			Level: getSarifLevel(finding.Severity.String()),
		},
	}
	if weakness != nil {
		descriptor.Relationships = []*ReportingDescriptorRelationship{
			buildSarifReportingDescriptorRelationship(finding.Cwe),
		}
	}
	return descriptor
}

func buildSarifReportingDescriptorRelationship(weakness *cwe.Weakness) *ReportingDescriptorRelationship {
	return &ReportingDescriptorRelationship{
		Target: &ReportingDescriptorReference{
			ID:            weakness.ID,
			GUID:          uuid3(weakness.SprintID()),
			ToolComponent: NewToolComponentReference(cwe.Acronym),
		},
		Kinds: []string{"superset"},
	}
}

func buildCWETaxonomy(taxa []*ReportingDescriptor) *ToolComponent {
	return NewToolComponent(cwe.Acronym, cwe.Version, cwe.InformationURI).
		WithReleaseDateUtc(cwe.ReleaseDateUtc).
		WithDownloadURI(cwe.DownloadURI).
		WithOrganization(cwe.Organization).
		WithShortDescription(NewMultiformatMessageString(cwe.Description)).
		WithIsComprehensive(true).
		WithLanguage("en").
		WithMinimumRequiredLocalizedDataSemanticVersion(cwe.Version).
		WithTaxa(taxa...)
}

func parseSarifTaxon(weakness *cwe.Weakness) *ReportingDescriptor {
	return &ReportingDescriptor{
		ID:               weakness.ID,
		GUID:             uuid3(weakness.SprintID()),
		HelpURI:          weakness.SprintURL(),
		FullDescription:  NewMultiformatMessageString(weakness.Description),
		ShortDescription: NewMultiformatMessageString(weakness.Name),
	}
}

func parseSemanticVersion(version string) string {
	if len(version) == 0 {
		return "devel"
	}
	if strings.HasPrefix(version, "v") {
		return version[1:]
	}
	return version
}

func buildSarifDriver(rules []*ReportingDescriptor, version string) *ToolComponent {
	semanticVersion := parseSemanticVersion(version)
	return NewToolComponent("classlint", version, "https://github.com/classlint/classlint/").
		WithSemanticVersion(semanticVersion).
		WithSupportedTaxonomies(NewToolComponentReference(cwe.Acronym)).
		WithRules(rules...)
}

func uuid3(value string) string {
	return uuid.NewMD5(uuid.Nil, []byte(value)).String()
}

// parseSarifLocation maps a finding onto the class file artifact and the
// fully qualified method member it was found in.
func parseSarifLocation(finding *issue.Issue) *Location {
	artifact := NewArtifactLocation(classFileURI(finding.Class))
	region := &Region{ByteOffset: finding.PC}
	member := &LogicalLocation{
		Name:               finding.Method,
		FullyQualifiedName: fmt.Sprintf("%s.%s%s", finding.Class, finding.Method, finding.Descriptor),
		Kind:               "member",
	}
	return NewLocation(NewPhysicalLocation(artifact, region)).
		WithLogicalLocations(member)
}

func classFileURI(className string) string {
	return strings.ReplaceAll(className, ".", "/") + ".class"
}

func getSarifLevel(s string) Level {
	switch s {
	case "LOW":
		return Warning
	case "MEDIUM":
		return Error
	case "HIGH":
		return Error
	default:
		return Note
	}
}
